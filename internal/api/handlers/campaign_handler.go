package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/presenters"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/campaign"
)

type (
	CampaignHandler interface {
		CreateCampaign(c *fiber.Ctx) error
		GetCampaigns(c *fiber.Ctx) error
		GetCampaign(c *fiber.Ctx) error
		GetMyCampaigns(c *fiber.Ctx) error
		UpdateCampaign(c *fiber.Ctx) error
		DeleteCampaign(c *fiber.Ctx) error
		Pledge(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
		PaymentNotification(c *fiber.Ctx) error
	}

	campaignHandler struct {
		campaignService campaign.CampaignService
		validator       *validator.Validate
	}
)

func NewCampaignHandler(campaignService campaign.CampaignService, validator *validator.Validate) CampaignHandler {
	return &campaignHandler{
		campaignService: campaignService,
		validator:       validator,
	}
}

func (h *campaignHandler) CreateCampaign(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.CreateCampaignRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedCreateCampaign, err)
	}

	res, err := h.campaignService.CreateCampaign(c.Context(), caller, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateCampaign, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCampaign)
}

func (h *campaignHandler) GetCampaigns(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	filter := domain.CampaignFilter{
		Status:     c.Query("status"),
		ActiveOnly: c.Query("active") == "true",
		Page:       page,
		Limit:      limit,
	}

	campaigns, count, err := h.campaignService.GetCampaigns(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCampaigns, err)
	}
	return presenters.SuccessResponse(c, paginated(campaigns, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetCampaigns)
}

func (h *campaignHandler) GetCampaign(c *fiber.Ctx) error {
	res, err := h.campaignService.GetCampaignByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCampaigns, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCampaign)
}

func (h *campaignHandler) GetMyCampaigns(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	page, limit := pageQuery(c)

	campaigns, count, err := h.campaignService.GetMyCampaigns(c.Context(), caller, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCampaigns, err)
	}
	return presenters.SuccessResponse(c, paginated(campaigns, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetCampaigns)
}

func (h *campaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.UpdateCampaignRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedUpdateCampaign, err)
	}

	res, err := h.campaignService.UpdateCampaign(c.Context(), caller, c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateCampaign, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCampaign)
}

func (h *campaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	if err := h.campaignService.DeleteCampaign(c.Context(), caller, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteCampaign, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCampaign)
}

func (h *campaignHandler) Pledge(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.PledgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedPledge, err)
	}

	res, err := h.campaignService.Pledge(c.Context(), caller, c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedPledge, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPledge)
}

func (h *campaignHandler) Checkout(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.CheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedCreateCheckout, err)
	}

	res, err := h.campaignService.Checkout(c.Context(), caller, c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateCheckout, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCheckout)
}

// PaymentNotification is the gateway's server-to-server webhook. Only the
// order ID is taken from the payload; the transaction state is re-fetched
// from the gateway before the ledger moves.
func (h *campaignHandler) PaymentNotification(c *fiber.Ctx) error {
	var payload struct {
		OrderID string `json:"order_id"`
	}
	if err := c.BodyParser(&payload); err != nil || payload.OrderID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.campaignService.HandlePaymentNotification(c.Context(), payload.OrderID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedProcessWebhook, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessProcessedWebhook)
}
