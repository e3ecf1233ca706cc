package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/presenters"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/claim"
)

type (
	ClaimHandler interface {
		RequestClaim(c *fiber.Ctx) error
		GetClaims(c *fiber.Ctx) error
		GetClaim(c *fiber.Ctx) error
		ApproveClaim(c *fiber.Ctx) error
		RejectClaim(c *fiber.Ctx) error
		DeliverClaim(c *fiber.Ctx) error
		DeleteClaim(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) RequestClaim(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.CreateClaimRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedCreateClaim, err)
	}

	res, err := h.claimService.RequestClaim(c.Context(), caller, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateClaim, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateClaim)
}

func (h *claimHandler) GetClaims(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	page, limit := pageQuery(c)
	filter := domain.ClaimFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	claims, count, err := h.claimService.GetClaims(c.Context(), caller, filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetClaims, err)
	}
	return presenters.SuccessResponse(c, paginated(claims, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetClaim(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	res, err := h.claimService.GetClaimByID(c.Context(), caller, c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetClaims, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaim)
}

func (h *claimHandler) ApproveClaim(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	res, err := h.claimService.DecideClaim(c.Context(), caller, c.Params("id"), domain.ClaimStatusApproved)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDecideClaim, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessApproveClaim)
}

func (h *claimHandler) RejectClaim(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	res, err := h.claimService.DecideClaim(c.Context(), caller, c.Params("id"), domain.ClaimStatusRejected)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDecideClaim, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRejectClaim)
}

func (h *claimHandler) DeliverClaim(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	res, err := h.claimService.DeliverClaim(c.Context(), caller, c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeliverClaim, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeliverClaim)
}

func (h *claimHandler) DeleteClaim(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	if err := h.claimService.DeleteClaim(c.Context(), caller, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteClaim, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteClaim)
}
