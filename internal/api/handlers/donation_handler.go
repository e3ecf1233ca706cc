package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/presenters"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/donation"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetDonations(c *fiber.Ctx) error
		GetDonation(c *fiber.Ctx) error
		GetMyDonations(c *fiber.Ctx) error
		UpdateDonation(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error
		GetNearbyDonations(c *fiber.Ctx) error
		UploadDonationImage(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.CreateDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), caller, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateDonation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	// A list query carrying coordinates is a geo search.
	if c.Query("latitude") != "" && c.Query("longitude") != "" {
		return h.GetNearbyDonations(c)
	}

	page, limit := pageQuery(c)
	filter := domain.DonationFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	donations, count, err := h.donationService.GetDonations(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, paginated(donations, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonation(c *fiber.Ctx) error {
	res, err := h.donationService.GetDonationByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonation)
}

func (h *donationHandler) GetMyDonations(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	page, limit := pageQuery(c)

	donations, count, err := h.donationService.GetMyDonations(c.Context(), caller, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, paginated(donations, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) UpdateDonation(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.UpdateDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedUpdateDonation, err)
	}

	res, err := h.donationService.UpdateDonation(c.Context(), caller, c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateDonation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	if err := h.donationService.DeleteDonation(c.Context(), caller, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteDonation, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) GetNearbyDonations(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, domain.ErrInvalidCoordinates)
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, domain.ErrInvalidCoordinates)
	}

	// Radius falls back to the default when absent or unparseable and is
	// clamped to [1, 100] km.
	radius := domain.DefaultNearbyRadiusKm
	if raw := c.Query("radius"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			radius = parsed
		}
	}
	if radius < domain.MinNearbyRadiusKm {
		radius = domain.MinNearbyRadiusKm
	}
	if radius > domain.MaxNearbyRadiusKm {
		radius = domain.MaxNearbyRadiusKm
	}

	req := domain.NearbyDonationsRequest{Latitude: lat, Longitude: lng, Radius: radius}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedGetNearbyDonations, err)
	}

	res, err := h.donationService.GetNearbyDonations(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetNearbyDonations, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNearbyDonations)
}

func (h *donationHandler) UploadDonationImage(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.donationService.UploadDonationImage(c.Context(), caller, c.Params("id"), file)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadImage, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
