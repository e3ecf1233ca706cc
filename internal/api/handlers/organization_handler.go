package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/presenters"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/organization"
)

type (
	OrganizationHandler interface {
		Register(c *fiber.Ctx) error
		GetOrganizations(c *fiber.Ctx) error
		GetOrganization(c *fiber.Ctx) error
		Verify(c *fiber.Ctx) error
		UploadDocument(c *fiber.Ctx) error
	}

	organizationHandler struct {
		organizationService organization.OrganizationService
		validator           *validator.Validate
	}
)

func NewOrganizationHandler(organizationService organization.OrganizationService, validator *validator.Validate) OrganizationHandler {
	return &organizationHandler{
		organizationService: organizationService,
		validator:           validator,
	}
}

func (h *organizationHandler) Register(c *fiber.Ctx) error {
	req := new(domain.CreateOrganizationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedCreateOrganization, err)
	}

	res, err := h.organizationService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateOrganization, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrganization)
}

func (h *organizationHandler) GetOrganizations(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	orgType := c.Query("type")

	var verified *bool
	if v := c.Query("verified"); v == "true" || v == "false" {
		b := v == "true"
		verified = &b
	}

	orgs, count, err := h.organizationService.List(c.Context(), orgType, verified, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetOrganization, err)
	}
	return presenters.SuccessResponse(c, paginated(orgs, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetOrganizations)
}

func (h *organizationHandler) GetOrganization(c *fiber.Ctx) error {
	res, err := h.organizationService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetOrganization, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrganization)
}

func (h *organizationHandler) Verify(c *fiber.Ctx) error {
	caller := identityFromLocals(c)
	req := new(domain.VerifyOrganizationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationResponse(c, domain.MessageFailedVerifyOrganization, err)
	}

	res, err := h.organizationService.Verify(c.Context(), caller, c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedVerifyOrganization, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessVerifyOrganization)
}

func (h *organizationHandler) UploadDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.organizationService.UploadDocument(c.Context(), c.Params("id"), file)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadDocument, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadDocument)
}
