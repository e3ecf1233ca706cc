package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/presenters"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/report"
)

type (
	ReportHandler interface {
		GetSummary(c *fiber.Ctx) error
		GetStatistics(c *fiber.Ctx) error
		GetDonationsPerCategory(c *fiber.Ctx) error
		GetTopDonors(c *fiber.Ctx) error
		GetTopReceivers(c *fiber.Ctx) error
		GetDonationsOverTime(c *fiber.Ctx) error
		GetUserReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

func (h *reportHandler) GetSummary(c *fiber.Ctx) error {
	res, err := h.reportService.GetSummary(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *reportHandler) GetStatistics(c *fiber.Ctx) error {
	res, err := h.reportService.GetStatistics(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStatistics)
}

func (h *reportHandler) GetDonationsPerCategory(c *fiber.Ctx) error {
	res, err := h.reportService.GetDonationsPerCategory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPerCategory)
}

func (h *reportHandler) GetTopDonors(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	res, err := h.reportService.GetTopDonors(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTopDonors)
}

func (h *reportHandler) GetTopReceivers(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	res, err := h.reportService.GetTopReceivers(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTopReceivers)
}

func (h *reportHandler) GetDonationsOverTime(c *fiber.Ctx) error {
	period := c.Query("period", "month")

	res, err := h.reportService.GetDonationsOverTime(c.Context(), period)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOverTime)
}

func (h *reportHandler) GetUserReport(c *fiber.Ctx) error {
	caller := identityFromLocals(c)

	res, err := h.reportService.GetUserReport(c.Context(), caller)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserReport)
}
