package handlers

import (
	"errors"
	"strconv"
	"time"

	"mabportal/internal/models"
	"mabportal/internal/services/export"
	"mabportal/internal/services/report"
	"mabportal/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reports: reportService}
}

// PartnerDashboard returns the authenticated partner's stats and chart data.
func (h *ReportHandler) PartnerDashboard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	stats, series, err := h.reports.PartnerDashboard(c.Context(), claims.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.Success(c, fiber.Map{
		"stats": stats,
		"chart": series,
	})
}

// AdminDashboard returns portal-wide stats and chart data.
func (h *ReportHandler) AdminDashboard(c *fiber.Ctx) error {
	stats, series, err := h.reports.AdminDashboard(c.Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.Success(c, fiber.Map{
		"stats": stats,
		"chart": series,
	})
}

// Monthly returns the admin month report.
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	year, month, err := h.parseMonth(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	rep, err := h.reports.Monthly(c.Context(), year, month)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Success(c, rep)
}

// Export streams the month report as an xlsx download.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	year, month, err := h.parseMonth(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	rep, err := h.reports.Monthly(c.Context(), year, month)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	workbook, err := export.MonthlyWorkbook(rep)
	if err != nil {
		return utils.InternalError(c, "Failed to build export")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(year, month)+`"`)
	return c.Send(workbook)
}

func (h *ReportHandler) parseMonth(c *fiber.Ctx) (int, int, error) {
	now := time.Now().UTC()

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return 0, 0, errors.New("year must be a number")
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		return 0, 0, errors.New("month must be a number")
	}
	return year, month, nil
}
