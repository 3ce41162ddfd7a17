package handlers

import (
	"strconv"

	"mabportal/internal/services/partner"
	"mabportal/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PartnerHandler struct {
	partners partner.Service
}

func NewPartnerHandler(partnerService partner.Service) *PartnerHandler {
	return &PartnerHandler{partners: partnerService}
}

// ListPartners returns partner accounts, paginated.
func (h *PartnerHandler) ListPartners(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 1, 20)

	partners, total, err := h.partners.List(c.Context(), p.Offset, p.Limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(partners, p))
}

// CreatePartner provisions a new partner account.
func (h *PartnerHandler) CreatePartner(c *fiber.Ctx) error {
	var req partner.CreatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	user, err := h.partners.Provision(c.Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.Created(c, fiber.Map{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}

// GetSettings returns a partner's service settings.
func (h *PartnerHandler) GetSettings(c *fiber.Ctx) error {
	partnerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid partner id")
	}

	settings, err := h.partners.Settings(c.Context(), uint(partnerID))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Success(c, fiber.Map{"settings": settings})
}

// ReplaceSettings swaps a partner's whole setting set.
func (h *PartnerHandler) ReplaceSettings(c *fiber.Ctx) error {
	partnerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid partner id")
	}

	var input struct {
		Settings []partner.SettingInput `json:"settings"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.partners.ReplaceSettings(c.Context(), uint(partnerID), input.Settings); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Settings saved"})
}
