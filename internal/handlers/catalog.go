package handlers

import (
	"strconv"

	"mabportal/internal/services/catalog"
	"mabportal/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListServices returns the full catalog, inactive services included.
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.catalog.List(c.Context(), true)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Success(c, fiber.Map{"services": services})
}

func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var req catalog.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	svc, err := h.catalog.Create(c.Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Created(c, svc)
}

func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid service id")
	}

	var req catalog.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	svc, err := h.catalog.Update(c.Context(), uint(id), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Success(c, svc)
}

func (h *CatalogHandler) ToggleService(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid service id")
	}

	svc, err := h.catalog.ToggleActive(c.Context(), uint(id))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Success(c, svc)
}

func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid service id")
	}

	if err := h.catalog.Delete(c.Context(), uint(id)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Service deleted"})
}
