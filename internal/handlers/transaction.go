package handlers

import (
	"strconv"
	"time"

	"mabportal/internal/models"
	"mabportal/internal/services/rate"
	"mabportal/internal/services/transaction"
	"mabportal/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactions transaction.Service
	resolver     rate.Resolver
}

func NewTransactionHandler(transactions transaction.Service, resolver rate.Resolver) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		resolver:     resolver,
	}
}

// CreateSale records a new sale for the authenticated partner.
func (h *TransactionHandler) CreateSale(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		ServiceID       uint    `json:"service_id"`
		CustomerName    string  `json:"customer_name"`
		TotalAmount     float64 `json:"total_amount"`
		TransactionDate string  `json:"transaction_date,omitempty"`
		Notes           string  `json:"notes,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	req := transaction.CreateSaleRequest{
		ServiceID:    input.ServiceID,
		CustomerName: input.CustomerName,
		TotalAmount:  input.TotalAmount,
		Notes:        input.Notes,
	}
	if input.TransactionDate != "" {
		date, err := time.Parse("2006-01-02", input.TransactionDate)
		if err != nil {
			return utils.BadRequest(c, "transaction_date must be YYYY-MM-DD")
		}
		req.TransactionDate = date
	}

	tx, err := h.transactions.CreateSale(c.Context(), claims.UserID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.Created(c, tx)
}

// ListOwn returns the authenticated partner's transactions with filters and
// pagination.
func (h *TransactionHandler) ListOwn(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	return h.list(c, claims.UserID)
}

// ListAll returns every partner's transactions (admin only); an explicit
// partner_id query narrows to one partner.
func (h *TransactionHandler) ListAll(c *fiber.Ctx) error {
	partnerID, _ := strconv.ParseUint(c.Query("partner_id", "0"), 10, 32)
	return h.list(c, uint(partnerID))
}

func (h *TransactionHandler) list(c *fiber.Ctx, partnerID uint) error {
	p := utils.GetPagination(c, 1, 20)

	req := transaction.ListRequest{
		PartnerID: partnerID,
		Status:    c.Query("status"),
		Offset:    p.Offset,
		Limit:     p.Limit,
	}
	if serviceID, err := strconv.ParseUint(c.Query("service_id", "0"), 10, 32); err == nil {
		req.ServiceID = uint(serviceID)
	}
	if from := c.Query("from"); from != "" {
		date, err := time.Parse("2006-01-02", from)
		if err != nil {
			return utils.BadRequest(c, "from must be YYYY-MM-DD")
		}
		req.From = date
	}
	if to := c.Query("to"); to != "" {
		date, err := time.Parse("2006-01-02", to)
		if err != nil {
			return utils.BadRequest(c, "to must be YYYY-MM-DD")
		}
		req.To = date
	}

	txs, total, err := h.transactions.List(c.Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(txs, p))
}

// GetTransaction returns one transaction, enforcing ownership for partners.
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid transaction id")
	}

	tx, err := h.transactions.Get(c.Context(), uint(id))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !claims.CanView(tx.PartnerID) {
		return utils.Forbidden(c, "Access denied")
	}

	return utils.Success(c, tx)
}

// Decide approves or rejects a pending transaction (admin only).
func (h *TransactionHandler) Decide(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid transaction id")
	}

	var input struct {
		Decision string `json:"decision"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	tx, err := h.transactions.Decide(c.Context(), uint(id), input.Decision, claims.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.Success(c, tx)
}

// VisibleServices lists the services the authenticated partner may sell.
func (h *TransactionHandler) VisibleServices(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	catalog, err := h.resolver.VisibleServices(c.Context(), claims.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.Success(c, fiber.Map{"services": catalog})
}
