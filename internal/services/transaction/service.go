// Package transaction records sales and drives their lifecycle:
// pending at creation, then a single terminal approve or reject decision.
package transaction

import (
	"context"
	"strings"
	"time"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"
	"mabportal/internal/repositories"
	"mabportal/internal/services/rate"
	"mabportal/internal/utils"
	"mabportal/internal/validation"

	"github.com/google/uuid"
)

type Service interface {
	// CreateSale validates a submission, snapshots the effective commission
	// rate and persists a new pending transaction.
	CreateSale(ctx context.Context, partnerID uint, req CreateSaleRequest) (*models.Transaction, error)
	// Decide approves or rejects a pending transaction. Re-deciding an
	// already-decided transaction fails with ErrAlreadyDecided.
	Decide(ctx context.Context, transactionID uint, decision string, actorID uint) (*models.Transaction, error)
	Get(ctx context.Context, transactionID uint) (*models.Transaction, error)
	List(ctx context.Context, req ListRequest) ([]models.Transaction, int64, error)
}

type service struct {
	transactions repositories.TransactionRepository
	resolver     rate.Resolver
}

// NewService creates a new transaction service.
func NewService(transactions repositories.TransactionRepository, resolver rate.Resolver) Service {
	if transactions == nil {
		panic("transaction repository is required")
	}
	if resolver == nil {
		panic("rate resolver is required")
	}
	return &service{
		transactions: transactions,
		resolver:     resolver,
	}
}

func (s *service) CreateSale(ctx context.Context, partnerID uint, req CreateSaleRequest) (*models.Transaction, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := validation.CustomerName(req.CustomerName); err != nil {
		return nil, err
	}
	resolved, err := s.resolver.Resolve(ctx, partnerID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !resolved.Visible {
		return nil, domainerrors.ErrServiceNotAssigned
	}

	businessDate := req.TransactionDate
	if businessDate.IsZero() {
		businessDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	tx := &models.Transaction{
		Reference:        uuid.NewString(),
		PartnerID:        partnerID,
		ServiceID:        req.ServiceID,
		CustomerName:     strings.TrimSpace(req.CustomerName),
		TotalAmount:      utils.RoundCurrency(req.TotalAmount),
		CommissionRate:   resolved.Rate,
		CommissionAmount: utils.CommissionAmount(req.TotalAmount, resolved.Rate),
		Status:           models.TransactionStatusPending,
		TransactionDate:  businessDate,
		Notes:            strings.TrimSpace(req.Notes),
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *service) Decide(ctx context.Context, transactionID uint, decision string, actorID uint) (*models.Transaction, error) {
	var status string
	var approvedBy *uint
	var approvedAt *time.Time

	switch decision {
	case DecisionApprove:
		status = models.TransactionStatusApproved
		now := time.Now().UTC()
		approvedAt = &now
		approvedBy = &actorID
	case DecisionReject:
		status = models.TransactionStatusRejected
	default:
		return nil, domainerrors.Validation("decision", "must be one of: approve reject")
	}

	// The precondition check and the mutation are one conditional update at
	// the storage layer; commission fields stay as snapshotted at creation.
	return s.transactions.DecideIfPending(ctx, transactionID, status, approvedBy, approvedAt)
}

func (s *service) Get(ctx context.Context, transactionID uint) (*models.Transaction, error) {
	return s.transactions.GetByID(ctx, transactionID)
}

func (s *service) List(ctx context.Context, req ListRequest) ([]models.Transaction, int64, error) {
	if req.Status != "" &&
		req.Status != models.TransactionStatusPending &&
		req.Status != models.TransactionStatusApproved &&
		req.Status != models.TransactionStatusRejected {
		return nil, 0, domainerrors.Validation("status", "must be one of: pending approved rejected")
	}

	return s.transactions.List(ctx, repositories.TransactionFilter{
		PartnerID: req.PartnerID,
		ServiceID: req.ServiceID,
		Status:    req.Status,
		From:      req.From,
		To:        req.To,
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
}
