package repositories

import (
	"context"
	"fmt"
	"time"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"

	"gorm.io/gorm"
)

// TransactionFilter narrows list queries. Zero values mean "no filter".
type TransactionFilter struct {
	PartnerID uint
	ServiceID uint
	Status    string
	From      time.Time
	To        time.Time
	Offset    int
	Limit     int
}

// TransactionRepository handles persistence for recorded sales.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]models.Transaction, int64, error)
	// DecideIfPending applies the approve/reject mutation as a single
	// conditional update. When the row is no longer pending (already decided
	// or lost a concurrent race) it returns ErrAlreadyDecided.
	DecideIfPending(ctx context.Context, id uint, status string, approvedBy *uint, approvedAt *time.Time) (*models.Transaction, error)
	InMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error)
	InRange(ctx context.Context, partnerID uint, from, to time.Time) ([]models.Transaction, error)
	CountByService(ctx context.Context, serviceID uint) (int64, error)
	StatusCounts(ctx context.Context, partnerID uint) (map[string]int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Partner").
		First(&tx, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) List(ctx context.Context, filter TransactionFilter) ([]models.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})

	if filter.PartnerID != 0 {
		query = query.Where("partner_id = ?", filter.PartnerID)
	}
	if filter.ServiceID != 0 {
		query = query.Where("service_id = ?", filter.ServiceID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if !filter.From.IsZero() {
		query = query.Where("transaction_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("transaction_date <= ?", filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txs []models.Transaction
	err := query.
		Preload("Service").
		Preload("Partner").
		Order("transaction_date DESC, id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&txs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, total, nil
}

func (r *transactionRepository) DecideIfPending(ctx context.Context, id uint, status string, approvedBy *uint, approvedAt *time.Time) (*models.Transaction, error) {
	// Single conditional update: two concurrent deciders cannot both match the
	// pending row, so exactly one writer wins.
	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, models.TransactionStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_by": approvedBy,
			"approved_at": approvedAt,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to decide transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from one that is already decided.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check transaction: %w", err)
		}
		if count == 0 {
			return nil, domainerrors.ErrTransactionNotFound
		}
		return nil, domainerrors.ErrAlreadyDecided
	}

	return r.GetByID(ctx, id)
}

func (r *transactionRepository) InMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Partner").
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Order("transaction_date ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) InRange(ctx context.Context, partnerID uint, from, to time.Time) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("transaction_date >= ? AND transaction_date < ?", from, to)
	if partnerID != 0 {
		query = query.Where("partner_id = ?", partnerID)
	}

	var txs []models.Transaction
	if err := query.Order("transaction_date ASC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions in range: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) CountByService(ctx context.Context, serviceID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for service: %w", err)
	}
	return count, nil
}

func (r *transactionRepository) StatusCounts(ctx context.Context, partnerID uint) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("status, COUNT(*) as count").
		Group("status")
	if partnerID != 0 {
		query = query.Where("partner_id = ?", partnerID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
