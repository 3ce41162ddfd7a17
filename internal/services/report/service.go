package report

import (
	"context"
	"time"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"
	"mabportal/internal/repositories"
	"mabportal/internal/utils"
)

type Service interface {
	// PartnerDashboard returns a partner's headline stats plus a 30-day
	// earnings series of approved sales.
	PartnerDashboard(ctx context.Context, partnerID uint) (*models.DashboardStats, []models.ChartPoint, error)
	// AdminDashboard returns portal-wide stats and the recent earnings series.
	AdminDashboard(ctx context.Context) (*models.DashboardStats, []models.ChartPoint, error)
	// Monthly builds the admin month report with per-partner and per-service
	// breakdowns. Revenue figures include approved transactions only.
	Monthly(ctx context.Context, year, month int) (*models.MonthlyReport, error)
}

type service struct {
	transactions repositories.TransactionRepository
}

func NewService(transactions repositories.TransactionRepository) Service {
	if transactions == nil {
		panic("transaction repository is required")
	}
	return &service{transactions: transactions}
}

func (s *service) PartnerDashboard(ctx context.Context, partnerID uint) (*models.DashboardStats, []models.ChartPoint, error) {
	return s.dashboard(ctx, partnerID)
}

func (s *service) AdminDashboard(ctx context.Context) (*models.DashboardStats, []models.ChartPoint, error) {
	return s.dashboard(ctx, 0)
}

func (s *service) dashboard(ctx context.Context, partnerID uint) (*models.DashboardStats, []models.ChartPoint, error) {
	counts, err := s.transactions.StatusCounts(ctx, partnerID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	recent, err := s.transactions.InRange(ctx, partnerID, from, now.AddDate(0, 0, 1))
	if err != nil {
		return nil, nil, err
	}

	approved := FilterApproved(recent)
	series := ChartSeries(GroupByPeriod(approved, GranularityDay))

	stats := &models.DashboardStats{
		TotalEarnings:        SumCommission(approved, models.TransactionStatusApproved),
		TotalTransactions:    counts[models.TransactionStatusPending] + counts[models.TransactionStatusApproved] + counts[models.TransactionStatusRejected],
		PendingTransactions:  counts[models.TransactionStatusPending],
		ApprovedTransactions: counts[models.TransactionStatusApproved],
		RejectedTransactions: counts[models.TransactionStatusRejected],
	}
	return stats, series, nil
}

func (s *service) Monthly(ctx context.Context, year, month int) (*models.MonthlyReport, error) {
	if year < 2000 || year > 2100 {
		return nil, domainerrors.Validation("year", "is out of range")
	}
	if month < 1 || month > 12 {
		return nil, domainerrors.Validation("month", "must be between 1 and 12")
	}

	txs, err := s.transactions.InMonth(ctx, year, time.Month(month))
	if err != nil {
		return nil, err
	}

	approved := FilterApproved(txs)

	partnerNames := make(map[uint]string)
	serviceNames := make(map[uint]string)
	var totalRevenue float64
	for _, tx := range approved {
		totalRevenue += tx.TotalAmount
		if tx.Partner != nil {
			partnerNames[tx.PartnerID] = tx.Partner.FullName
		}
		if tx.Service != nil {
			serviceNames[tx.ServiceID] = tx.Service.Name
		}
	}

	partnerRows := make([]models.PartnerReportRow, 0)
	for _, b := range GroupByPartner(approved) {
		partnerRows = append(partnerRows, models.PartnerReportRow{
			PartnerID:   b.PartnerID,
			PartnerName: partnerNames[b.PartnerID],
			Earnings:    b.TotalEarnings,
			Count:       b.Count,
		})
	}

	serviceRows := make([]models.ServiceReportRow, 0)
	for _, b := range GroupByService(approved) {
		serviceRows = append(serviceRows, models.ServiceReportRow{
			ServiceID:   b.ServiceID,
			ServiceName: serviceNames[b.ServiceID],
			Revenue:     b.TotalRevenue,
			Count:       b.Count,
		})
	}

	return &models.MonthlyReport{
		Year:  year,
		Month: month,
		Summary: models.ReportSummary{
			TotalRevenue:      utils.RoundCurrency(totalRevenue),
			TotalCommission:   SumCommission(approved, models.TransactionStatusApproved),
			TotalTransactions: len(approved),
			ActivePartners:    len(partnerRows),
		},
		Partners: partnerRows,
		Services: serviceRows,
	}, nil
}
