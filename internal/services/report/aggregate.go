// Package report computes the portal's derived figures: dashboard stats,
// monthly admin reports and chart series. Aggregation only ever reads the
// commission snapshots stored on transactions; rates are never re-resolved.
package report

import (
	"sort"

	"mabportal/internal/models"
	"mabportal/internal/utils"
)

// Grouping granularities for GroupByPeriod.
const (
	GranularityDay   = "day"
	GranularityMonth = "month"
)

// PeriodBucket is one calendar bucket of grouped transactions.
type PeriodBucket struct {
	Label           string  `json:"label"`
	TotalAmount     float64 `json:"total_amount"`
	TotalCommission float64 `json:"total_commission"`
	Count           int     `json:"count"`
}

// PartnerBucket is one partner's summed earnings.
type PartnerBucket struct {
	PartnerID     uint    `json:"partner_id"`
	TotalEarnings float64 `json:"total_earnings"`
	Count         int     `json:"count"`
}

// ServiceBucket is one service's summed revenue.
type ServiceBucket struct {
	ServiceID    uint    `json:"service_id"`
	TotalRevenue float64 `json:"total_revenue"`
	Count        int     `json:"count"`
}

// SumCommission sums commission amounts over transactions matching the status
// filter. An empty filter matches every status.
func SumCommission(txs []models.Transaction, statusFilter string) float64 {
	var sum float64
	for _, tx := range txs {
		if statusFilter != "" && tx.Status != statusFilter {
			continue
		}
		sum += tx.CommissionAmount
	}
	return utils.RoundCurrency(sum)
}

// GroupByPeriod groups transactions into day or month buckets of their
// business date, ordered by calendar position. Callers feeding revenue
// reports pass approved transactions only.
func GroupByPeriod(txs []models.Transaction, granularity string) []PeriodBucket {
	layout := "2006-01-02"
	if granularity == GranularityMonth {
		layout = "2006-01"
	}

	totals := make(map[string]*PeriodBucket)
	for _, tx := range txs {
		label := tx.TransactionDate.Format(layout)
		bucket, ok := totals[label]
		if !ok {
			bucket = &PeriodBucket{Label: label}
			totals[label] = bucket
		}
		bucket.TotalAmount += tx.TotalAmount
		bucket.TotalCommission += tx.CommissionAmount
		bucket.Count++
	}

	buckets := make([]PeriodBucket, 0, len(totals))
	for _, b := range totals {
		b.TotalAmount = utils.RoundCurrency(b.TotalAmount)
		b.TotalCommission = utils.RoundCurrency(b.TotalCommission)
		buckets = append(buckets, *b)
	}
	// The layouts sort lexicographically in calendar order.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}

// GroupByPartner sums commission earnings per partner, sorted descending by
// earnings with id ascending as tie-break.
func GroupByPartner(txs []models.Transaction) []PartnerBucket {
	totals := make(map[uint]*PartnerBucket)
	for _, tx := range txs {
		bucket, ok := totals[tx.PartnerID]
		if !ok {
			bucket = &PartnerBucket{PartnerID: tx.PartnerID}
			totals[tx.PartnerID] = bucket
		}
		bucket.TotalEarnings += tx.CommissionAmount
		bucket.Count++
	}

	buckets := make([]PartnerBucket, 0, len(totals))
	for _, b := range totals {
		b.TotalEarnings = utils.RoundCurrency(b.TotalEarnings)
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].TotalEarnings != buckets[j].TotalEarnings {
			return buckets[i].TotalEarnings > buckets[j].TotalEarnings
		}
		return buckets[i].PartnerID < buckets[j].PartnerID
	})
	return buckets
}

// GroupByService sums sale revenue per service, sorted descending by revenue
// with id ascending as tie-break.
func GroupByService(txs []models.Transaction) []ServiceBucket {
	totals := make(map[uint]*ServiceBucket)
	for _, tx := range txs {
		bucket, ok := totals[tx.ServiceID]
		if !ok {
			bucket = &ServiceBucket{ServiceID: tx.ServiceID}
			totals[tx.ServiceID] = bucket
		}
		bucket.TotalRevenue += tx.TotalAmount
		bucket.Count++
	}

	buckets := make([]ServiceBucket, 0, len(totals))
	for _, b := range totals {
		b.TotalRevenue = utils.RoundCurrency(b.TotalRevenue)
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].TotalRevenue != buckets[j].TotalRevenue {
			return buckets[i].TotalRevenue > buckets[j].TotalRevenue
		}
		return buckets[i].ServiceID < buckets[j].ServiceID
	})
	return buckets
}

// FilterApproved returns the approved subset of transactions. Revenue-bearing
// aggregates are computed over this subset only.
func FilterApproved(txs []models.Transaction) []models.Transaction {
	approved := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Status == models.TransactionStatusApproved {
			approved = append(approved, tx)
		}
	}
	return approved
}

// ChartSeries turns day buckets into the chart payload the dashboards plot,
// filling labels straight from bucket order.
func ChartSeries(buckets []PeriodBucket) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, models.ChartPoint{
			Date:     b.Label,
			Earnings: b.TotalCommission,
			Count:    b.Count,
		})
	}
	return points
}
