package report

import (
	"testing"
	"time"

	"mabportal/internal/models"

	"github.com/stretchr/testify/assert"
)

func tx(partnerID, serviceID uint, status string, date time.Time, amount, commission float64) models.Transaction {
	return models.Transaction{
		PartnerID:        partnerID,
		ServiceID:        serviceID,
		Status:           status,
		TransactionDate:  date,
		TotalAmount:      amount,
		CommissionAmount: commission,
	}
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestSumCommission(t *testing.T) {
	tests := []struct {
		name   string
		txs    []models.Transaction
		filter string
		want   float64
	}{
		{
			name: "empty input sums to zero",
			txs:  nil,
			want: 0,
		},
		{
			name: "single transaction",
			txs:  []models.Transaction{tx(1, 1, models.TransactionStatusApproved, day(1), 1000, 100)},
			want: 100,
		},
		{
			name: "many transactions",
			txs: func() []models.Transaction {
				var txs []models.Transaction
				for i := 0; i < 50; i++ {
					txs = append(txs, tx(1, 1, models.TransactionStatusApproved, day(1), 100, 2.5))
				}
				return txs
			}(),
			want: 125,
		},
		{
			name: "status filter skips the rest",
			txs: []models.Transaction{
				tx(1, 1, models.TransactionStatusApproved, day(1), 1000, 100),
				tx(1, 1, models.TransactionStatusPending, day(1), 500, 50),
				tx(1, 1, models.TransactionStatusRejected, day(1), 300, 30),
			},
			filter: models.TransactionStatusApproved,
			want:   100,
		},
		{
			name: "sum is rounded to cents",
			txs: []models.Transaction{
				tx(1, 1, models.TransactionStatusApproved, day(1), 100, 0.1),
				tx(1, 1, models.TransactionStatusApproved, day(1), 100, 0.2),
			},
			want: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumCommission(tt.txs, tt.filter))
		})
	}
}

func TestGroupByPeriod(t *testing.T) {
	txs := []models.Transaction{
		tx(1, 1, models.TransactionStatusApproved, day(15), 300, 30),
		tx(1, 1, models.TransactionStatusApproved, day(3), 100, 10),
		tx(2, 1, models.TransactionStatusApproved, day(15), 200, 20),
		tx(1, 1, models.TransactionStatusApproved, time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC), 50, 5),
	}

	t.Run("day buckets in calendar order", func(t *testing.T) {
		buckets := GroupByPeriod(txs, GranularityDay)

		assert.Len(t, buckets, 3)
		assert.Equal(t, "2026-01-20", buckets[0].Label)
		assert.Equal(t, "2026-03-03", buckets[1].Label)
		assert.Equal(t, "2026-03-15", buckets[2].Label)
		assert.Equal(t, float64(500), buckets[2].TotalAmount)
		assert.Equal(t, float64(50), buckets[2].TotalCommission)
		assert.Equal(t, 2, buckets[2].Count)
	})

	t.Run("month buckets merge days", func(t *testing.T) {
		buckets := GroupByPeriod(txs, GranularityMonth)

		assert.Len(t, buckets, 2)
		assert.Equal(t, "2026-01", buckets[0].Label)
		assert.Equal(t, "2026-03", buckets[1].Label)
		assert.Equal(t, float64(600), buckets[1].TotalAmount)
		assert.Equal(t, 3, buckets[1].Count)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		buckets := GroupByPeriod(nil, GranularityDay)
		assert.NotNil(t, buckets)
		assert.Empty(t, buckets)
	})
}

func TestGroupByPartner(t *testing.T) {
	txs := []models.Transaction{
		tx(1, 1, models.TransactionStatusApproved, day(1), 100, 10),
		tx(2, 1, models.TransactionStatusApproved, day(1), 500, 50),
		tx(1, 1, models.TransactionStatusApproved, day(2), 200, 20),
		tx(3, 1, models.TransactionStatusApproved, day(2), 300, 30),
	}

	buckets := GroupByPartner(txs)

	assert.Len(t, buckets, 3)
	assert.Equal(t, uint(2), buckets[0].PartnerID)
	assert.Equal(t, float64(50), buckets[0].TotalEarnings)
	assert.Equal(t, uint(1), buckets[1].PartnerID)
	assert.Equal(t, float64(30), buckets[1].TotalEarnings)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, uint(3), buckets[2].PartnerID)
}

func TestGroupByPartnerTieBreaksByID(t *testing.T) {
	txs := []models.Transaction{
		tx(5, 1, models.TransactionStatusApproved, day(1), 100, 25),
		tx(2, 1, models.TransactionStatusApproved, day(1), 100, 25),
	}

	buckets := GroupByPartner(txs)

	assert.Equal(t, uint(2), buckets[0].PartnerID)
	assert.Equal(t, uint(5), buckets[1].PartnerID)
}

func TestGroupByService(t *testing.T) {
	txs := []models.Transaction{
		tx(1, 1, models.TransactionStatusApproved, day(1), 100, 10),
		tx(1, 2, models.TransactionStatusApproved, day(1), 900, 90),
		tx(2, 1, models.TransactionStatusApproved, day(2), 400, 40),
	}

	buckets := GroupByService(txs)

	assert.Len(t, buckets, 2)
	assert.Equal(t, uint(2), buckets[0].ServiceID)
	assert.Equal(t, float64(900), buckets[0].TotalRevenue)
	assert.Equal(t, uint(1), buckets[1].ServiceID)
	assert.Equal(t, float64(500), buckets[1].TotalRevenue)
	assert.Equal(t, 2, buckets[1].Count)
}

func TestFilterApproved(t *testing.T) {
	txs := []models.Transaction{
		tx(1, 1, models.TransactionStatusApproved, day(1), 100, 10),
		tx(1, 1, models.TransactionStatusPending, day(1), 200, 20),
		tx(1, 1, models.TransactionStatusRejected, day(1), 300, 30),
		tx(2, 1, models.TransactionStatusApproved, day(2), 400, 40),
	}

	approved := FilterApproved(txs)

	assert.Len(t, approved, 2)
	for _, tx := range approved {
		assert.Equal(t, models.TransactionStatusApproved, tx.Status)
	}

	assert.Empty(t, FilterApproved(nil))
}

func TestChartSeries(t *testing.T) {
	buckets := []PeriodBucket{
		{Label: "2026-03-01", TotalCommission: 10, Count: 1},
		{Label: "2026-03-02", TotalCommission: 25, Count: 3},
	}

	points := ChartSeries(buckets)

	assert.Len(t, points, 2)
	assert.Equal(t, "2026-03-01", points[0].Date)
	assert.Equal(t, float64(25), points[1].Earnings)
	assert.Equal(t, 3, points[1].Count)
}
