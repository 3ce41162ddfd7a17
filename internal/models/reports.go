package models

// DashboardStats is the per-partner headline block.
type DashboardStats struct {
	TotalEarnings        float64 `json:"total_earnings"`
	TotalTransactions    int64   `json:"total_transactions"`
	PendingTransactions  int64   `json:"pending_transactions"`
	ApprovedTransactions int64   `json:"approved_transactions"`
	RejectedTransactions int64   `json:"rejected_transactions"`
}

// ChartPoint is one bucket of a time series fed to the dashboard charts.
type ChartPoint struct {
	Date     string  `json:"date"`
	Earnings float64 `json:"earnings"`
	Count    int     `json:"count"`
}

// ReportSummary is the headline block of the monthly admin report.
// Revenue-bearing figures include approved transactions only.
type ReportSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalCommission   float64 `json:"total_commission"`
	TotalTransactions int     `json:"total_transactions"`
	ActivePartners    int     `json:"active_partners"`
}

// PartnerReportRow is one partner's line in the monthly report.
type PartnerReportRow struct {
	PartnerID   uint    `json:"partner_id"`
	PartnerName string  `json:"partner_name"`
	Earnings    float64 `json:"earnings"`
	Count       int     `json:"count"`
}

// ServiceReportRow is one service's line in the monthly report.
type ServiceReportRow struct {
	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Revenue     float64 `json:"revenue"`
	Count       int     `json:"count"`
}

// MonthlyReport bundles everything the admin report screen and the
// spreadsheet export consume.
type MonthlyReport struct {
	Year     int                `json:"year"`
	Month    int                `json:"month"`
	Summary  ReportSummary      `json:"summary"`
	Partners []PartnerReportRow `json:"partners"`
	Services []ServiceReportRow `json:"services"`
}

// VisibleService is a catalog entry a partner may sell, with the effective
// commission rate already resolved.
type VisibleService struct {
	ServiceID               uint    `json:"service_id"`
	Name                    string  `json:"name"`
	EffectiveCommissionRate float64 `json:"effective_commission_rate"`
}
