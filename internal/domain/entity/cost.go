package entity

// CostBreakdown maps an AWS service name to its unblended cost over the
// trailing 30-day window, rounded to two decimal places.
type CostBreakdown map[string]float64

// MonthlyCost represents the cost for a specific month, used for trend analysis.
type MonthlyCost struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

// CostTrend is the monthly cost series for the trailing six months.
type CostTrend struct {
	AccountID    string        `json:"account_id"`
	MonthlyCosts []MonthlyCost `json:"monthly_costs"`
}
