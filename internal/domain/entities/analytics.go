package entities

// AdminStats is the admin dashboard headline numbers payload
type AdminStats struct {
	TotalInvestors       int64   `json:"totalInvestors"`
	ActiveInvestors      int64   `json:"activeInvestors"`
	ActiveFarmers        int64   `json:"activeFarmers"`
	ActiveInvestments    int64   `json:"activeInvestments"`
	CompletedInvestments int64   `json:"completedInvestments"`
	InsuranceFund        float64 `json:"insuranceFund"`
	EmergencyAlerts      int64   `json:"emergencyAlerts"`
}

// MonthlyTrend holds per-month investment counts and profit sums for
// the trailing six calendar months, oldest first.
type MonthlyTrend struct {
	Labels      []string  `json:"labels"`
	Investments []int64   `json:"investments"`
	Profits     []float64 `json:"profits"`
}

// TypeDistribution counts investments per product type
type TypeDistribution struct {
	BaidCash int64 `json:"BaidCash"`
	KtiCash  int64 `json:"KtiCash"`
}

// AdminAnalytics is the admin analytics dashboard payload
type AdminAnalytics struct {
	Monthly      MonthlyTrend     `json:"monthly"`
	Distribution TypeDistribution `json:"distribution"`
	Alerts       []ClaimAlert     `json:"alerts"`
}
