package models

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DecisionCount struct {
	Decision string `json:"decision"`
	Count    int    `json:"count"`
}

// DashboardStats is the aggregate shown on the dashboard and analytics pages.
// AverageReviewTime is in days.
type DashboardStats struct {
	TotalArticles      int                   `json:"total_articles"`
	ArticlesInReview   int                   `json:"articles_in_review"`
	ArticlesPublished  int                   `json:"articles_published"`
	AverageReviewTime  float64               `json:"average_review_time"`
	StatusDistribution map[ArticleStatus]int `json:"status_distribution"`
	MonthlySubmissions []MonthlyCount        `json:"monthly_submissions"`
	ReviewerDecisions  []DecisionCount       `json:"reviewer_decisions"`
}

// StatusSlice is one slice of the status distribution chart.
type StatusSlice struct {
	StatusInfo
	Count int `json:"count"`
}

// Distribution lists the status counts in lifecycle order.
func (d DashboardStats) Distribution() []StatusSlice {
	slices := make([]StatusSlice, 0, len(allStatuses))
	for _, info := range StatusCatalog() {
		slices = append(slices, StatusSlice{StatusInfo: info, Count: d.StatusDistribution[info.Status]})
	}
	return slices
}

type ReviewStats struct {
	Pending            int     `json:"pending"`
	CompletedThisMonth int     `json:"completed_this_month"`
	AverageDays        float64 `json:"average_days"`
}

type AnalyticsReport struct {
	Stats               DashboardStats `json:"stats"`
	AcceptanceRate      int            `json:"acceptance_rate"`
	AverageVersions     float64        `json:"average_versions"`
	ActiveReviewers     int            `json:"active_reviewers"`
	LongestReviewCycles []Article      `json:"longest_review_cycles"`
}

type RoleCount struct {
	Role  UserRole `json:"role"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}
