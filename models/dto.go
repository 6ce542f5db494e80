package models

// CreateArticleRequest carries the fields of the "New Article" form.
// Keywords is the raw comma separated input.
type CreateArticleRequest struct {
	Title    string        `json:"title" form:"title"`
	Abstract string        `json:"abstract" form:"abstract"`
	Keywords string        `json:"keywords" form:"keywords"`
	Status   ArticleStatus `json:"status" form:"status" validate:"omitempty,oneof=DRAFT SUBMITTED UNDER_REVIEW REVISION_REQUIRED ACCEPTED REJECTED PUBLISHED"`
}

type ArticleListParams struct {
	Query  string `form:"q"`
	Status string `form:"status"`
}

type ArticleListResponse struct {
	Articles []Article `json:"articles"`
	Showing  int       `json:"showing"`
	Total    int       `json:"total"`
}

// ArticleAction is a lifecycle affordance offered on the detail view.
type ArticleAction struct {
	Name    string `json:"name"`
	Primary bool   `json:"primary"`
}

// TimelineGap describes an event whose old state does not continue the previous event.
type TimelineGap struct {
	EventID  string         `json:"event_id"`
	Expected *ArticleStatus `json:"expected"`
	Actual   *ArticleStatus `json:"actual"`
}

type ArticleDetail struct {
	Article        Article          `json:"article"`
	Versions       []ArticleVersion `json:"versions"`
	Events         []LifecycleEvent `json:"events"`
	CurrentVersion *ArticleVersion  `json:"current_version,omitempty"`
	Actions        []ArticleAction  `json:"actions"`
	TimelineGaps   []TimelineGap    `json:"timeline_gaps"`
}

type TeamOverview struct {
	Roles   []RoleCount `json:"roles"`
	Members []User      `json:"members"`
}

type ReviewQueue struct {
	Stats    ReviewStats `json:"stats"`
	Articles []Article   `json:"articles"`
}

type DashboardOverview struct {
	Stats          DashboardStats `json:"stats"`
	RecentArticles []Article      `json:"recent_articles"`
}
