package models

import "fmt"

// ArticleStatus is the stage of an article in its editorial lifecycle.
type ArticleStatus string

const (
	StatusDraft            ArticleStatus = "DRAFT"
	StatusSubmitted        ArticleStatus = "SUBMITTED"
	StatusUnderReview      ArticleStatus = "UNDER_REVIEW"
	StatusRevisionRequired ArticleStatus = "REVISION_REQUIRED"
	StatusAccepted         ArticleStatus = "ACCEPTED"
	StatusRejected         ArticleStatus = "REJECTED"
	StatusPublished        ArticleStatus = "PUBLISHED"
)

var allStatuses = []ArticleStatus{
	StatusDraft,
	StatusSubmitted,
	StatusUnderReview,
	StatusRevisionRequired,
	StatusAccepted,
	StatusRejected,
	StatusPublished,
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []ArticleStatus {
	out := make([]ArticleStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// ParseStatus accepts the exact upper-case spelling of a status.
func ParseStatus(s string) (ArticleStatus, error) {
	for _, status := range allStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrorBadRequest{Message: fmt.Sprintf("unknown article status %q", s)}
}

// Valid reports whether s is one of the seven lifecycle statuses.
func (s ArticleStatus) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Label returns the display label. It panics on a status it does not know.
func (s ArticleStatus) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusSubmitted:
		return "Submitted"
	case StatusUnderReview:
		return "Under Review"
	case StatusRevisionRequired:
		return "Revision Required"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	case StatusPublished:
		return "Published"
	}
	panic(fmt.Sprintf("models: no label for article status %q", string(s)))
}

// Variant returns the badge variant used to style the status.
// It panics on a status it does not know.
func (s ArticleStatus) Variant() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusSubmitted:
		return "submitted"
	case StatusUnderReview:
		return "review"
	case StatusRevisionRequired:
		return "revision"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	case StatusPublished:
		return "published"
	}
	panic(fmt.Sprintf("models: no variant for article status %q", string(s)))
}

// Color returns the chart color of the status.
func (s ArticleStatus) Color() string {
	switch s {
	case StatusDraft:
		return "hsl(220, 9%, 46%)"
	case StatusSubmitted:
		return "hsl(217, 91%, 60%)"
	case StatusUnderReview:
		return "hsl(43, 96%, 56%)"
	case StatusRevisionRequired:
		return "hsl(28, 87%, 55%)"
	case StatusAccepted:
		return "hsl(142, 71%, 45%)"
	case StatusRejected:
		return "hsl(0, 84%, 60%)"
	case StatusPublished:
		return "hsl(162, 73%, 46%)"
	}
	panic(fmt.Sprintf("models: no color for article status %q", string(s)))
}

// IsDecision reports whether reaching s concludes a review round.
func (s ArticleStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusRevisionRequired
}

// StatusInfo is the display description of a status.
type StatusInfo struct {
	Status  ArticleStatus `json:"status"`
	Label   string        `json:"label"`
	Variant string        `json:"variant"`
	Color   string        `json:"color"`
}

// StatusCatalog describes every status in lifecycle order.
func StatusCatalog() []StatusInfo {
	infos := make([]StatusInfo, 0, len(allStatuses))
	for _, s := range allStatuses {
		infos = append(infos, StatusInfo{Status: s, Label: s.Label(), Variant: s.Variant(), Color: s.Color()})
	}
	return infos
}
