package services

import (
	"strings"

	"researchflow/models"

	"golang.org/x/text/cases"
)

// ArticleFilter narrows the article list. A nil Status means no status filter.
type ArticleFilter struct {
	Query  string
	Status *models.ArticleStatus
}

// FilterArticles keeps the articles matching both the query and the status.
// The query matches case-insensitively against the title, the abstract and any keyword.
// Order is preserved.
func FilterArticles(articles []models.Article, f ArticleFilter) []models.Article {
	fold := cases.Fold()
	query := fold.String(f.Query)

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if f.Status != nil && a.CurrentStatus != *f.Status {
			continue
		}
		if query != "" && !matchesQuery(fold, a, query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesQuery(fold cases.Caser, a models.Article, query string) bool {
	if strings.Contains(fold.String(a.Title), query) || strings.Contains(fold.String(a.Abstract), query) {
		return true
	}
	for _, k := range a.Keywords {
		if strings.Contains(fold.String(k), query) {
			return true
		}
	}
	return false
}

// ParseKeywords splits comma separated input, trimming blanks and dropping empty entries.
func ParseKeywords(raw string) []string {
	keywords := []string{}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
