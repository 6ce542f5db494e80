package services

import (
	"testing"
	"time"

	"researchflow/models"
	"researchflow/repositories"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	articleRepo repositories.ArticleRepository
	eventRepo   repositories.LifecycleEventRepository
	articles    *articleService
	dashboard   *dashboardService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	seed, err := repositories.DefaultSeed()
	require.NoError(t, err)

	articleRepo := repositories.NewArticleRepository(seed)
	eventRepo := repositories.NewLifecycleEventRepository(seed)

	articles := NewArticleService(articleRepo, repositories.NewArticleVersionRepository(seed), eventRepo).(*articleService)
	articles.now = func() time.Time { return fixedNow }
	articles.newID = func() string { return "local-1" }

	dashboard := NewDashboardService(articles, articleRepo, eventRepo).(*dashboardService)
	dashboard.now = func() time.Time { return fixedNow }

	return fixture{articleRepo: articleRepo, eventRepo: eventRepo, articles: articles, dashboard: dashboard}
}

func statusPtr(s models.ArticleStatus) *models.ArticleStatus {
	return &s
}

func ids(articles []models.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}
