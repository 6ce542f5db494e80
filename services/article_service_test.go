package services

import (
	"testing"

	"researchflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArticles(t *testing.T) {
	f := newFixture(t)

	list, err := f.articles.ListArticles(models.ArticleListParams{Query: "vision"})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Showing)
	assert.Equal(t, 8, list.Total)

	_, err = f.articles.ListArticles(models.ArticleListParams{Status: "ARCHIVED"})
	var badRequest models.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)
}

func TestCreateLocalArticle(t *testing.T) {
	f := newFixture(t)

	article, err := f.articles.CreateLocalArticle(models.CreateArticleRequest{Title: "X", Keywords: "a, b"})
	require.NoError(t, err)

	assert.Equal(t, "local-1", article.ID)
	assert.Equal(t, models.StatusDraft, article.CurrentStatus)
	assert.Equal(t, 1, article.CurrentVersionNumber)
	assert.Empty(t, article.Authors)
	assert.Equal(t, []string{"a", "b"}, article.Keywords)
	assert.Equal(t, LocalSubmitter, article.SubmittedBy)
	assert.Equal(t, fixedNow, article.CreatedAt)

	all := f.articleRepo.GetAll()
	require.Len(t, all, 9)
	assert.Equal(t, "X", all[0].Title)
}

func TestCreateLocalArticleDefaults(t *testing.T) {
	f := newFixture(t)

	article, err := f.articles.CreateLocalArticle(models.CreateArticleRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Untitled", article.Title)
	assert.Equal(t, []string{}, article.Keywords)

	accepted, err := f.articles.CreateLocalArticle(models.CreateArticleRequest{Title: "Y", Status: models.StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.CurrentStatus)

	_, err = f.articles.CreateLocalArticle(models.CreateArticleRequest{Status: "ARCHIVED"})
	assert.Error(t, err)
}

func TestCreatedArticleHasNoHistory(t *testing.T) {
	f := newFixture(t)

	article, err := f.articles.CreateLocalArticle(models.CreateArticleRequest{Title: "X"})
	require.NoError(t, err)

	detail, err := f.articles.GetArticleDetail(article.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Versions)
	assert.Empty(t, detail.Events)
	assert.Nil(t, detail.CurrentVersion)
}

func TestGetArticleDetail(t *testing.T) {
	f := newFixture(t)

	detail, err := f.articles.GetArticleDetail("a3")
	require.NoError(t, err)

	require.Len(t, detail.Versions, 3)
	assert.Equal(t, 3, detail.Versions[0].VersionNumber)
	assert.Equal(t, 1, detail.Versions[2].VersionNumber)

	require.NotNil(t, detail.CurrentVersion)
	assert.Equal(t, 3, detail.CurrentVersion.VersionNumber)

	for i := 1; i < len(detail.Events); i++ {
		assert.False(t, detail.Events[i].Timestamp.Before(detail.Events[i-1].Timestamp))
	}
	assert.Empty(t, detail.TimelineGaps)
	assert.Equal(t, []models.ArticleAction{{Name: "Edit"}}, detail.Actions)
}

func TestGetArticleDetailSortsOutOfOrderEvents(t *testing.T) {
	f := newFixture(t)

	detail, err := f.articles.GetArticleDetail("a8")
	require.NoError(t, err)
	require.Len(t, detail.Events, 3)
	assert.Equal(t, "a8-e2", detail.Events[0].ID)
	assert.Nil(t, detail.Events[0].OldState)
	assert.Empty(t, detail.TimelineGaps)
}

func TestArticleActions(t *testing.T) {
	f := newFixture(t)

	draft, err := f.articles.GetArticleDetail("a6")
	require.NoError(t, err)
	assert.Equal(t, []models.ArticleAction{{Name: "Submit", Primary: true}, {Name: "Edit"}}, draft.Actions)

	revision, err := f.articles.GetArticleDetail("a2")
	require.NoError(t, err)
	assert.Equal(t, []models.ArticleAction{{Name: "Submit Revision", Primary: true}, {Name: "Edit"}}, revision.Actions)
}

func TestGetArticleNotFound(t *testing.T) {
	f := newFixture(t)
	var notFound models.ErrorNotFound

	_, err := f.articles.GetArticleDetail("missing")
	assert.ErrorAs(t, err, &notFound)

	_, err = f.articles.GetArticleVersions("missing")
	assert.ErrorAs(t, err, &notFound)

	_, err = f.articles.GetArticleTimeline("missing")
	assert.ErrorAs(t, err, &notFound)
}

func TestReviewQueueAndRecent(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"a1", "a4", "a8"}, ids(f.articles.ReviewQueue()))
	assert.Len(t, f.articles.RecentArticles(5), 5)
	assert.Len(t, f.articles.RecentArticles(50), 8)
}
