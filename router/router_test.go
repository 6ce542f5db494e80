package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"researchflow/config"
	"researchflow/helper"
	"researchflow/logger"
	"researchflow/metrics"
	"researchflow/models"
	"researchflow/repositories"
	"researchflow/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type envelope[T any] struct {
	Code        int             `json:"code"`
	CodeMessage json.RawMessage `json:"code_message"`
	CodeType    string          `json:"code_type"`
	Data        T               `json:"data"`
}

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest builds a fresh router so articles created by one test do not leak into the next.
func (suite *RouterTestSuite) SetupTest() {
	seed, err := repositories.DefaultSeed()
	suite.Require().NoError(err)

	articleRepo := repositories.NewArticleRepository(seed)
	eventRepo := repositories.NewLifecycleEventRepository(seed)
	articleService := services.NewArticleService(articleRepo, repositories.NewArticleVersionRepository(seed), eventRepo)

	httpHelper, err := helper.NewHTTPHelper()
	suite.Require().NoError(err)

	router, err := New(Deps{
		Config:           &config.Config{AppName: "ResearchFlow", CurrentUser: "u1", Port: 8080},
		Log:              logger.New(logger.Config{Level: "error", Output: io.Discard}),
		Metrics:          metrics.New(),
		Helper:           httpHelper,
		ArticleService:   articleService,
		DashboardService: services.NewDashboardService(articleService, articleRepo, eventRepo),
		TeamService:      services.NewTeamService(repositories.NewUserRepository(seed)),
		Now:              func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) },
	})
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *RouterTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) postJSON(path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return suite.do(req)
}

func (suite *RouterTestSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return suite.do(req)
}

func (suite *RouterTestSuite) get(path string) *httptest.ResponseRecorder {
	return suite.do(httptest.NewRequest("GET", path, nil))
}

func (suite *RouterTestSuite) TestHealth() {
	w := suite.get("/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "healthy")
}

func (suite *RouterTestSuite) TestListArticles() {
	w := suite.get("/api/v1/articles?q=vision")
	suite.Equal(http.StatusOK, w.Code)

	var resp envelope[models.ArticleListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(200, resp.Code)
	suite.Equal(3, resp.Data.Showing)
	suite.Equal(8, resp.Data.Total)
}

func (suite *RouterTestSuite) TestListArticlesUnknownStatus() {
	w := suite.get("/api/v1/articles?status=ARCHIVED")
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp envelope[map[string]interface{}]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("badRequest", resp.CodeType)
}

func (suite *RouterTestSuite) TestCreateAndListArticle() {
	w := suite.postJSON("/api/v1/articles", models.CreateArticleRequest{Title: "X", Keywords: "ml, vision"})
	suite.Equal(http.StatusCreated, w.Code)

	var created envelope[models.Article]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("X", created.Data.Title)
	suite.Equal(models.StatusDraft, created.Data.CurrentStatus)
	suite.Equal(1, created.Data.CurrentVersionNumber)
	suite.Empty(created.Data.Authors)

	w = suite.get("/api/v1/articles")
	var list envelope[models.ArticleListResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(9, list.Data.Total)
	suite.Equal(created.Data.ID, list.Data.Articles[0].ID)

	w = suite.get("/api/v1/articles/" + created.Data.ID)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestCreateArticleValidation() {
	w := suite.postJSON("/api/v1/articles", map[string]string{"title": "X", "status": "ARCHIVED"})
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp envelope[map[string]interface{}]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(403, resp.Code)
	suite.Equal("validationError", resp.CodeType)

	var messages map[string][]string
	suite.NoError(json.Unmarshal(resp.CodeMessage, &messages))
	suite.Contains(messages, "status")
}

func (suite *RouterTestSuite) TestCreateArticleMalformedBody() {
	req := httptest.NewRequest("POST", "/api/v1/articles", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestArticleDetailEndpoints() {
	w := suite.get("/api/v1/articles/a3")
	suite.Equal(http.StatusOK, w.Code)

	var detail envelope[models.ArticleDetail]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &detail))
	suite.Equal("a3", detail.Data.Article.ID)
	suite.Len(detail.Data.Versions, 3)

	w = suite.get("/api/v1/articles/a3/versions")
	var versions envelope[[]models.ArticleVersion]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &versions))
	suite.Equal(3, versions.Data[0].VersionNumber)

	w = suite.get("/api/v1/articles/a8/timeline")
	var events envelope[[]models.LifecycleEvent]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &events))
	suite.Len(events.Data, 3)
	suite.Nil(events.Data[0].OldState)
}

func (suite *RouterTestSuite) TestArticleNotFound() {
	for _, path := range []string{"/api/v1/articles/missing", "/api/v1/articles/missing/versions", "/api/v1/articles/missing/timeline"} {
		w := suite.get(path)
		suite.Equal(http.StatusNotFound, w.Code, path)

		var resp envelope[map[string]interface{}]
		suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal("notFound", resp.CodeType)
	}
}

func (suite *RouterTestSuite) TestAggregateEndpoints() {
	w := suite.get("/api/v1/dashboard")
	suite.Equal(http.StatusOK, w.Code)
	var overview envelope[models.DashboardOverview]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &overview))
	suite.Equal(8, overview.Data.Stats.TotalArticles)
	suite.Len(overview.Data.RecentArticles, 5)

	w = suite.get("/api/v1/reviews")
	var queue envelope[models.ReviewQueue]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &queue))
	suite.Equal(3, queue.Data.Stats.Pending)

	w = suite.get("/api/v1/analytics")
	var report envelope[models.AnalyticsReport]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &report))
	suite.Equal(67, report.Data.AcceptanceRate)

	w = suite.get("/api/v1/team")
	var team envelope[models.TeamOverview]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &team))
	suite.Len(team.Data.Members, 8)

	w = suite.get("/api/v1/statuses")
	var statuses envelope[[]models.StatusInfo]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &statuses))
	suite.Len(statuses.Data, 7)
}

func (suite *RouterTestSuite) TestExportCSV() {
	w := suite.get("/api/v1/analytics/export.csv")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	suite.Len(lines, 9)
	suite.Equal("id,title,status,version,updated_at", lines[0])
}

func (suite *RouterTestSuite) TestPagesRender() {
	for _, path := range []string{"/", "/articles", "/articles/a1", "/articles/a8", "/reviews", "/analytics", "/team", "/settings"} {
		w := suite.get(path)
		suite.Equal(http.StatusOK, w.Code, path)
		suite.Contains(w.Header().Get("Content-Type"), "text/html", path)
		suite.Contains(w.Body.String(), "ResearchFlow", path)
	}
}

func (suite *RouterTestSuite) TestArticlesPageFilters() {
	w := suite.get("/articles?q=vision")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Showing 3 of 8 articles")

	w = suite.get("/articles?q=zzzz")
	suite.Contains(w.Body.String(), "No articles found matching your criteria.")

	// an unknown status is ignored
	w = suite.get("/articles?status=ARCHIVED")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Showing 8 of 8 articles")
}

func (suite *RouterTestSuite) TestCreateArticleForm() {
	w := suite.postForm("/articles", url.Values{"title": {"Form Article"}, "keywords": {"a, b"}, "status": {"SUBMITTED"}})
	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Equal("/articles", w.Header().Get("Location"))

	w = suite.get("/articles")
	suite.Contains(w.Body.String(), "Form Article")
	suite.Contains(w.Body.String(), "Showing 9 of 9 articles")
}

func (suite *RouterTestSuite) TestCreateArticleFormInvalid() {
	w := suite.postForm("/articles", url.Values{"title": {"Bad"}, "status": {"ARCHIVED"}})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "The article could not be created.")
	suite.Contains(w.Body.String(), "Showing 8 of 8 articles")
}

func (suite *RouterTestSuite) TestSettingsShowsCurrentUser() {
	w := suite.get("/settings")
	suite.Contains(w.Body.String(), "Dr. Sarah Chen")
	suite.Contains(w.Body.String(), "Weekly digest")
}

func (suite *RouterTestSuite) TestNotFound() {
	w := suite.get("/articles/missing")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Article not found")

	w = suite.get("/does/not/exist")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Oops! Page not found")

	w = suite.get("/api/v1/nothing")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/json")
}

func (suite *RouterTestSuite) TestMetricsEndpoint() {
	suite.postJSON("/api/v1/articles", models.CreateArticleRequest{Title: "Counted"})

	w := suite.get("/metrics")
	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, "researchflow_articles_created_total 1")
	suite.Contains(body, `researchflow_articles{status="DRAFT"} 2`)
	suite.Contains(body, "researchflow_http_requests_total")
}

func (suite *RouterTestSuite) TestCORSPreflight() {
	w := suite.do(httptest.NewRequest("OPTIONS", "/api/v1/articles", nil))
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
