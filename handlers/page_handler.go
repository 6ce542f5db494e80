package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"researchflow/config"
	"researchflow/helper"
	"researchflow/metrics"
	"researchflow/models"
	"researchflow/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gopkg.in/go-playground/validator.v9"
)

// NavItem is one entry of the sidebar.
type NavItem struct {
	Path   string
	Label  string
	Active bool
	Badge  int
}

type Notification struct {
	Label   string
	Enabled bool
}

var navigation = []NavItem{
	{Path: "/", Label: "Dashboard"},
	{Path: "/articles", Label: "Articles"},
	{Path: "/reviews", Label: "Reviews"},
	{Path: "/analytics", Label: "Analytics"},
	{Path: "/team", Label: "Team"},
	{Path: "/settings", Label: "Settings"},
}

var defaultNotifications = []Notification{
	{Label: "Email notifications", Enabled: true},
	{Label: "Review assignments", Enabled: true},
	{Label: "Status changes", Enabled: true},
	{Label: "Weekly digest", Enabled: false},
}

// PageHandler renders the server side dashboard pages.
type PageHandler struct {
	cfg              *config.Config
	articleService   services.ArticleService
	dashboardService services.DashboardService
	teamService      services.TeamService
	Helper           *helper.HTTPHelper
	metrics          *metrics.Metrics
	log              zerolog.Logger
}

func NewPageHandler(
	cfg *config.Config,
	articleService services.ArticleService,
	dashboardService services.DashboardService,
	teamService services.TeamService,
	httpHelper *helper.HTTPHelper,
	m *metrics.Metrics,
	log zerolog.Logger,
) *PageHandler {
	return &PageHandler{
		cfg:              cfg,
		articleService:   articleService,
		dashboardService: dashboardService,
		teamService:      teamService,
		Helper:           httpHelper,
		metrics:          m,
		log:              log,
	}
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	overview := h.dashboardService.Overview()
	monthlyMax, decisionMax := chartMaxima(overview.Stats)
	h.render(c, http.StatusOK, "dashboard.html", "Dashboard", gin.H{
		"Stats":       overview.Stats,
		"Recent":      overview.RecentArticles,
		"MonthlyMax":  monthlyMax,
		"DecisionMax": decisionMax,
	})
}

func (h *PageHandler) Articles(c *gin.Context) {
	h.renderArticles(c, http.StatusOK, nil)
}

func (h *PageHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderArticles(c, http.StatusBadRequest, []string{err.Error()})
		return
	}

	article, err := createArticle(h.Helper, h.articleService, h.metrics, req)
	if err != nil {
		status, messages := h.formErrors(err)
		h.renderArticles(c, status, messages)
		return
	}

	h.log.Info().Str("article_id", article.ID).Str("status", string(article.CurrentStatus)).Msg("article created")
	c.Redirect(http.StatusSeeOther, "/articles")
}

func (h *PageHandler) ArticleDetail(c *gin.Context) {
	detail, err := h.articleService.GetArticleDetail(c.Param("id"))
	if err != nil {
		status := h.Helper.GetStatusCode(err)
		if status == http.StatusNotFound {
			h.render(c, status, "article_not_found.html", "Article not found", gin.H{})
			return
		}
		c.AbortWithError(status, err)
		return
	}

	if len(detail.TimelineGaps) > 0 {
		h.log.Warn().Str("article_id", detail.Article.ID).Int("gaps", len(detail.TimelineGaps)).Msg("lifecycle chain is not continuous")
	}
	h.render(c, http.StatusOK, "article_detail.html", detail.Article.Title, gin.H{"Detail": detail})
}

func (h *PageHandler) Reviews(c *gin.Context) {
	h.render(c, http.StatusOK, "reviews.html", "Reviews", gin.H{"Queue": h.dashboardService.Reviews()})
}

func (h *PageHandler) Analytics(c *gin.Context) {
	report := h.dashboardService.Analytics()
	monthlyMax, decisionMax := chartMaxima(report.Stats)
	h.render(c, http.StatusOK, "analytics.html", "Analytics", gin.H{
		"Report":      report,
		"Stats":       report.Stats,
		"MonthlyMax":  monthlyMax,
		"DecisionMax": decisionMax,
	})
}

func (h *PageHandler) Team(c *gin.Context) {
	h.render(c, http.StatusOK, "team.html", "Team", gin.H{"Team": h.teamService.Overview()})
}

func (h *PageHandler) Settings(c *gin.Context) {
	data := gin.H{"Notifications": defaultNotifications}
	user, err := h.teamService.GetUser(h.cfg.CurrentUser)
	if err != nil {
		h.log.Warn().Err(err).Str("user_id", h.cfg.CurrentUser).Msg("current user not found")
	} else {
		data["User"] = user
	}
	h.render(c, http.StatusOK, "settings.html", "Settings", data)
}

func (h *PageHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "not_found.html", "Page not found", gin.H{})
}

func (h *PageHandler) renderArticles(c *gin.Context, status int, formErrors []string) {
	params := models.ArticleListParams{Query: c.Query("q"), Status: c.Query("status")}
	list, err := h.articleService.ListArticles(params)
	if err != nil {
		// an unknown status filter shows the unfiltered list
		params.Status = ""
		list, err = h.articleService.ListArticles(params)
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
	}

	h.render(c, status, "articles.html", "Articles", gin.H{
		"Query":      params.Query,
		"Selected":   params.Status,
		"List":       list,
		"FormErrors": formErrors,
	})
}

func (h *PageHandler) render(c *gin.Context, status int, name, title string, data gin.H) {
	data["Title"] = title
	data["AppName"] = h.cfg.AppName
	data["Nav"] = h.nav(c.Request.URL.Path)
	c.HTML(status, name, data)
}

func (h *PageHandler) nav(path string) []NavItem {
	pending := h.dashboardService.Reviews().Stats.Pending
	items := make([]NavItem, len(navigation))
	for i, item := range navigation {
		if item.Path == "/" {
			item.Active = path == "/"
		} else {
			item.Active = path == item.Path || strings.HasPrefix(path, item.Path+"/")
		}
		if item.Path == "/reviews" {
			item.Badge = pending
		}
		items[i] = item
	}
	return items
}

// formErrors turns a creation error into the response status and the messages listed
// above the form.
func (h *PageHandler) formErrors(err error) (int, []string) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return h.Helper.GetStatusCode(err), []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, msg := range validationErrors.Translate(h.Helper.Translator) {
		messages = append(messages, msg)
	}
	sort.Strings(messages)
	return http.StatusBadRequest, messages
}

// chartMaxima returns the bar chart scales, never below 1.
func chartMaxima(stats models.DashboardStats) (int, int) {
	monthlyMax, decisionMax := 1, 1
	for _, m := range stats.MonthlySubmissions {
		monthlyMax = max(monthlyMax, m.Count)
	}
	for _, d := range stats.ReviewerDecisions {
		decisionMax = max(decisionMax, d.Count)
	}
	return monthlyMax, decisionMax
}
