// Package router wires handlers and middleware into the gin engine.
package router

import (
	"net/http"
	"strings"
	"time"

	"researchflow/config"
	"researchflow/handlers"
	"researchflow/helper"
	"researchflow/metrics"
	"researchflow/middleware"
	"researchflow/services"
	"researchflow/views"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Deps struct {
	Config           *config.Config
	Log              zerolog.Logger
	Metrics          *metrics.Metrics
	Helper           *helper.HTTPHelper
	ArticleService   services.ArticleService
	DashboardService services.DashboardService
	TeamService      services.TeamService

	// Now defaults to time.Now and drives the relative times on the pages.
	Now func() time.Time
}

func New(deps Deps) (*gin.Engine, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	tmpl, err := views.Load(deps.Now)
	if err != nil {
		return nil, err
	}

	articleHandler := handlers.NewArticleHandler(deps.ArticleService, deps.Helper, deps.Metrics)
	dashboardHandler := handlers.NewDashboardHandler(deps.DashboardService, deps.ArticleService, deps.Helper)
	teamHandler := handlers.NewTeamHandler(deps.TeamService, deps.Helper)
	pageHandler := handlers.NewPageHandler(
		deps.Config,
		deps.ArticleService,
		deps.DashboardService,
		deps.TeamService,
		deps.Helper,
		deps.Metrics,
		deps.Log,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(middleware.Metrics(deps.Metrics))
	router.Use(middleware.CORS())
	router.SetHTMLTemplate(tmpl)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	// Pages
	router.GET("/", pageHandler.Dashboard)
	router.GET("/articles", pageHandler.Articles)
	router.POST("/articles", pageHandler.CreateArticle)
	router.GET("/articles/:id", pageHandler.ArticleDetail)
	router.GET("/reviews", pageHandler.Reviews)
	router.GET("/analytics", pageHandler.Analytics)
	router.GET("/team", pageHandler.Team)
	router.GET("/settings", pageHandler.Settings)

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/statuses", articleHandler.GetStatuses)

		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.GET("/:id/versions", articleHandler.GetArticleVersions)
			articles.GET("/:id/timeline", articleHandler.GetArticleTimeline)
		}

		v1.GET("/dashboard", dashboardHandler.GetDashboard)
		v1.GET("/reviews", dashboardHandler.GetReviews)
		v1.GET("/analytics", dashboardHandler.GetAnalytics)
		v1.GET("/analytics/export.csv", dashboardHandler.ExportArticles)
		v1.GET("/team", teamHandler.GetTeam)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			deps.Helper.SendNotFoundError(c, "Route not found", deps.Helper.EmptyJsonMap())
			return
		}
		pageHandler.NotFound(c)
	})

	deps.Metrics.SetArticleCounts(deps.ArticleService.StatusCounts())
	return router, nil
}
