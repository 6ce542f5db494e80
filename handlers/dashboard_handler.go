package handlers

import (
	"fmt"
	"net/http"

	"researchflow/helper"
	"researchflow/models"
	"researchflow/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	articleService   services.ArticleService
	Helper           *helper.HTTPHelper
}

func NewDashboardHandler(dashboardService services.DashboardService, articleService services.ArticleService, httpHelper *helper.HTTPHelper) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, articleService: articleService, Helper: httpHelper}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", h.dashboardService.Overview())
}

func (h *DashboardHandler) GetReviews(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", h.dashboardService.Reviews())
}

func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", h.dashboardService.Analytics())
}

func (h *DashboardHandler) ExportArticles(c *gin.Context) {
	list, err := h.articleService.ListArticles(models.ArticleListParams{})
	if err != nil {
		h.Helper.SendErrorFrom(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "articles.csv"))
	c.Status(http.StatusOK)
	if err := services.WriteArticlesCSV(c.Writer, list.Articles); err != nil {
		c.Error(err)
	}
}
