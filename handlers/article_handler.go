package handlers

import (
	"errors"

	"researchflow/helper"
	"researchflow/metrics"
	"researchflow/models"
	"researchflow/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
	metrics        *metrics.Metrics
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper, m *metrics.Metrics) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper, metrics: m}
}

func (h *ArticleHandler) GetStatuses(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", models.StatusCatalog())
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query", err.Error())
		return
	}

	list, err := h.articleService.ListArticles(params)
	if err != nil {
		h.Helper.SendErrorFrom(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", list)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", err.Error())
		return
	}

	article, err := createArticle(h.Helper, h.articleService, h.metrics, req)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendErrorFrom(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	detail, err := h.articleService.GetArticleDetail(c.Param("id"))
	if err != nil {
		h.Helper.SendErrorFrom(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", detail)
}

func (h *ArticleHandler) GetArticleVersions(c *gin.Context) {
	versions, err := h.articleService.GetArticleVersions(c.Param("id"))
	if err != nil {
		h.Helper.SendErrorFrom(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", versions)
}

func (h *ArticleHandler) GetArticleTimeline(c *gin.Context) {
	events, err := h.articleService.GetArticleTimeline(c.Param("id"))
	if err != nil {
		h.Helper.SendErrorFrom(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", events)
}

// createArticle validates the form and stores the article locally. Shared by the JSON
// endpoint and the HTML form.
func createArticle(httpHelper *helper.HTTPHelper, articleService services.ArticleService, m *metrics.Metrics, req models.CreateArticleRequest) (*models.Article, error) {
	if err := httpHelper.ValidateStruct(req); err != nil {
		return nil, err
	}

	article, err := articleService.CreateLocalArticle(req)
	if err != nil {
		return nil, err
	}

	m.ArticlesCreated.Inc()
	m.SetArticleCounts(articleService.StatusCounts())
	return article, nil
}
