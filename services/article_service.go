package services

import (
	"time"

	"researchflow/models"
	"researchflow/repositories"

	"github.com/google/uuid"
)

// LocalSubmitter is recorded as the submitter of articles created from the form.
const LocalSubmitter = "current-user"

type ArticleService interface {
	ListArticles(params models.ArticleListParams) (*models.ArticleListResponse, error)
	GetArticleDetail(id string) (*models.ArticleDetail, error)
	GetArticleVersions(id string) ([]models.ArticleVersion, error)
	GetArticleTimeline(id string) ([]models.LifecycleEvent, error)
	CreateLocalArticle(req models.CreateArticleRequest) (*models.Article, error)
	RecentArticles(limit int) []models.Article
	ReviewQueue() []models.Article
	StatusCounts() map[models.ArticleStatus]int
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	versionRepo repositories.ArticleVersionRepository
	eventRepo   repositories.LifecycleEventRepository
	now         func() time.Time
	newID       func() string
}

func NewArticleService(articleRepo repositories.ArticleRepository, versionRepo repositories.ArticleVersionRepository, eventRepo repositories.LifecycleEventRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		versionRepo: versionRepo,
		eventRepo:   eventRepo,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *articleService) ListArticles(params models.ArticleListParams) (*models.ArticleListResponse, error) {
	filter := ArticleFilter{Query: params.Query}
	if params.Status != "" {
		status, err := models.ParseStatus(params.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	all := s.articleRepo.GetAll()
	filtered := FilterArticles(all, filter)

	return &models.ArticleListResponse{
		Articles: filtered,
		Showing:  len(filtered),
		Total:    len(all),
	}, nil
}

func (s *articleService) GetArticleDetail(id string) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	versions := SortVersions(s.versionRepo.GetByArticleID(id))
	events := SortEvents(s.eventRepo.GetByArticleID(id))

	detail := &models.ArticleDetail{
		Article:      *article,
		Versions:     versions,
		Events:       events,
		Actions:      availableActions(article.CurrentStatus),
		TimelineGaps: CheckTimeline(events),
	}
	for i := range versions {
		if versions[i].VersionNumber == article.CurrentVersionNumber {
			current := versions[i]
			detail.CurrentVersion = &current
			break
		}
	}
	return detail, nil
}

func (s *articleService) GetArticleVersions(id string) ([]models.ArticleVersion, error) {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		return nil, err
	}
	return SortVersions(s.versionRepo.GetByArticleID(id)), nil
}

func (s *articleService) GetArticleTimeline(id string) ([]models.LifecycleEvent, error) {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		return nil, err
	}
	return SortEvents(s.eventRepo.GetByArticleID(id)), nil
}

// CreateLocalArticle puts a new article at the head of the in-memory list. No version or
// lifecycle event is recorded alongside it.
func (s *articleService) CreateLocalArticle(req models.CreateArticleRequest) (*models.Article, error) {
	status := models.StatusDraft
	if req.Status != "" {
		parsed, err := models.ParseStatus(string(req.Status))
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	title := req.Title
	if title == "" {
		title = "Untitled"
	}

	now := s.now()
	article := models.Article{
		ID:                   s.newID(),
		Title:                title,
		Abstract:             req.Abstract,
		Keywords:             ParseKeywords(req.Keywords),
		Authors:              []models.Author{},
		CreatedAt:            now,
		UpdatedAt:            now,
		CurrentVersionNumber: 1,
		CurrentStatus:        status,
		SubmittedBy:          LocalSubmitter,
	}

	s.articleRepo.Prepend(article)
	return &article, nil
}

func (s *articleService) RecentArticles(limit int) []models.Article {
	all := s.articleRepo.GetAll()
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// ReviewQueue lists the articles waiting on reviewers, in list order.
func (s *articleService) ReviewQueue() []models.Article {
	queue := []models.Article{}
	for _, a := range s.articleRepo.GetAll() {
		if a.CurrentStatus == models.StatusUnderReview || a.CurrentStatus == models.StatusSubmitted {
			queue = append(queue, a)
		}
	}
	return queue
}

func (s *articleService) StatusCounts() map[models.ArticleStatus]int {
	return s.articleRepo.CountByStatus()
}

func availableActions(status models.ArticleStatus) []models.ArticleAction {
	var actions []models.ArticleAction
	switch status {
	case models.StatusDraft:
		actions = append(actions, models.ArticleAction{Name: "Submit", Primary: true})
	case models.StatusRevisionRequired:
		actions = append(actions, models.ArticleAction{Name: "Submit Revision", Primary: true})
	}
	return append(actions, models.ArticleAction{Name: "Edit"})
}
