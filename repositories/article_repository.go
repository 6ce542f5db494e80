package repositories

import (
	"fmt"
	"slices"
	"sync"

	"researchflow/models"
)

type ArticleRepository interface {
	GetAll() []models.Article
	GetByID(id string) (*models.Article, error)
	Prepend(article models.Article)
	Count() int
	CountByStatus() map[models.ArticleStatus]int
}

// articleRepository keeps the article list in memory. Nothing is written anywhere else.
type articleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
}

func NewArticleRepository(seed *Seed) ArticleRepository {
	articles := make([]models.Article, len(seed.Articles))
	for i, a := range seed.Articles {
		articles[i] = cloneArticle(a)
	}
	return &articleRepository{articles: articles}
}

func (r *articleRepository) GetAll() []models.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Article, len(r.articles))
	for i, a := range r.articles {
		out[i] = cloneArticle(a)
	}
	return out
}

func (r *articleRepository) GetByID(id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.articles {
		if a.ID == id {
			article := cloneArticle(a)
			return &article, nil
		}
	}
	return nil, models.ErrorNotFound{Message: fmt.Sprintf("article %q not found", id)}
}

func (r *articleRepository) Prepend(article models.Article) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.articles = slices.Insert(r.articles, 0, cloneArticle(article))
}

func (r *articleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

func (r *articleRepository) CountByStatus() map[models.ArticleStatus]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.ArticleStatus]int, len(models.AllStatuses()))
	for _, s := range models.AllStatuses() {
		counts[s] = 0
	}
	for _, a := range r.articles {
		counts[a.CurrentStatus]++
	}
	return counts
}

func cloneArticle(a models.Article) models.Article {
	a.Keywords = slices.Clone(a.Keywords)
	a.Authors = slices.Clone(a.Authors)
	return a
}
