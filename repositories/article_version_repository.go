package repositories

import (
	"slices"

	"researchflow/models"
)

type ArticleVersionRepository interface {
	GetByArticleID(articleID string) []models.ArticleVersion
}

type articleVersionRepository struct {
	versions []models.ArticleVersion
}

func NewArticleVersionRepository(seed *Seed) ArticleVersionRepository {
	return &articleVersionRepository{versions: slices.Clone(seed.Versions)}
}

// GetByArticleID returns the versions of one article in seed order.
func (r *articleVersionRepository) GetByArticleID(articleID string) []models.ArticleVersion {
	var out []models.ArticleVersion
	for _, v := range r.versions {
		if v.ArticleID == articleID {
			v.AssociatedFiles = slices.Clone(v.AssociatedFiles)
			out = append(out, v)
		}
	}
	return out
}
