package repositories

import (
	"slices"

	"researchflow/models"
)

type LifecycleEventRepository interface {
	GetAll() []models.LifecycleEvent
	GetByArticleID(articleID string) []models.LifecycleEvent
}

// lifecycleEventRepository returns events in seed order; callers sort for display.
type lifecycleEventRepository struct {
	events []models.LifecycleEvent
}

func NewLifecycleEventRepository(seed *Seed) LifecycleEventRepository {
	return &lifecycleEventRepository{events: slices.Clone(seed.Events)}
}

func (r *lifecycleEventRepository) GetAll() []models.LifecycleEvent {
	out := make([]models.LifecycleEvent, len(r.events))
	for i, e := range r.events {
		out[i] = cloneEvent(e)
	}
	return out
}

func (r *lifecycleEventRepository) GetByArticleID(articleID string) []models.LifecycleEvent {
	var out []models.LifecycleEvent
	for _, e := range r.events {
		if e.ArticleID == articleID {
			out = append(out, cloneEvent(e))
		}
	}
	return out
}

func cloneEvent(e models.LifecycleEvent) models.LifecycleEvent {
	e.ChangedFiles = slices.Clone(e.ChangedFiles)
	if e.OldState != nil {
		old := *e.OldState
		e.OldState = &old
	}
	return e
}
