package services

import (
	"sort"

	"researchflow/models"
)

// SortEvents orders events by timestamp, keeping the recorded order for ties.
func SortEvents(events []models.LifecycleEvent) []models.LifecycleEvent {
	sorted := make([]models.LifecycleEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// SortVersions orders versions newest first.
func SortVersions(versions []models.ArticleVersion) []models.ArticleVersion {
	sorted := make([]models.ArticleVersion, len(versions))
	copy(sorted, versions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].VersionNumber > sorted[j].VersionNumber
	})
	return sorted
}

// CheckTimeline reports where a timestamp ordered event list does not chain: the first
// event should have no old state and every later old state should equal the previous new
// state. The report is informational; events are never rejected.
func CheckTimeline(events []models.LifecycleEvent) []models.TimelineGap {
	gaps := []models.TimelineGap{}
	var prev *models.ArticleStatus
	for i, e := range events {
		switch {
		case i == 0 && e.OldState != nil:
			gaps = append(gaps, models.TimelineGap{EventID: e.ID, Actual: e.OldState})
		case i > 0 && (e.OldState == nil || *e.OldState != *prev):
			gaps = append(gaps, models.TimelineGap{EventID: e.ID, Expected: prev, Actual: e.OldState})
		}
		next := e.NewState
		prev = &next
	}
	return gaps
}
