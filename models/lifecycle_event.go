package models

import "time"

// LifecycleEvent records one status transition of an article.
// OldState is nil for the event that created the article.
type LifecycleEvent struct {
	ID            string         `json:"id" yaml:"id"`
	ArticleID     string         `json:"article_id" yaml:"article_id"`
	VersionNumber int            `json:"version_number" yaml:"version_number"`
	OldState      *ArticleStatus `json:"old_state" yaml:"old_state"`
	NewState      ArticleStatus  `json:"new_state" yaml:"new_state"`
	ChangedBy     string         `json:"changed_by" yaml:"changed_by"`
	ChangedByName string         `json:"changed_by_name" yaml:"changed_by_name"`
	ChangedByRole UserRole       `json:"changed_by_role" yaml:"changed_by_role"`
	Reason        string         `json:"reason,omitempty" yaml:"reason,omitempty"`
	Timestamp     time.Time      `json:"timestamp" yaml:"timestamp"`
	ChangedFiles  []string       `json:"changed_files" yaml:"changed_files"`
}
