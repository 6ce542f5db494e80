package models

import (
	"fmt"
	"time"
)

type ArticleVersion struct {
	ID                      string    `json:"id" yaml:"id"`
	ArticleID               string    `json:"article_id" yaml:"article_id"`
	VersionNumber           int       `json:"version_number" yaml:"version_number"`
	SubmittedAt             time.Time `json:"submitted_at" yaml:"submitted_at"`
	ContentFile             string    `json:"content_file,omitempty" yaml:"content_file,omitempty"`
	AssociatedFiles         []string  `json:"associated_files" yaml:"associated_files"`
	ChangeSummary           string    `json:"change_summary,omitempty" yaml:"change_summary,omitempty"`
	DiffWithPreviousVersion string    `json:"diff_with_previous_version,omitempty" yaml:"diff_with_previous_version,omitempty"`
}

// Title names the version the way editors refer to it.
func (v ArticleVersion) Title() string {
	if v.VersionNumber <= 1 {
		return "Initial Submission"
	}
	return fmt.Sprintf("Revision %d", v.VersionNumber-1)
}

// Files lists the content file (when set) followed by the associated files.
func (v ArticleVersion) Files() []string {
	files := make([]string, 0, len(v.AssociatedFiles)+1)
	if v.ContentFile != "" {
		files = append(files, v.ContentFile)
	}
	return append(files, v.AssociatedFiles...)
}
