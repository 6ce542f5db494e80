package models

import (
	"strings"
	"time"
)

type AuthorRole string

const (
	AuthorPrimary       AuthorRole = "primary"
	AuthorCorresponding AuthorRole = "corresponding"
	AuthorContributor   AuthorRole = "contributor"
)

type Author struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Email       string     `json:"email" yaml:"email"`
	Affiliation string     `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Role        AuthorRole `json:"role" yaml:"role"`
}

type Article struct {
	ID                   string        `json:"id" yaml:"id"`
	Title                string        `json:"title" yaml:"title"`
	Abstract             string        `json:"abstract" yaml:"abstract"`
	Keywords             []string      `json:"keywords" yaml:"keywords"`
	Authors              []Author      `json:"authors" yaml:"authors"`
	CreatedAt            time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at" yaml:"updated_at"`
	CurrentVersionNumber int           `json:"current_version_number" yaml:"current_version_number"`
	CurrentStatus        ArticleStatus `json:"current_status" yaml:"current_status"`
	SubmittedBy          string        `json:"submitted_by" yaml:"submitted_by"`
}

// PrimaryAuthorName is the name shown on cards; empty when the article has no authors.
func (a Article) PrimaryAuthorName() string {
	if len(a.Authors) == 0 {
		return ""
	}
	return a.Authors[0].Name
}

// AuthorNames joins every author name with ", ".
func (a Article) AuthorNames() string {
	names := make([]string, len(a.Authors))
	for i, au := range a.Authors {
		names[i] = au.Name
	}
	return strings.Join(names, ", ")
}
