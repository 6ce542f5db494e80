package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type UserRole string

const (
	RoleAuthor   UserRole = "author"
	RoleReviewer UserRole = "reviewer"
	RoleEditor   UserRole = "editor"
	RoleAdmin    UserRole = "admin"
)

// AllRoles returns the roles in the order the team overview lists them.
func AllRoles() []UserRole {
	return []UserRole{RoleAuthor, RoleReviewer, RoleEditor, RoleAdmin}
}

// Label is the plural heading for the role, e.g. "Reviewers".
func (r UserRole) Label() string {
	return cases.Title(language.English).String(string(r)) + "s"
}

// BadgeClass returns the badge style of the role. It panics on a role it does not know.
func (r UserRole) BadgeClass() string {
	switch r {
	case RoleAuthor:
		return "badge-submitted"
	case RoleReviewer:
		return "badge-review"
	case RoleEditor:
		return "badge-published"
	case RoleAdmin:
		return "badge-primary"
	}
	panic(fmt.Sprintf("models: no badge for user role %q", string(r)))
}

type User struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Email  string   `json:"email" yaml:"email"`
	Role   UserRole `json:"role" yaml:"role"`
	Avatar string   `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Initials takes the first letter of every word in the name.
func (u User) Initials() string {
	return Initials(u.Name)
}

// Initials takes the first letter of every whitespace separated word.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}
