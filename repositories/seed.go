package repositories

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"researchflow/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed/mock_data.yaml
var defaultSeed []byte

// Seed is the mock data set the repositories serve.
type Seed struct {
	Users    []models.User           `yaml:"users"`
	Articles []models.Article        `yaml:"articles"`
	Versions []models.ArticleVersion `yaml:"versions"`
	Events   []models.LifecycleEvent `yaml:"events"`
}

// DefaultSeed decodes the mock data compiled into the binary.
func DefaultSeed() (*Seed, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// LoadSeedFile decodes a seed from path.
func LoadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed %s: %w", path, err)
	}
	defer f.Close()

	return LoadSeed(f)
}

// LoadSeed decodes and validates a YAML seed.
func LoadSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate rejects data the views cannot render: unknown enum values, dangling
// references and duplicate version numbers within an article.
func (s *Seed) Validate() error {
	articles := make(map[string]bool, len(s.Articles))
	for _, a := range s.Articles {
		if a.ID == "" {
			return fmt.Errorf("seed: article %q has no id", a.Title)
		}
		if articles[a.ID] {
			return fmt.Errorf("seed: duplicate article id %q", a.ID)
		}
		articles[a.ID] = true
		if !a.CurrentStatus.Valid() {
			return fmt.Errorf("seed: article %s: unknown status %q", a.ID, a.CurrentStatus)
		}
		for _, au := range a.Authors {
			switch au.Role {
			case models.AuthorPrimary, models.AuthorCorresponding, models.AuthorContributor:
			default:
				return fmt.Errorf("seed: article %s: author %s has unknown role %q", a.ID, au.ID, au.Role)
			}
		}
	}

	for _, u := range s.Users {
		if !validRole(u.Role) {
			return fmt.Errorf("seed: user %s has unknown role %q", u.ID, u.Role)
		}
	}

	seen := make(map[string]map[int]bool)
	for _, v := range s.Versions {
		if !articles[v.ArticleID] {
			return fmt.Errorf("seed: version %s references unknown article %q", v.ID, v.ArticleID)
		}
		if seen[v.ArticleID] == nil {
			seen[v.ArticleID] = make(map[int]bool)
		}
		if seen[v.ArticleID][v.VersionNumber] {
			return fmt.Errorf("seed: article %s has version %d twice", v.ArticleID, v.VersionNumber)
		}
		seen[v.ArticleID][v.VersionNumber] = true
	}

	for _, e := range s.Events {
		if !articles[e.ArticleID] {
			return fmt.Errorf("seed: event %s references unknown article %q", e.ID, e.ArticleID)
		}
		if !e.NewState.Valid() {
			return fmt.Errorf("seed: event %s: unknown new state %q", e.ID, e.NewState)
		}
		if e.OldState != nil && !e.OldState.Valid() {
			return fmt.Errorf("seed: event %s: unknown old state %q", e.ID, *e.OldState)
		}
		if !validRole(e.ChangedByRole) {
			return fmt.Errorf("seed: event %s: unknown role %q", e.ID, e.ChangedByRole)
		}
	}
	return nil
}

// VersionMismatches lists articles whose current version number is not the highest
// recorded version. Articles without any version record are skipped.
func (s *Seed) VersionMismatches() []string {
	latest := make(map[string]int)
	for _, v := range s.Versions {
		if v.VersionNumber > latest[v.ArticleID] {
			latest[v.ArticleID] = v.VersionNumber
		}
	}

	var out []string
	for _, a := range s.Articles {
		highest, ok := latest[a.ID]
		if ok && highest != a.CurrentVersionNumber {
			out = append(out, fmt.Sprintf("article %s: current version %d, highest recorded %d", a.ID, a.CurrentVersionNumber, highest))
		}
	}
	return out
}

func validRole(r models.UserRole) bool {
	for _, role := range models.AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}
