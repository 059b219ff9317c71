package domain

import (
	"strings"
	"time"
)

// Skill is shared reference data attached to jobs and profiles. Name is unique.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SkillRef is the durable reference an aggregate keeps to a Skill.
type SkillRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Ref returns the reference form of s.
func (s *Skill) Ref() SkillRef {
	return SkillRef{ID: s.ID, Name: s.Name}
}

// NormalizeSkillName defines the dedup partition for skills: surrounding whitespace is
// trimmed and the rest is compared byte for byte, so "Go" and "go" are different skills.
// An empty result means the name is dropped.
func NormalizeSkillName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeSkillNames normalizes, drops empties and collapses duplicates, keeping the
// order of first occurrence.
func NormalizeSkillNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeSkillName(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
