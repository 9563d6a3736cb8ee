package catalog

import (
	"strings"
)

// Course is one training offering as described by a corpus record.
// JSON keys follow the source files, which are French.
type Course struct {
	Title         string   `json:"titre" mapstructure:"titre"`
	Objectives    []string `json:"objectifs" mapstructure:"objectifs"`
	Prerequisites []string `json:"prerequis" mapstructure:"prerequis"`
	Programme     []string `json:"programme,omitempty" mapstructure:"programme"`
	Audience      []string `json:"public" mapstructure:"public"`
	Link          string   `json:"lien" mapstructure:"lien"`
}

// Courses is the in-memory corpus. It is loaded once at startup and
// never mutated afterwards, so it is safe for concurrent reads.
type Courses struct {
	Items []*Course
}

func (c *Courses) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

func (c *Courses) Titles() []string {
	titles := make([]string, 0, c.Len())
	for _, course := range c.Items {
		titles = append(titles, course.Title)
	}
	return titles
}

func (c *Courses) FindByTitle(title string) *Course {
	for _, course := range c.Items {
		if course.Title == title {
			return course
		}
	}
	return nil
}

// SearchText flattens objectives, prerequisites and programme into a
// single lowercase blob for substring matching. Title and audience are
// deliberately left out of this variant.
func (c *Course) SearchText() string {
	parts := make([]string, 0, len(c.Objectives)+len(c.Prerequisites)+len(c.Programme))
	for _, group := range [][]string{c.Objectives, c.Prerequisites, c.Programme} {
		for _, item := range group {
			parts = append(parts, strings.ToLower(item))
		}
	}
	return strings.Join(parts, " ")
}

// HeadlineText flattens title, objectives and audience into a single
// lowercase blob. This is the variant scored by the structured-profile
// strategies.
func (c *Course) HeadlineText() string {
	parts := make([]string, 0, 1+len(c.Objectives)+len(c.Audience))
	if c.Title != "" {
		parts = append(parts, strings.ToLower(c.Title))
	}
	for _, item := range c.Objectives {
		parts = append(parts, strings.ToLower(item))
	}
	for _, item := range c.Audience {
		parts = append(parts, strings.ToLower(item))
	}
	return strings.Join(parts, " ")
}
