package models

import (
	"regexp"
	"strings"
	"time"
)

// Section is a named grouping for dashboard navigation items. Sections only
// annotate dashboard-scope items; the public menu renders as a flat list.
type Section struct {
	ID          string // slug, immutable
	Name        string
	Description string
	Order       int
	CreatedAt   time.Time
}

var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify derives a section id from its display name: lowercased, whitespace
// runs collapsed to single hyphens.
func Slugify(name string) string {
	return slugSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
