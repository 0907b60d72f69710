// Package content merges blog posts from two sources, markdown files in a
// content directory and rows in a hosted Postgres database, into one
// chronologically sorted, slug-deduplicated list.
package content

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no source has a post for the requested slug.
var ErrNotFound = errors.New("content: post not found")

// Source identifies which backend a post came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceDatabase Source = "database"
)

// BlogPost is the unified post shape produced by both sources.
type BlogPost struct {
	Slug          string
	Title         string
	Description   string
	Date          time.Time
	Updated       time.Time // zero when the post was never updated
	Content       string
	RichText      bool // database posts carry editor HTML, file posts markdown
	Featured      bool
	FeaturedImage string
	Tags          []string
	ReadingTime   int // minutes
	Source        Source
}

// EffectiveDate is the timestamp used for sort order: Updated when present,
// the publication date otherwise.
func (p BlogPost) EffectiveDate() time.Time {
	if !p.Updated.IsZero() {
		return p.Updated
	}
	return p.Date
}

// Link returns the public URL path of the post.
func (p BlogPost) Link() string {
	return "/blog/" + p.Slug
}

// ReadingTimeMinutes estimates reading time at 200 words per minute,
// with a one minute floor.
func ReadingTimeMinutes(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
