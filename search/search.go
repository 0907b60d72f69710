// Package search implements the ad hoc, stateless site search: a linear scan
// over the static-page catalog and both blog sources, matched by normalized
// substring terms. The candidate set is a few dozen pages and at most a few
// hundred posts, so no index structure is kept between requests.
package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/acquiretoscale/website/content"
)

// Type tells the results template whether a hit is a static page or a post.
type Type string

const (
	TypePage Type = "page"
	TypeBlog Type = "blog"
)

// Result is one search hit, built fresh per request and never persisted.
type Result struct {
	Href        string
	Title       string
	Type        Type
	Description string
}

// Page is one entry of the hand-maintained static-page catalog.
type Page struct {
	Href        string
	Title       string
	Description string
}

// MinQueryLen guards against one-character queries. It is a UX rule, not a
// performance one.
const MinQueryLen = 2

// stripMarks decomposes characters and removes combining marks, so that
// "Café" and "cafe" normalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics, and trims.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

// Matches reports whether every whitespace-separated term of query appears
// as a substring of text, after normalizing both. A query with zero terms
// matches everything.
func Matches(text, query string) bool {
	n := Normalize(text)
	for _, term := range strings.Fields(Normalize(query)) {
		if !strings.Contains(n, term) {
			return false
		}
	}
	return true
}

// Lister is the slice of the content repositories the index needs.
type Lister interface {
	All(ctx context.Context) ([]content.BlogPost, error)
}

// Index scans the catalog and both blog sources per query. Either blog
// source failing drops that source's contribution; it never fails the search.
type Index struct {
	Pages []Page
	Files Lister
	DB    Lister // nil when no database is configured
	Log   *slog.Logger
}

// Search returns matches for q: catalog pages in listed order, then file
// posts, then database posts, deduplicated by href (first occurrence wins).
// Queries shorter than MinQueryLen after trimming return nothing without
// touching any source.
func (ix *Index) Search(ctx context.Context, q string) []Result {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < MinQueryLen {
		return nil
	}

	var results []Result
	for _, page := range ix.Pages {
		if Matches(page.Title+" "+page.Description, q) {
			results = append(results, Result{
				Href:        page.Href,
				Title:       page.Title,
				Type:        TypePage,
				Description: page.Description,
			})
		}
	}

	results = append(results, ix.matchPosts(ctx, ix.Files, q)...)
	if ix.DB != nil {
		results = append(results, ix.matchPosts(ctx, ix.DB, q)...)
	}

	seen := make(map[string]struct{}, len(results))
	deduped := results[:0]
	for _, r := range results {
		if _, dup := seen[r.Href]; dup {
			continue
		}
		seen[r.Href] = struct{}{}
		deduped = append(deduped, r)
	}
	return deduped
}

func (ix *Index) matchPosts(ctx context.Context, src Lister, q string) []Result {
	posts, err := src.All(ctx)
	if err != nil {
		if ix.Log != nil {
			ix.Log.Warn("search source unavailable", "err", err)
		}
		return nil
	}
	var results []Result
	for _, p := range posts {
		if Matches(p.Title+" "+p.Description, q) {
			results = append(results, Result{
				Href:        p.Link(),
				Title:       p.Title,
				Type:        TypeBlog,
				Description: p.Description,
			})
		}
	}
	return results
}
