package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML block at the top of a post file. Every field is
// optional; missing or malformed values fall back to defaults rather than
// rejecting the post.
type frontMatter struct {
	Title         string `yaml:"title"`
	Slug          string `yaml:"slug"`
	Description   string `yaml:"description"`
	Date          string `yaml:"date"`
	Updated       string `yaml:"updated"`
	FeaturedImage string `yaml:"featuredImage"`
	Featured      bool   `yaml:"featured"`
}

// FileRepo reads posts from a directory of <slug>.md / <slug>.mdx files.
// A missing directory means zero posts, not an error.
type FileRepo struct {
	dir string
	log *slog.Logger
}

// NewFileRepo creates a FileRepo over dir.
func NewFileRepo(dir string, log *slog.Logger) *FileRepo {
	if log == nil {
		log = slog.Default()
	}
	return &FileRepo{dir: dir, log: log}
}

// Dir returns the content directory the repo reads from.
func (r *FileRepo) Dir() string {
	return r.dir
}

// Slugs lists the slugs of every post file in the content directory,
// in directory order.
func (r *FileRepo) Slugs() []string {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if ext != ".md" && ext != ".mdx" {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ext))
	}
	return slugs
}

// All returns every file-backed post sorted by publication date descending.
// Files that cannot be read are skipped and logged.
func (r *FileRepo) All(ctx context.Context) ([]BlogPost, error) {
	var posts []BlogPost
	for _, slug := range r.Slugs() {
		post, err := r.BySlug(ctx, slug)
		if err != nil {
			r.log.Warn("skipping unreadable post file", "slug", slug, "err", err)
			continue
		}
		posts = append(posts, post)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

// Featured returns file-backed posts flagged featured in their front-matter.
func (r *FileRepo) Featured(ctx context.Context) ([]BlogPost, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var featured []BlogPost
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// BySlug reads a single post file, preferring the .mdx extension like the
// directory scan does. Returns ErrNotFound when neither file exists.
func (r *FileRepo) BySlug(_ context.Context, slug string) (BlogPost, error) {
	var readErr error
	for _, ext := range []string{".mdx", ".md"} {
		raw, err := os.ReadFile(filepath.Join(r.dir, slug+ext))
		if err == nil {
			return parsePostFile(slug, raw), nil
		}
		if !os.IsNotExist(err) && readErr == nil {
			readErr = err
		}
	}
	if readErr != nil {
		return BlogPost{}, fmt.Errorf("read post %q: %w", slug, readErr)
	}
	return BlogPost{}, ErrNotFound
}

// parsePostFile splits raw into front-matter and body and applies defaults:
// slug as title, empty description, current time as date.
func parsePostFile(slug string, raw []byte) BlogPost {
	fm, body := splitFrontMatter(string(raw))

	var meta frontMatter
	// Malformed YAML leaves meta zero-valued; the defaults below cover it.
	_ = yaml.Unmarshal([]byte(fm), &meta)

	post := BlogPost{
		Slug:          slug,
		Title:         meta.Title,
		Description:   meta.Description,
		Content:       body,
		Featured:      meta.Featured,
		FeaturedImage: meta.FeaturedImage,
		ReadingTime:   ReadingTimeMinutes(body),
		Source:        SourceFile,
	}
	if post.Title == "" {
		post.Title = slug
	}
	post.Date = parseDate(meta.Date, time.Now())
	if meta.Updated != "" {
		post.Updated = parseDate(meta.Updated, time.Time{})
	}
	return post
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// body. Files without front-matter are all body.
func splitFrontMatter(raw string) (fm, body string) {
	const delim = "---"
	s := strings.TrimPrefix(raw, "\uFEFF")
	if !strings.HasPrefix(s, delim) {
		return "", raw
	}
	rest := s[len(delim):]
	rest = strings.TrimPrefix(rest, "\r")
	if !strings.HasPrefix(rest, "\n") {
		return "", raw
	}
	rest = rest[1:]
	end := strings.Index(rest, "\n"+delim)
	if end < 0 {
		return "", raw
	}
	fm = rest[:end]
	body = rest[end+1+len(delim):]
	// Drop the remainder of the closing delimiter line.
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return fm, body
}

// parseDate accepts the formats the admin editor and humans write:
// RFC 3339 or a bare YYYY-MM-DD.
func parseDate(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}
