package content

import (
	"context"
	"errors"
	"log/slog"
	"sort"
)

// Repository is a single read-only source of blog posts. The file and
// database backends both implement it.
type Repository interface {
	All(ctx context.Context) ([]BlogPost, error)
	Featured(ctx context.Context) ([]BlogPost, error)
	BySlug(ctx context.Context, slug string) (BlogPost, error)
}

// Aggregator merges posts from the file repo and, when configured, the
// database repo. Both sources are best-effort for listings: a failing source
// contributes nothing and the failure is logged, never surfaced to readers.
type Aggregator struct {
	files Repository
	db    Repository // nil when no database is configured
	log   *slog.Logger
}

// NewAggregator builds an Aggregator. db may be nil.
func NewAggregator(files Repository, db Repository, log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{files: files, db: db, log: log}
}

// ListAll returns the merged post list sorted by effective date
// (updated-or-created) descending. Duplicate slugs keep the database copy:
// the database is the authoritative editable source. The stable sort keeps
// scan order (files first, then database rows) on equal timestamps.
func (a *Aggregator) ListAll(ctx context.Context) []BlogPost {
	return a.merge(ctx, Repository.All)
}

// ListFeatured is ListAll filtered to posts flagged featured.
func (a *Aggregator) ListFeatured(ctx context.Context) []BlogPost {
	return a.merge(ctx, Repository.Featured)
}

// BySlug checks the database first when configured, then the files.
// Database errors fall through to the file source.
func (a *Aggregator) BySlug(ctx context.Context, slug string) (BlogPost, error) {
	if a.db != nil {
		post, err := a.db.BySlug(ctx, slug)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, ErrNotFound) {
			a.log.Warn("database post lookup failed, trying files", "slug", slug, "err", err)
		}
	}
	return a.files.BySlug(ctx, slug)
}

func (a *Aggregator) merge(ctx context.Context, list func(Repository, context.Context) ([]BlogPost, error)) []BlogPost {
	filePosts, err := list(a.files, ctx)
	if err != nil {
		a.log.Warn("file posts unavailable", "err", err)
		filePosts = nil
	}

	var dbPosts []BlogPost
	if a.db != nil {
		dbPosts, err = list(a.db, ctx)
		if err != nil {
			a.log.Warn("database posts unavailable", "err", err)
			dbPosts = nil
		}
	}

	dbSlugs := make(map[string]struct{}, len(dbPosts))
	for _, p := range dbPosts {
		dbSlugs[p.Slug] = struct{}{}
	}

	merged := make([]BlogPost, 0, len(filePosts)+len(dbPosts))
	for _, p := range filePosts {
		if _, dup := dbSlugs[p.Slug]; dup {
			continue
		}
		merged = append(merged, p)
	}
	merged = append(merged, dbPosts...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EffectiveDate().After(merged[j].EffectiveDate())
	})
	return merged
}
