package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo is an in-memory Repository for aggregator tests.
type stubRepo struct {
	posts []BlogPost
	err   error
}

func (s *stubRepo) All(context.Context) ([]BlogPost, error) {
	return s.posts, s.err
}

func (s *stubRepo) Featured(context.Context) ([]BlogPost, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []BlogPost
	for _, p := range s.posts {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubRepo) BySlug(_ context.Context, slug string) (BlogPost, error) {
	if s.err != nil {
		return BlogPost{}, s.err
	}
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregatorMergesAndSorts(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "file-old", Date: day(1), Source: SourceFile},
		{Slug: "file-new", Date: day(20), Source: SourceFile},
	}}
	db := &stubRepo{posts: []BlogPost{
		{Slug: "db-mid", Date: day(10), Source: SourceDatabase},
	}}

	agg := NewAggregator(files, db, nil)
	posts := agg.ListAll(context.Background())

	require.Len(t, posts, 3)
	assert.Equal(t, "file-new", posts[0].Slug)
	assert.Equal(t, "db-mid", posts[1].Slug)
	assert.Equal(t, "file-old", posts[2].Slug)
}

func TestAggregatorDatabaseWinsDuplicateSlug(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "shared", Title: "file copy", Date: day(1), Source: SourceFile},
	}}
	db := &stubRepo{posts: []BlogPost{
		{Slug: "shared", Title: "db copy", Date: day(2), Source: SourceDatabase},
	}}

	agg := NewAggregator(files, db, nil)
	posts := agg.ListAll(context.Background())

	require.Len(t, posts, 1)
	assert.Equal(t, "db copy", posts[0].Title)
	assert.Equal(t, SourceDatabase, posts[0].Source)
}

func TestAggregatorSortsByUpdatedWhenPresent(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "refreshed", Date: day(1), Updated: day(25), Source: SourceFile},
	}}
	db := &stubRepo{posts: []BlogPost{
		{Slug: "recent", Date: day(10), Source: SourceDatabase},
	}}

	agg := NewAggregator(files, db, nil)
	posts := agg.ListAll(context.Background())

	require.Len(t, posts, 2)
	assert.Equal(t, "refreshed", posts[0].Slug)
}

func TestAggregatorDatabaseFailureDegrades(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "still-here", Date: day(1), Source: SourceFile},
	}}
	db := &stubRepo{err: errors.New("connection refused")}

	agg := NewAggregator(files, db, nil)
	posts := agg.ListAll(context.Background())

	require.Len(t, posts, 1)
	assert.Equal(t, "still-here", posts[0].Slug)
}

func TestAggregatorWithoutDatabase(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "solo", Date: day(1), Source: SourceFile},
	}}

	agg := NewAggregator(files, nil, nil)
	posts := agg.ListAll(context.Background())
	require.Len(t, posts, 1)

	post, err := agg.BySlug(context.Background(), "solo")
	require.NoError(t, err)
	assert.Equal(t, "solo", post.Slug)
}

func TestAggregatorListFeatured(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "plain", Date: day(1), Source: SourceFile},
		{Slug: "star", Date: day(2), Featured: true, Source: SourceFile},
	}}

	agg := NewAggregator(files, nil, nil)
	featured := agg.ListFeatured(context.Background())
	require.Len(t, featured, 1)
	assert.Equal(t, "star", featured[0].Slug)
}

func TestAggregatorBySlugPrefersDatabase(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "shared", Title: "file copy", Source: SourceFile},
	}}
	db := &stubRepo{posts: []BlogPost{
		{Slug: "shared", Title: "db copy", Source: SourceDatabase},
	}}

	agg := NewAggregator(files, db, nil)
	post, err := agg.BySlug(context.Background(), "shared")
	require.NoError(t, err)
	assert.Equal(t, "db copy", post.Title)
}

func TestAggregatorBySlugFallsThroughOnDatabaseError(t *testing.T) {
	files := &stubRepo{posts: []BlogPost{
		{Slug: "fallback", Title: "from file", Source: SourceFile},
	}}
	db := &stubRepo{err: errors.New("connection refused")}

	agg := NewAggregator(files, db, nil)
	post, err := agg.BySlug(context.Background(), "fallback")
	require.NoError(t, err)
	assert.Equal(t, "from file", post.Title)
}

func TestAggregatorBySlugNotFound(t *testing.T) {
	agg := NewAggregator(&stubRepo{}, &stubRepo{}, nil)
	_, err := agg.BySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
