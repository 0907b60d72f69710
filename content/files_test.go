package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFileRepoParsesFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "first-deal.md", `---
title: "Your First Deal"
description: "What to look for."
date: 2025-03-10
featuredImage: /public/uploads/first-deal.jpg
featured: true
---

Buying a business is simpler than building one.
`)

	repo := NewFileRepo(dir, nil)
	post, err := repo.BySlug(context.Background(), "first-deal")
	require.NoError(t, err)

	assert.Equal(t, "Your First Deal", post.Title)
	assert.Equal(t, "What to look for.", post.Description)
	assert.Equal(t, "/public/uploads/first-deal.jpg", post.FeaturedImage)
	assert.True(t, post.Featured)
	assert.Equal(t, SourceFile, post.Source)
	assert.Equal(t, 2025, post.Date.Year())
	assert.Equal(t, 1, post.ReadingTime)
	assert.Contains(t, post.Content, "simpler than building one")
}

func TestFileRepoDefaults(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bare.md", "Just a body, no front matter.\n")

	repo := NewFileRepo(dir, nil)
	post, err := repo.BySlug(context.Background(), "bare")
	require.NoError(t, err)

	assert.Equal(t, "bare", post.Title, "title falls back to the slug")
	assert.False(t, post.Date.IsZero(), "date falls back to now")
	assert.True(t, post.Updated.IsZero())
	assert.Equal(t, 1, post.ReadingTime)
}

func TestFileRepoPrefersMdx(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "pick.md", "---\ntitle: md version\n---\nbody\n")
	writePost(t, dir, "pick.mdx", "---\ntitle: mdx version\n---\nbody\n")

	repo := NewFileRepo(dir, nil)
	post, err := repo.BySlug(context.Background(), "pick")
	require.NoError(t, err)
	assert.Equal(t, "mdx version", post.Title)
}

func TestFileRepoHandlesByteOrderMark(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bom.md", "\uFEFF---\ntitle: Exported From Windows\n---\nbody\n")

	repo := NewFileRepo(dir, nil)
	post, err := repo.BySlug(context.Background(), "bom")
	require.NoError(t, err)
	assert.Equal(t, "Exported From Windows", post.Title)
}

func TestFileRepoNotFound(t *testing.T) {
	repo := NewFileRepo(t.TempDir(), nil)
	_, err := repo.BySlug(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileRepoReadErrorIsNotMaskedAsNotFound(t *testing.T) {
	dir := t.TempDir()
	// A directory with the post filename makes the read fail with
	// something other than NotExist.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "broken.mdx"), 0o755))

	repo := NewFileRepo(dir, nil)
	_, err := repo.BySlug(context.Background(), "broken")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "broken")
}

func TestFileRepoMissingDirIsEmpty(t *testing.T) {
	repo := NewFileRepo(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	posts, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFileRepoAllSortsByDateDesc(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "old.md", "---\ndate: 2024-01-01\n---\nold\n")
	writePost(t, dir, "new.md", "---\ndate: 2025-06-01\n---\nnew\n")
	writePost(t, dir, "mid.md", "---\ndate: 2024-09-15\n---\nmid\n")

	repo := NewFileRepo(dir, nil)
	posts, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "new", posts[0].Slug)
	assert.Equal(t, "mid", posts[1].Slug)
	assert.Equal(t, "old", posts[2].Slug)
}

func TestFileRepoFeatured(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "plain.md", "---\ndate: 2025-01-01\n---\nbody\n")
	writePost(t, dir, "star.md", "---\ndate: 2025-01-02\nfeatured: true\n---\nbody\n")

	repo := NewFileRepo(dir, nil)
	featured, err := repo.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "star", featured[0].Slug)
}

func TestParseDateFormats(t *testing.T) {
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2025, parseDate("2025-04-01", fallback).Year())
	assert.Equal(t, 2025, parseDate("2025-04-01T09:30:00Z", fallback).Year())
	assert.Equal(t, fallback, parseDate("not a date", fallback))
	assert.Equal(t, fallback, parseDate("", fallback))
}

func TestReadingTimeMinutes(t *testing.T) {
	assert.Equal(t, 1, ReadingTimeMinutes(""))
	assert.Equal(t, 1, ReadingTimeMinutes("a few words only"))

	long := ""
	for i := 0; i < 401; i++ {
		long += "word "
	}
	assert.Equal(t, 3, ReadingTimeMinutes(long))
}

func TestEffectiveDate(t *testing.T) {
	date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, date, BlogPost{Date: date}.EffectiveDate())
	assert.Equal(t, updated, BlogPost{Date: date, Updated: updated}.EffectiveDate())
}
