package content

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresRepo reads posts from the hosted blog_posts table. Writes are
// authenticated and go through the admin handlers; this repo only reads.
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepo wraps an open connection pool.
func NewPostgresRepo(db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

type postRow struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Slug            string         `db:"slug"`
	Content         string         `db:"content"`
	MetaDescription sql.NullString `db:"meta_description"`
	FeaturedImage   sql.NullString `db:"featured_image"`
	Featured        bool           `db:"featured"`
	Tags            pq.StringArray `db:"tags"`
	CreatedAt       sql.NullTime   `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

func (r postRow) toPost() BlogPost {
	p := BlogPost{
		Slug:          r.Slug,
		Title:         r.Title,
		Description:   r.MetaDescription.String,
		Content:       r.Content,
		RichText:      true,
		Featured:      r.Featured,
		FeaturedImage: r.FeaturedImage.String,
		Tags:          r.Tags,
		ReadingTime:   ReadingTimeMinutes(r.Content),
		Source:        SourceDatabase,
	}
	if r.CreatedAt.Valid {
		p.Date = r.CreatedAt.Time
	}
	if r.UpdatedAt.Valid && !r.UpdatedAt.Time.Equal(p.Date) {
		p.Updated = r.UpdatedAt.Time
	}
	return p
}

const postColumns = `id, title, slug, content, meta_description, featured_image, featured, tags, created_at, updated_at`

// All returns every database post ordered by created_at descending.
func (r *PostgresRepo) All(ctx context.Context) ([]BlogPost, error) {
	var rows []postRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+postColumns+` FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return rowsToPosts(rows), nil
}

// Featured returns featured database posts ordered by created_at descending.
func (r *PostgresRepo) Featured(ctx context.Context) ([]BlogPost, error) {
	var rows []postRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+postColumns+` FROM blog_posts WHERE featured = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return rowsToPosts(rows), nil
}

// BySlug returns a single database post, or ErrNotFound.
func (r *PostgresRepo) BySlug(ctx context.Context, slug string) (BlogPost, error) {
	var row postRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+postColumns+` FROM blog_posts WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return BlogPost{}, ErrNotFound
	}
	if err != nil {
		return BlogPost{}, err
	}
	return row.toPost(), nil
}

// Save upserts a post row keyed by slug.
func (r *PostgresRepo) Save(ctx context.Context, p BlogPost) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blog_posts (title, slug, content, meta_description, featured_image, featured, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			meta_description = EXCLUDED.meta_description,
			featured_image = EXCLUDED.featured_image,
			featured = EXCLUDED.featured,
			tags = EXCLUDED.tags,
			updated_at = NOW()`,
		p.Title, p.Slug, p.Content, p.Description, p.FeaturedImage, p.Featured, pq.Array(p.Tags))
	return err
}

// Delete removes a post row by slug.
func (r *PostgresRepo) Delete(ctx context.Context, slug string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE slug = $1`, slug)
	return err
}

func rowsToPosts(rows []postRow) []BlogPost {
	posts := make([]BlogPost, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, r.toPost())
	}
	return posts
}
