// internal/repository/postgres/post_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"cms-service/internal/domain/post"
	xerrors "cms-service/internal/pkg/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the slice of pgxpool.Pool the repository needs. Keeping it
// narrow lets pgxmock stand in for the pool in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = `id, title, slug, content, cover_image, published, created_at, updated_at`

// Create inserts a fully-populated post. The unique index on slug is the
// authoritative uniqueness guard; a violation surfaces as ErrDuplicateEntry
// so callers can map it to the same user-facing error as the pre-check.
func (r *PostRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (id, title, slug, content, cover_image, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.CoverImage, p.Published, p.CreatedAt, p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// Update overwrites all mutable fields of an existing post.
func (r *PostRepository) Update(ctx context.Context, id string, p *post.Post) error {
	query := `
		UPDATE posts
		SET title = $1, slug = $2, content = $3, cover_image = $4,
		    published = $5, updated_at = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		p.Title, p.Slug, p.Content, p.CoverImage, p.Published, p.UpdatedAt, id,
	)
	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// FindByID retrieves a post by its ID.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindBySlug retrieves a post by its slug.
func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, slug))
}

// ListRecent returns the newest posts first, drafts included.
func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

// ListPublished returns the newest published posts first.
func (r *PostRepository) ListPublished(ctx context.Context, limit int) ([]post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE published ORDER BY created_at DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *PostRepository) list(ctx context.Context, query string, limit int) ([]post.Post, error) {
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0, limit)
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content, &p.CoverImage,
			&p.Published, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) scanOne(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.CoverImage,
		&p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
