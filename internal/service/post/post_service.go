// internal/service/post/post_service.go
package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"cms-service/internal/domain/post"
	xerrors "cms-service/internal/pkg/errors"
	"cms-service/internal/pkg/slug"
)

// Repository is the persistence contract the service needs; the pgx
// implementation lives in internal/repository/postgres.
type Repository interface {
	Create(ctx context.Context, p *post.Post) error
	Update(ctx context.Context, id string, p *post.Post) error
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindBySlug(ctx context.Context, slug string) (*post.Post, error)
	ListRecent(ctx context.Context, limit int) ([]post.Post, error)
	ListPublished(ctx context.Context, limit int) ([]post.Post, error)
}

type PostService struct {
	repo   Repository
	logger *zap.Logger
}

func NewPostService(repo Repository, logger *zap.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// Create validates a submission and persists a new post. Error mapping:
// ErrMissingFields when title or content trim to empty, ErrInvalidSlug
// when the derived slug is empty, ErrSlugTaken on collision. The lookup
// before the insert is only the user-friendly fast path; the slug unique
// index is what actually enforces uniqueness under concurrent writers.
func (s *PostService) Create(ctx context.Context, in post.Input) (*post.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, xerrors.ErrMissingFields
	}

	postSlug, err := s.deriveSlug(ctx, in.Slug, title, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &post.Post{
		ID:         ulid.Make().String(),
		Title:      title,
		Slug:       postSlug,
		Content:    content,
		CoverImage: optionalString(in.CoverImage),
		Published:  in.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			return nil, xerrors.ErrSlugTaken
		}
		return nil, err
	}

	s.logger.Info("post created",
		zap.String("post_id", p.ID),
		zap.String("slug", p.Slug),
		zap.Bool("published", p.Published),
	)
	return p, nil
}

// Update applies the same validation as Create to an existing post and
// overwrites all mutable fields. A slug owned by a different post is a
// collision; keeping the post's own slug is fine. ErrNotFound when the id
// is unknown.
func (s *PostService) Update(ctx context.Context, id string, in post.Input) (*post.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if id == "" || title == "" || content == "" {
		return nil, xerrors.ErrMissingFields
	}

	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	postSlug, err := s.deriveSlug(ctx, in.Slug, title, id)
	if err != nil {
		return nil, err
	}

	cur.Title = title
	cur.Slug = postSlug
	cur.Content = content
	cur.CoverImage = optionalString(in.CoverImage)
	cur.Published = in.Published
	cur.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, id, cur); err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			return nil, xerrors.ErrSlugTaken
		}
		return nil, err
	}

	s.logger.Info("post updated",
		zap.String("post_id", cur.ID),
		zap.String("slug", cur.Slug),
		zap.Bool("published", cur.Published),
	)
	return cur, nil
}

// Get retrieves a post by id.
func (s *PostService) Get(ctx context.Context, id string) (*post.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// GetPublishedBySlug retrieves a published post for the public pages.
// Drafts are indistinguishable from absent posts to unauthenticated
// readers.
func (s *PostService) GetPublishedBySlug(ctx context.Context, postSlug string) (*post.Post, error) {
	p, err := s.repo.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

// ListRecent returns the newest posts, drafts included, for the admin
// list screen.
func (s *PostService) ListRecent(ctx context.Context, limit int) ([]post.Post, error) {
	return s.repo.ListRecent(ctx, limit)
}

// ListPublished returns the newest published posts for the public home.
func (s *PostService) ListPublished(ctx context.Context, limit int) ([]post.Post, error) {
	return s.repo.ListPublished(ctx, limit)
}

// deriveSlug normalizes the submitted slug, falling back to the title,
// and runs the fast-path collision check. selfID is empty on create.
func (s *PostService) deriveSlug(ctx context.Context, submitted, title, selfID string) (string, error) {
	source := strings.TrimSpace(submitted)
	if source == "" {
		source = title
	}
	postSlug := slug.Normalize(source)
	if postSlug == "" {
		return "", xerrors.ErrInvalidSlug
	}

	existing, err := s.repo.FindBySlug(ctx, postSlug)
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return "", err
	}
	if existing != nil && existing.ID != selfID {
		return "", xerrors.ErrSlugTaken
	}

	return postSlug, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
