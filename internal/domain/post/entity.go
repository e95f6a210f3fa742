// internal/domain/post/entity.go
package post

import "time"

type Post struct {
	ID         string    `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Slug       string    `json:"slug" db:"slug"`
	Content    string    `json:"content" db:"content"`
	CoverImage *string   `json:"cover_image,omitempty" db:"cover_image"`
	Published  bool      `json:"published" db:"published"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Input carries the raw form fields submitted to the create and update
// handlers, before any trimming or slug derivation.
type Input struct {
	Title      string
	Slug       string
	Content    string
	CoverImage string
	Published  bool
}
