// internal/handlers/post/post_handler.go
package post

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cms-service/internal/domain/post"
	xerrors "cms-service/internal/pkg/errors"
	postUsecase "cms-service/internal/service/post"
)

const (
	adminListLimit  = 20
	publicHomeLimit = 10
)

type PostHandler struct {
	postService *postUsecase.PostService
	logger      *zap.Logger
}

func NewPostHandler(postService *postUsecase.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ========== Public pages ==========

// Home renders the public landing page with the latest published posts.
func (h *PostHandler) Home(c *gin.Context) {
	posts, err := h.postService.ListPublished(c.Request.Context(), publicHomeLimit)
	if err != nil {
		h.logger.Error("failed to load published posts", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"Posts": posts})
}

// Show renders one published post by slug. Drafts and unknown slugs both
// come back as not found.
func (h *PostHandler) Show(c *gin.Context) {
	p, err := h.postService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, xerrors.ErrNotFound) {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
		return
	}
	if err != nil {
		h.logger.Error("failed to load post", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{"Post": p})
}

// ========== Admin pages ==========

// List renders the admin post list, drafts included, newest first.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		h.logger.Error("failed to list posts", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.HTML(http.StatusOK, "admin_posts.html", gin.H{"Posts": posts})
}

// NewForm renders the create form, with any error code from a previous
// submission mapped to its message.
func (h *PostHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "post_new.html", gin.H{
		"ErrorMsg": errorMessage(c.Query("error")),
	})
}

// EditForm renders the edit form for an existing post.
func (h *PostHandler) EditForm(c *gin.Context) {
	id := c.Param("id")
	p, err := h.postService.Get(c.Request.Context(), id)
	if errors.Is(err, xerrors.ErrNotFound) {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
		return
	}
	if err != nil {
		h.logger.Error("failed to load post", zap.String("post_id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.HTML(http.StatusOK, "post_edit.html", gin.H{
		"Post":     p,
		"ErrorMsg": errorMessage(c.Query("error")),
	})
}

// ========== Form submissions ==========

// Create handles the new-post submission. Validation failures redirect
// back to the form with an error code and persist nothing.
func (h *PostHandler) Create(c *gin.Context) {
	created, err := h.postService.Create(c.Request.Context(), formInput(c))
	if err != nil {
		if code, ok := errorCode(err); ok {
			c.Redirect(http.StatusFound, "/admin/posts/new?error="+code)
			return
		}
		h.logger.Error("failed to create post", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/posts/"+created.ID)
}

// Update handles the edit submission. Redirects preserve the post id so
// the form can re-render.
func (h *PostHandler) Update(c *gin.Context) {
	id := c.Param("id")
	updated, err := h.postService.Update(c.Request.Context(), id, formInput(c))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
			return
		}
		if code, ok := errorCode(err); ok {
			c.Redirect(http.StatusFound, fmt.Sprintf("/admin/posts/%s?error=%s", id, code))
			return
		}
		h.logger.Error("failed to update post", zap.String("post_id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/posts/"+updated.ID)
}

func formInput(c *gin.Context) post.Input {
	return post.Input{
		Title:      c.PostForm("title"),
		Slug:       c.PostForm("slug"),
		Content:    c.PostForm("content"),
		CoverImage: c.PostForm("coverImage"),
		Published:  c.PostForm("published") == "on",
	}
}

// errorCode maps service errors to the query-parameter codes carried in
// redirects. Collision and unusable slug share the "slug" code.
func errorCode(err error) (string, bool) {
	switch {
	case errors.Is(err, xerrors.ErrMissingFields):
		return "missing", true
	case errors.Is(err, xerrors.ErrInvalidSlug), errors.Is(err, xerrors.ErrSlugTaken):
		return "slug", true
	}
	return "", false
}

func errorMessage(code string) string {
	switch code {
	case "missing":
		return "Title and content are required."
	case "slug":
		return "Slug is invalid or already used."
	}
	return ""
}
