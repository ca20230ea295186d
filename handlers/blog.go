package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saaslanding/saaslanding/backend/api/internal/blog"
	"github.com/saaslanding/saaslanding/backend/api/internal/models"
	"github.com/saaslanding/saaslanding/backend/api/pkg/logger"
)

type CreatePostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Slug      string   `json:"slug" binding:"required"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content" binding:"required"`
	Author    string   `json:"author" binding:"required"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"` // defaults to true when omitted
}

// BlogHandler holds dependencies
type BlogHandler struct {
	svc *blog.Service
	log zerolog.Logger
}

func NewBlogHandler(svc *blog.Service) *BlogHandler {
	return &BlogHandler{
		svc: svc,
		log: logger.With().Str("handler", "blog").Logger(),
	}
}

// Register routes under /blog
func (h *BlogHandler) Register(rg *gin.RouterGroup) {
	b := rg.Group("/blog")
	b.GET("", h.List)
	b.GET("/:slug", h.Get)
	b.POST("", h.Create)
}

// List returns published posts newest-first.
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list posts failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}
	out := make([]models.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Response())
	}
	c.JSON(http.StatusOK, out)
}

// Get returns the post with the given slug regardless of publish status.
func (h *BlogHandler) Get(c *gin.Context) {
	p, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.log.Error().Err(err).Msg("get post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get post"})
		return
	}
	c.JSON(http.StatusOK, p.Response())
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	p := &models.BlogPost{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    req.Author,
		Tags:      tags,
		Published: published,
	}
	id, err := h.svc.Create(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, blog.ErrSlugTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
			return
		}
		h.log.Error().Err(err).Msg("create post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "slug": req.Slug})
}
