package handlers

import (
	"net/http"
	"strconv"

	"github.com/bymariana/site-backend/internal/feed"
	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/bymariana/site-backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests for the testimonial feed
type PostHandler struct {
	postRepository repositories.PostRepository
	likeRepository repositories.LikeRepository
	bucket         *storage.Bucket
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository, bucket *storage.Bucket) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		likeRepository: likeRepo,
		bucket:         bucket,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetApprovedPosts)
	g.GET("/posts/:post_id", h.GetPostByID)
}

// FeedPost is a post with its resolved media URL and the caller's like flag
type FeedPost struct {
	models.Post
	MediaURL string `json:"media_url"`
	IsLiked  bool   `json:"is_liked"`
}

// GetApprovedPosts returns approved testimonials, newest first
func (h *PostHandler) GetApprovedPosts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > feed.PostListLimit {
		limit = feed.PostListLimit
	}

	posts, err := h.postRepository.GetApprovedPosts(c.Request().Context(), int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	anonID := middleware.AnonIDFromContext(c)

	enriched := make([]FeedPost, len(posts))
	for i, p := range posts {
		fp := FeedPost{Post: p, MediaURL: h.bucket.PublicURL(p.StoragePath)}
		if anonID != "" {
			fp.IsLiked, _ = h.likeRepository.HasLiked(p.ID.Hex(), anonID)
		}
		enriched[i] = fp
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": enriched})
}

// GetPostByID returns a single post record, counters included
func (h *PostHandler) GetPostByID(c echo.Context) error {
	postID := c.Param("post_id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	fp := FeedPost{Post: *post, MediaURL: h.bucket.PublicURL(post.StoragePath)}
	if anonID := middleware.AnonIDFromContext(c); anonID != "" {
		fp.IsLiked, _ = h.likeRepository.HasLiked(post.ID.Hex(), anonID)
	}
	return c.JSON(http.StatusOK, fp)
}
