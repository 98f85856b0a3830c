package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/bymariana/site-backend/internal/feed"
	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/moderation"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository // to update comment counts in posts
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
}

// CreateComment creates a new comment on a post. Bodies that fail the
// moderation filter are rejected before anything is written.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Comment cannot be empty")
	}
	if !moderation.IsAcceptable(body) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Comment contains blocked language")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comment := &models.Comment{PostID: postID, AnonID: anonID, Body: body}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.postRepository.IncrementCommentCount(c.Request().Context(), postID); err != nil {
		log.Printf("Failed to increment comment count for post %s: %v", postID, err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves comments for a post, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	postID := c.Param("post_id")

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > feed.CommentListLimit {
		limit = feed.CommentListLimit
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "comments": comments})
}
