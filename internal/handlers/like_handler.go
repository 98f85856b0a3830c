package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to post likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository // to update like counts in posts
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
	g.GET("/posts/:post_id/likes/status", h.GetLikeStatusForPost)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	like := &models.Like{PostID: postID, AnonID: anonID}
	if err := h.likeRepository.CreateLike(like); err != nil {
		if errors.Is(err, repositories.ErrDuplicateLike) {
			return echo.NewHTTPError(http.StatusConflict, "Post already liked by this visitor")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Counter moves only after the like row is committed; the server owns it
	if err := h.postRepository.IncrementLikeCount(c.Request().Context(), postID); err != nil {
		log.Printf("Failed to increment like count for post %s: %v", postID, err)
	}

	return c.JSON(http.StatusCreated, like)
}

// UnlikePost handles removing a like. Removing an absent like is a no-op.
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	deleted, err := h.likeRepository.DeleteLike(postID, anonID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if deleted {
		if err := h.postRepository.DecrementLikeCount(c.Request().Context(), postID); err != nil {
			log.Printf("Failed to decrement like count for post %s: %v", postID, err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLikesCountForPost retrieves the total number of likes for a post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID := c.Param("post_id")

	count, err := h.likeRepository.CountLikes(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "like_count": count})
}

// GetLikeStatusForPost checks whether the caller has liked a post
func (h *LikeHandler) GetLikeStatusForPost(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	hasLiked, err := h.likeRepository.HasLiked(postID, anonID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "has_liked": hasLiked})
}
