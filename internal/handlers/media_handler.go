package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/bymariana/site-backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// Default bucket folders as the site organizes them
const (
	galleryPrefix = "gallery"
	videosPrefix  = "videos"
	postersPrefix = "videos-posters"
)

const defaultMediaLimit = 20

// MediaHandler serves carousel media listings and path-keyed media likes
type MediaHandler struct {
	photoLikeRepository repositories.MediaLikeRepository
	videoLikeRepository repositories.MediaLikeRepository
	bucket              *storage.Bucket
	signedURLTTL        time.Duration
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(photoLikes, videoLikes repositories.MediaLikeRepository, bucket *storage.Bucket, signedURLTTL time.Duration) *MediaHandler {
	return &MediaHandler{
		photoLikeRepository: photoLikes,
		videoLikeRepository: videoLikes,
		bucket:              bucket,
		signedURLTTL:        signedURLTTL,
	}
}

// RegisterMediaRoutes registers media-related routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.GET("/gallery", h.GetGallery)
	g.GET("/videos", h.GetVideos)
	g.GET("/media/signed-url", h.GetSignedURL)
	g.GET("/media/likes", h.GetMediaLikes)
	g.POST("/media/likes", h.LikeMedia)
	g.DELETE("/media/likes", h.UnlikeMedia)
}

// GetGallery lists before/after gallery images with public URLs
func (h *MediaHandler) GetGallery(c echo.Context) error {
	prefix := c.QueryParam("prefix")
	if prefix == "" {
		prefix = galleryPrefix
	}

	items, err := h.bucket.ListImages(c.Request().Context(), prefix, mediaLimit(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetVideos lists showcase videos with public URLs and verified posters
func (h *MediaHandler) GetVideos(c echo.Context) error {
	prefix := c.QueryParam("prefix")
	if prefix == "" {
		prefix = videosPrefix
	}
	posters := c.QueryParam("posters")
	if posters == "" {
		posters = postersPrefix
	}

	items, err := h.bucket.ListVideos(c.Request().Context(), prefix, posters, mediaLimit(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetSignedURL returns a time-limited link to a private object. Expired
// links are re-resolved by calling this again, never cached indefinitely.
func (h *MediaHandler) GetSignedURL(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path query parameter is required")
	}

	url, err := h.bucket.SignedURL(path, h.signedURLTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"url":        url,
		"expires_in": int(h.signedURLTTL.Seconds()),
	})
}

// GetMediaLikes returns the like count for a media path, plus the caller's
// like status when an anonymous id is present
func (h *MediaHandler) GetMediaLikes(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path query parameter is required")
	}
	repo, err := h.likeRepoForKind(c.QueryParam("kind"))
	if err != nil {
		return err
	}

	count, err := repo.CountLikes(path)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked := false
	if anonID := middleware.AnonIDFromContext(c); anonID != "" {
		liked, _ = repo.HasLiked(path, anonID)
	}

	return c.JSON(http.StatusOK, echo.Map{"path": path, "like_count": count, "has_liked": liked})
}

// LikeMedia likes a gallery photo or showcase video by storage path
func (h *MediaHandler) LikeMedia(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}

	var req models.CreateMediaLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	repo, err := h.likeRepoForKind(req.Kind)
	if err != nil {
		return err
	}
	if err := repo.CreateLike(req.Path, anonID); err != nil {
		if errors.Is(err, repositories.ErrDuplicateLike) {
			return echo.NewHTTPError(http.StatusConflict, "Media already liked by this visitor")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"path": req.Path, "has_liked": true})
}

// UnlikeMedia removes a media like; removing an absent like is a no-op
func (h *MediaHandler) UnlikeMedia(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}

	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path query parameter is required")
	}
	repo, err := h.likeRepoForKind(c.QueryParam("kind"))
	if err != nil {
		return err
	}

	if _, err := repo.DeleteLike(path, anonID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MediaHandler) likeRepoForKind(kind string) (repositories.MediaLikeRepository, error) {
	switch kind {
	case "photo":
		return h.photoLikeRepository, nil
	case "video":
		return h.videoLikeRepository, nil
	default:
		return nil, echo.NewHTTPError(http.StatusBadRequest, "kind must be photo or video")
	}
}

func mediaLimit(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		return defaultMediaLimit
	}
	return limit
}
