package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/moderation"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/bymariana/site-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxUploadBytes caps testimonial uploads at 200 MB
const MaxUploadBytes = 200 << 20

// Accepted upload content types, mapped to the post kind they produce
var uploadKinds = map[string]string{
	"image/jpeg":      models.PostKindImage,
	"image/png":       models.PostKindImage,
	"image/webp":      models.PostKindImage,
	"image/avif":      models.PostKindImage,
	"image/gif":       models.PostKindImage,
	"video/mp4":       models.PostKindVideo,
	"video/webm":      models.PostKindVideo,
	"video/quicktime": models.PostKindVideo,
	"video/x-m4v":     models.PostKindVideo,
}

// UploadHandler accepts user testimonial uploads
type UploadHandler struct {
	postRepository    repositories.PostRepository
	visitorRepository repositories.VisitorRepository
	bucket            *storage.Bucket
	approveUploads    bool // false routes new posts through pending moderation
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(postRepo repositories.PostRepository, visitorRepo repositories.VisitorRepository, bucket *storage.Bucket, approveUploads bool) *UploadHandler {
	return &UploadHandler{
		postRepository:    postRepo,
		visitorRepository: visitorRepo,
		bucket:            bucket,
		approveUploads:    approveUploads,
	}
}

// RegisterUploadRoutes registers upload-related routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/testimonials", h.UploadTestimonial)
}

// UploadTestimonial stores a photo or video testimonial: media goes to the
// bucket under ugc/<year-month>/<uuid>/, the post row follows.
func (h *UploadHandler) UploadTestimonial(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}

	var req models.UploadTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	caption := strings.TrimSpace(req.Caption)
	if !moderation.IsAcceptable(caption) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Caption contains blocked language")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Select a photo or video")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	kind, ok := uploadKinds[contentType]
	if !ok {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "Unsupported media format")
	}
	if fileHeader.Size > MaxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large; maximum is %d MB", MaxUploadBytes>>20))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if ext == "" {
		if kind == models.PostKindImage {
			ext = "jpg"
		} else {
			ext = "mp4"
		}
	}

	uid := uuid.NewString()
	yearMonth := time.Now().UTC().Format("2006-01")
	path := fmt.Sprintf("ugc/%s/%s/%s.%s", yearMonth, uid, uid, ext)

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unreadable upload")
	}
	defer src.Close()

	if err := h.bucket.Upload(c.Request().Context(), path, contentType, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.visitorRepository.UpsertVisitor(anonID); err != nil {
		log.Printf("Failed to record visitor %s: %v", anonID, err)
	}

	status := models.PostStatusApproved
	if !h.approveUploads {
		status = models.PostStatusPending
	}

	post := &models.Post{
		AnonID:      anonID,
		Kind:        kind,
		StoragePath: path,
		Caption:     caption,
		Status:      status,
	}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}
