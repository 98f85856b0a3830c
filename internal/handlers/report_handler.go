package handlers

import (
	"net/http"
	"strings"

	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles HTTP requests for content reports
type ReportHandler struct {
	reportRepository repositories.ReportRepository
	postRepository   repositories.PostRepository
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportRepo repositories.ReportRepository, postRepo repositories.PostRepository) *ReportHandler {
	return &ReportHandler{
		reportRepository: reportRepo,
		postRepository:   postRepo,
	}
}

// RegisterReportRoutes registers report-related routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/reports", h.CreateReport)
}

// CreateReport records a content report. An empty reason aborts the write.
func (h *ReportHandler) CreateReport(c echo.Context) error {
	anonID, err := middleware.RequireAnonID(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Report reason cannot be empty")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	report := &models.Report{PostID: postID, AnonID: anonID, Reason: reason}
	if err := h.reportRepository.CreateReport(report); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Thanks, we will review this content."})
}
