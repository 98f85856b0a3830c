package repositories

import (
	"github.com/bymariana/site-backend/internal/models"
	"gorm.io/gorm"
)

// ReportRepository defines the interface for content report operations.
// Reports are write-only from the site; moderators read them elsewhere.
type ReportRepository interface {
	CreateReport(report *models.Report) error
}

// PostgresReportRepository implements ReportRepository for PostgreSQL
type PostgresReportRepository struct {
	db *gorm.DB
}

// NewPostgresReportRepository creates a new PostgresReportRepository
func NewPostgresReportRepository(db *gorm.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

// CreateReport creates a new report in PostgreSQL
func (r *PostgresReportRepository) CreateReport(report *models.Report) error {
	return r.db.Create(report).Error
}
