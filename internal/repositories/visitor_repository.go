package repositories

import (
	"github.com/bymariana/site-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VisitorRepository defines the interface for anonymous visitor records
type VisitorRepository interface {
	UpsertVisitor(anonID string) error
}

// PostgresVisitorRepository implements VisitorRepository for PostgreSQL
type PostgresVisitorRepository struct {
	db *gorm.DB
}

// NewPostgresVisitorRepository creates a new PostgresVisitorRepository
func NewPostgresVisitorRepository(db *gorm.DB) *PostgresVisitorRepository {
	return &PostgresVisitorRepository{db: db}
}

// UpsertVisitor records an anonymous id, ignoring duplicates
func (r *PostgresVisitorRepository) UpsertVisitor(anonID string) error {
	visitor := models.AnonVisitor{AnonID: anonID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&visitor).Error
}
