package repositories

import (
	"github.com/bymariana/site-backend/internal/models"
	"gorm.io/gorm"
)

// MediaLikeRepository defines the interface for path-keyed like operations on
// carousel media (photos and videos that have no backing post row)
type MediaLikeRepository interface {
	CreateLike(path, anonID string) error
	DeleteLike(path, anonID string) (bool, error)
	HasLiked(path, anonID string) (bool, error)
	CountLikes(path string) (int64, error)
}

// PostgresMediaLikeRepository implements MediaLikeRepository for PostgreSQL.
// The table name is a parameter so photo_likes and video_likes share one
// implementation.
type PostgresMediaLikeRepository struct {
	db    *gorm.DB
	table string
}

// NewPostgresMediaLikeRepository creates a new PostgresMediaLikeRepository
// bound to the given table
func NewPostgresMediaLikeRepository(db *gorm.DB, table string) *PostgresMediaLikeRepository {
	return &PostgresMediaLikeRepository{db: db, table: table}
}

// CreateLike creates a new media like row, surfacing duplicates as
// ErrDuplicateLike
func (r *PostgresMediaLikeRepository) CreateLike(path, anonID string) error {
	like := models.MediaLike{Path: path, AnonID: anonID}
	if err := r.db.Table(r.table).Create(&like).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateLike
		}
		return err
	}
	return nil
}

// DeleteLike deletes a media like; deleting an absent like is a no-op
func (r *PostgresMediaLikeRepository) DeleteLike(path, anonID string) (bool, error) {
	res := r.db.Table(r.table).Where("path = ? AND anon_id = ?", path, anonID).Delete(&models.MediaLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasLiked checks whether an anonymous id has liked a specific media path
func (r *PostgresMediaLikeRepository) HasLiked(path, anonID string) (bool, error) {
	var count int64
	if err := r.db.Table(r.table).Where("path = ? AND anon_id = ?", path, anonID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountLikes retrieves the count of likes for a specific media path
func (r *PostgresMediaLikeRepository) CountLikes(path string) (int64, error) {
	var count int64
	if err := r.db.Table(r.table).Where("path = ?", path).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
