package repositories

import (
	"github.com/bymariana/site-backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for post like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	// DeleteLike removes the (postID, anonID) like if it exists and reports
	// whether a row was actually deleted. Deleting an absent like is a no-op.
	DeleteLike(postID, anonID string) (bool, error)
	HasLiked(postID, anonID string) (bool, error)
	CountLikes(postID string) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like row. A concurrent duplicate surfaces as
// ErrDuplicateLike via the unique (post_id, anon_id) index.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateLike
		}
		return err
	}
	return nil
}

// DeleteLike deletes a like from PostgreSQL
func (r *PostgresLikeRepository) DeleteLike(postID, anonID string) (bool, error) {
	res := r.db.Where("post_id = ? AND anon_id = ?", postID, anonID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasLiked checks whether an anonymous id has liked a specific post
func (r *PostgresLikeRepository) HasLiked(postID, anonID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND anon_id = ?", postID, anonID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountLikes retrieves the count of likes for a specific post
func (r *PostgresLikeRepository) CountLikes(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
