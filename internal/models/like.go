package models

import "gorm.io/gorm"

// Like represents an anonymous like on a testimonial post. At most one row
// may exist per (post_id, anon_id) pair, enforced by a unique index.
type Like struct {
	gorm.Model
	PostID string `json:"post_id" gorm:"size:64;uniqueIndex:idx_post_likes_post_anon"`
	AnonID string `json:"anon_id" gorm:"size:64;uniqueIndex:idx_post_likes_post_anon"`
}

// TableName overrides the default table name
func (Like) TableName() string { return "post_likes" }
