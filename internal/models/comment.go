package models

import "gorm.io/gorm"

// Comment represents an anonymous comment on a testimonial post
type Comment struct {
	gorm.Model
	PostID string `json:"post_id" gorm:"size:64;index"`
	AnonID string `json:"-" gorm:"size:64;index"`
	Body   string `json:"body" gorm:"size:240"`
}

// TableName overrides the default table name
func (Comment) TableName() string { return "post_comments" }

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=240"`
}
