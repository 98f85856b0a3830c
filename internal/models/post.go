package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post kinds.
const (
	PostKindImage = "image"
	PostKindVideo = "video"
)

// Post moderation statuses.
const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
)

// Post represents a customer testimonial stored in MongoDB. The media
// itself lives in the storage bucket under StoragePath; LikeCount and
// CommentCount are maintained server-side and never written by clients.
type Post struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AnonID       string             `json:"-" bson:"anon_id"` // uploader's anonymous id, never exposed
	Kind         string             `json:"kind" bson:"kind"`
	StoragePath  string             `json:"storage_path" bson:"storage_path"`
	Caption      string             `json:"caption,omitempty" bson:"caption,omitempty"`
	LikeCount    int                `json:"like_count" bson:"like_count"`
	CommentCount int                `json:"comment_count" bson:"comment_count"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// UploadTestimonialRequest defines the non-file fields of a testimonial upload
type UploadTestimonialRequest struct {
	Caption string `form:"caption" validate:"omitempty,max=300"`
}
