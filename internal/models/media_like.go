package models

import "gorm.io/gorm"

// Media like tables. Carousel media (gallery photos, showcase videos) is not
// backed by a post row, so likes on it are keyed by the raw storage path.
const (
	PhotoLikesTable = "photo_likes"
	VideoLikesTable = "video_likes"
)

// MediaLike represents an anonymous like on a storage object. The same model
// backs both the photo_likes and video_likes tables.
type MediaLike struct {
	gorm.Model
	Path   string `json:"path" gorm:"size:512;uniqueIndex:idx_media_likes_path_anon"`
	AnonID string `json:"anon_id" gorm:"size:64;uniqueIndex:idx_media_likes_path_anon"`
}

// CreateMediaLikeRequest defines the request body for liking carousel media
type CreateMediaLikeRequest struct {
	Path string `json:"path" validate:"required,max=512"`
	Kind string `json:"kind" validate:"required,oneof=photo video"`
}
