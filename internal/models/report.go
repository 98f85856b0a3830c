package models

import "gorm.io/gorm"

// Report represents a content report against a testimonial post. Reports are
// write-only from the site; they are reviewed out of band.
type Report struct {
	gorm.Model
	PostID string `json:"post_id" gorm:"size:64;index"`
	AnonID string `json:"-" gorm:"size:64"`
	Reason string `json:"reason" gorm:"size:500"`
}

// TableName overrides the default table name
func (Report) TableName() string { return "post_reports" }

// CreateReportRequest defines the request body for reporting a post
type CreateReportRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}
