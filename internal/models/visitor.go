package models

import "time"

// AnonVisitor records each anonymous id that has uploaded a testimonial.
// Inserted with on-conflict-do-nothing; the id is an attribution key only,
// never a credential.
type AnonVisitor struct {
	AnonID    string    `json:"anon_id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the default table name
func (AnonVisitor) TableName() string { return "anon_visitors" }
