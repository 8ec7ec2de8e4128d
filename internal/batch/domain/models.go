package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Batch represents a teaching group inside an institution.
type Batch struct {
	ID            snowflake.ID                `gorm:"primaryKey" json:"id"`
	InstitutionID snowflake.ID                `gorm:"not null;index" json:"institution_id"`
	Name          string                      `gorm:"not null" json:"name"`
	Subject       *string                     `json:"subject,omitempty"`
	TeacherIDs    datatypes.JSONSlice[string] `gorm:"not null;default:'[]'" json:"teacher_ids"`
	Schedule      *string                     `json:"schedule,omitempty"`
	CreatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Batch) TableName() string { return "batches" }
