package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Student enrolls a user into zero or more batches of an institution.
type Student struct {
	ID              snowflake.ID                `gorm:"primaryKey" json:"id"`
	InstitutionID   snowflake.ID                `gorm:"not null;index" json:"institution_id"`
	UserID          snowflake.ID                `gorm:"not null;index" json:"user_id"`
	BatchIDs        datatypes.JSONSlice[string] `gorm:"not null;default:'[]'" json:"batch_ids"`
	AdmissionNo     *string                     `json:"admission_no,omitempty"`
	GuardianContact *string                     `json:"guardian_contact,omitempty"`
	Meta            datatypes.JSONMap           `gorm:"not null;default:'{}'" json:"meta,omitempty"`
	CreatedAt       time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Student) TableName() string { return "students" }
