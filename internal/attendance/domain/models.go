package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status records whether a student showed up.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// Mode records how attendance was captured.
type Mode string

const (
	ModeQR     Mode = "qr"
	ModeGPS    Mode = "gps"
	ModeManual Mode = "manual"
)

// Attendance is one student's record for one date.
type Attendance struct {
	ID            snowflake.ID  `gorm:"primaryKey" json:"id"`
	InstitutionID snowflake.ID  `gorm:"not null;index" json:"institution_id"`
	StudentID     snowflake.ID  `gorm:"not null;index" json:"student_id"`
	BatchID       *snowflake.ID `gorm:"index" json:"batch_id,omitempty"`
	Date          string        `gorm:"type:text;not null;index" json:"date"`
	Status        Status        `gorm:"type:text;not null;default:'present'" json:"status"`
	Mode          Mode          `gorm:"type:text;not null;default:'manual'" json:"mode"`
	GPSLat        *float64      `json:"gps_lat,omitempty"`
	GPSLng        *float64      `json:"gps_lng,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Attendance) TableName() string { return "attendances" }

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	default:
		return false
	}
}

func (m Mode) Valid() bool {
	switch m {
	case ModeQR, ModeGPS, ModeManual:
		return true
	default:
		return false
	}
}
