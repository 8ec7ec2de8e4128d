package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Channel is a delivery channel for a notification.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
	ChannelPush     Channel = "push"
)

// Status tracks delivery progress. Only enqueuing happens here; delivery
// is owned by an external worker.
type Status string

const (
	StatusQueued Status = "queued"
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

const TemplateAbsenceAlert = "absence_alert"

// Notification is a queued message for a user.
type Notification struct {
	ID            snowflake.ID      `gorm:"primaryKey" json:"id"`
	InstitutionID snowflake.ID      `gorm:"not null;index" json:"institution_id"`
	UserID        snowflake.ID      `gorm:"not null;index" json:"user_id"`
	Channel       Channel           `gorm:"type:text;not null" json:"channel"`
	Template      string            `gorm:"not null" json:"template"`
	Payload       datatypes.JSONMap `gorm:"not null;default:'{}'" json:"payload"`
	Status        Status            `gorm:"type:text;not null;default:'queued'" json:"status"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Notification) TableName() string { return "notifications" }
