// Package domain contains persistence models for tenancy.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Plan represents an institution subscription tier.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanBasic      Plan = "basic"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// Institution represents an isolated customer organization. Every other
// record in the system is scoped by its id.
type Institution struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Subdomain    *string      `gorm:"uniqueIndex" json:"subdomain,omitempty"`
	Plan         Plan         `gorm:"type:text;not null;default:'free'" json:"plan"`
	ContactEmail *string      `json:"contact_email,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Address      *string      `json:"address,omitempty"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Institution) TableName() string { return "institutions" }

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPremium, PlanEnterprise:
		return true
	default:
		return false
	}
}
