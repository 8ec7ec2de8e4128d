package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role represents what a user can do inside an institution.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

type User struct {
	ID              snowflake.ID  `gorm:"primaryKey" json:"id"`
	InstitutionID   snowflake.ID  `gorm:"not null;index" json:"institution_id"`
	Role            Role          `gorm:"type:text;not null" json:"role"`
	Name            string        `gorm:"not null" json:"name"`
	Email           *string       `json:"email,omitempty"`
	Phone           *string       `json:"phone,omitempty"`
	Password        *string       `json:"-"`
	LinkedStudentID *snowflake.ID `gorm:"index" json:"linked_student_id,omitempty"`
	CreatedAt       time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	default:
		return false
	}
}
