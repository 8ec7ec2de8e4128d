package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListAttendanceFilter struct {
	InstitutionID snowflake.ID
	StudentID     snowflake.ID
	Date          string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, attendance *Attendance) error
	List(ctx context.Context, db *gorm.DB, filter ListAttendanceFilter) ([]*Attendance, error)
	Trend(ctx context.Context, db *gorm.DB, institutionID, studentID snowflake.ID) ([]TrendPoint, error)
}
