package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListStudentFilter struct {
	InstitutionID snowflake.ID
	BatchID       string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, student *Student) error
	List(ctx context.Context, db *gorm.DB, filter ListStudentFilter) ([]*Student, error)
}
