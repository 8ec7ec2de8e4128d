package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, user *User) error
	CountByEmail(ctx context.Context, db *gorm.DB, institutionID snowflake.ID, email string) (int64, error)
	List(ctx context.Context, db *gorm.DB, filter ListUserRequest) ([]*User, error)
}
