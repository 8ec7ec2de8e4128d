package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, institution *Institution) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Institution, error)
	List(ctx context.Context, db *gorm.DB) ([]*Institution, error)
}
