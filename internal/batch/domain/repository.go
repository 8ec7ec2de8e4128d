package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, batch *Batch) error
	List(ctx context.Context, db *gorm.DB, institutionID snowflake.ID) ([]*Batch, error)
}
