package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	// ListAll returns every customer; list screens filter in memory.
	ListAll(ctx context.Context, db *gorm.DB) ([]*Customer, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
