package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Item) error
	Update(ctx context.Context, db *gorm.DB, item *Item) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Item, error)
	// FindByBarcode returns nil on a miss; a missing barcode is a normal
	// outcome, not an error.
	FindByBarcode(ctx context.Context, db *gorm.DB, barcode string) (*Item, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]*Item, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
