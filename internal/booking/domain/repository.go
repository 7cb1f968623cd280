package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, booking *AdvanceBooking) error
	Update(ctx context.Context, db *gorm.DB, booking *AdvanceBooking) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*AdvanceBooking, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]*AdvanceBooking, error)
}
