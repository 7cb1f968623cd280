package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// Upsert writes the rate for the given date, replacing any existing row.
	Upsert(ctx context.Context, db *gorm.DB, rate *GoldRate) error

	// Latest returns the rate with the newest effective date, or nil.
	Latest(ctx context.Context, db *gorm.DB) (*GoldRate, error)

	FindByDate(ctx context.Context, db *gorm.DB, date time.Time) (*GoldRate, error)

	ListAll(ctx context.Context, db *gorm.DB) ([]*GoldRate, error)
}
