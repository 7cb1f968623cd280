package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// SaveBill persists the whole aggregate in one transaction: the bill
	// header, a full replacement of its items, and the old-gold row (kept
	// while its total is positive, deleted once cleared to zero).
	SaveBill(ctx context.Context, db *gorm.DB, bill *Bill, items []BillItem, oldGold *OldGoldExchange) error

	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Bill, []BillItem, *OldGoldExchange, error)

	// ListAll returns every bill; the list screens filter in memory.
	ListAll(ctx context.Context, db *gorm.DB) ([]*Bill, error)

	// LatestBillNo returns the highest bill_no matching the prefix pattern
	// (e.g. "SALE-20250115-%"), or "" when none exists for the day.
	LatestBillNo(ctx context.Context, db *gorm.DB, prefix string) (string, error)

	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status BillStatus) error
}
