// Package domain contains persistence models for daily gold rates.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// GoldRate is one day's posted rate. One row per effective date; the
// latest date is "today's rate" everywhere in the application.
type GoldRate struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	RatePerGram   float64      `gorm:"column:rate_per_gram;not null" json:"rate_per_gram"`
	EffectiveDate time.Time    `gorm:"column:effective_date;not null;uniqueIndex" json:"effective_date"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (GoldRate) TableName() string { return "gold_rates" }
