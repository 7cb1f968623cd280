// Package domain contains persistence models for stock items.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Item is one barcoded article in stock. Weight and making charges are
// defaults copied onto the billing screen when the barcode is scanned.
type Item struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	Barcode       string       `gorm:"type:text;not null;uniqueIndex" json:"barcode"`
	Name          string       `gorm:"type:text;not null" json:"name"`
	Category      string       `gorm:"type:text" json:"category,omitempty"`
	Weight        float64      `gorm:"not null" json:"weight"`
	Purity        string       `gorm:"type:text" json:"purity,omitempty"`
	MakingCharges float64      `gorm:"not null;default:0" json:"making_charges"`
	HSNCode       string       `gorm:"column:hsn_code;type:text" json:"hsn_code,omitempty"`
	InStock       bool         `gorm:"not null;default:true" json:"in_stock"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Item) TableName() string { return "items" }
