package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Phone     string       `gorm:"type:text;not null;index" json:"phone"`
	Email     string       `gorm:"type:text" json:"email,omitempty"`
	Address   string       `gorm:"type:text" json:"address,omitempty"`
	City      string       `gorm:"type:text" json:"city,omitempty"`
	GSTIN     string       `gorm:"type:text" json:"gstin,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
