// Package domain contains persistence models for advance bookings.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// BookingStatus represents the life of a deposit taken against a future order.
type BookingStatus string

const (
	BookingStatusOpen      BookingStatus = "OPEN"
	BookingStatusDelivered BookingStatus = "DELIVERED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// AdvanceBooking is a deposit against an order not yet fulfilled.
type AdvanceBooking struct {
	ID              snowflake.ID  `gorm:"primaryKey" json:"id"`
	CustomerID      snowflake.ID  `gorm:"not null;index" json:"customer_id"`
	Description     string        `gorm:"type:text;not null" json:"description"`
	EstimatedAmount float64       `gorm:"not null" json:"estimated_amount"`
	AdvancePaid     float64       `gorm:"not null" json:"advance_paid"`
	ExpectedDate    *time.Time    `gorm:"" json:"expected_date,omitempty"`
	Status          BookingStatus `gorm:"type:text;not null;default:'OPEN'" json:"status"`
	CreatedAt       time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (AdvanceBooking) TableName() string { return "advance_bookings" }
