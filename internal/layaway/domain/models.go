// Package domain contains persistence models for layaway payment plans.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PlanStatus represents layaway plan lifecycle states.
type PlanStatus string

const (
	PlanStatusOpen      PlanStatus = "OPEN"
	PlanStatusCompleted PlanStatus = "COMPLETED"
	PlanStatusCancelled PlanStatus = "CANCELLED"
)

// Plan is a bill being paid off in installments after the goods are billed.
type Plan struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID  snowflake.ID `gorm:"not null;index" json:"customer_id"`
	BillID      snowflake.ID `gorm:"index" json:"bill_id,omitempty"`
	TotalAmount float64      `gorm:"not null" json:"total_amount"`
	PaidAmount  float64      `gorm:"not null;default:0" json:"paid_amount"`
	Status      PlanStatus   `gorm:"type:text;not null;default:'OPEN'" json:"status"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Plan) TableName() string { return "layaway_plans" }

// Transaction is one installment received against a plan.
type Transaction struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	PlanID    snowflake.ID `gorm:"not null;index" json:"plan_id"`
	Amount    float64      `gorm:"not null" json:"amount"`
	Method    string       `gorm:"type:text;not null" json:"method"`
	Reference string       `gorm:"type:text" json:"reference,omitempty"`
	PaidAt    time.Time    `gorm:"not null" json:"paid_at"`
}

// TableName sets the database table name.
func (Transaction) TableName() string { return "layaway_transactions" }
