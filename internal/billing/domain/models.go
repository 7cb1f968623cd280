// Package domain contains persistence models for sales billing.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// BillStatus represents bill lifecycle states.
type BillStatus string

const (
	BillStatusActive BillStatus = "ACTIVE"
	BillStatusVoid   BillStatus = "VOID"
)

// SaleType mirrors calc.SaleType at the persistence boundary.
type SaleType string

const (
	SaleTypeGST    SaleType = "gst"
	SaleTypeNonGST SaleType = "non_gst"
)

// PaymentMethod is one split of how a bill was settled.
type PaymentMethod struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference,omitempty"`
}

// Bill is the sales transaction aggregate root.
type Bill struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	BillNo     string       `gorm:"type:text;not null;uniqueIndex" json:"bill_no"`
	BillDate   time.Time    `gorm:"not null;index" json:"bill_date"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id"`
	StaffID    snowflake.ID `gorm:"not null" json:"staff_id"`
	SaleType   SaleType     `gorm:"type:text;not null" json:"sale_type"`

	Subtotal float64 `gorm:"not null;default:0" json:"subtotal"`

	// Value-added surcharge as entered or solved on the billing screen.
	MCWeight float64 `gorm:"column:mc_weight;not null;default:0" json:"mc_weight"`
	MCRate   float64 `gorm:"column:mc_rate;not null;default:0" json:"mc_rate"`
	MCTotal  float64 `gorm:"column:mc_total;not null;default:0" json:"mc_total"`

	Discount  float64 `gorm:"not null;default:0" json:"discount"`
	GSTAmount float64 `gorm:"column:gst_amount;not null;default:0" json:"gst_amount"`
	CGST      float64 `gorm:"column:cgst;not null;default:0" json:"cgst"`
	SGST      float64 `gorm:"column:sgst;not null;default:0" json:"sgst"`
	IGST      float64 `gorm:"column:igst;not null;default:0" json:"igst"`

	// GrandTotal is the computed total; AmountPayable is what was agreed at
	// the till. They differ when the operator typed a target amount.
	GrandTotal    float64 `gorm:"not null;default:0" json:"grand_total"`
	AmountPayable float64 `gorm:"not null;default:0" json:"amount_payable"`

	PaymentMethods datatypes.JSON `gorm:"column:payment_method" json:"payment_method"`
	Status         BillStatus     `gorm:"column:bill_status;type:text;not null;default:'ACTIVE'" json:"bill_status"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Bill) TableName() string { return "bills" }

// BillItem is one priced article on a bill. Line totals are fixed at
// creation; edits replace the whole item set.
type BillItem struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	BillID        snowflake.ID `gorm:"not null;index" json:"bill_id"`
	Barcode       string       `gorm:"type:text" json:"barcode,omitempty"`
	ItemName      string       `gorm:"type:text;not null" json:"item_name"`
	Weight        float64      `gorm:"not null" json:"weight"`
	Rate          float64      `gorm:"not null" json:"rate"`
	MakingCharges float64      `gorm:"not null;default:0" json:"making_charges"`
	GSTRate       float64      `gorm:"column:gst_rate;not null;default:0" json:"gst_rate"`
	LineTotal     float64      `gorm:"not null" json:"line_total"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (BillItem) TableName() string { return "bill_items" }

// OldGoldExchange is the one-per-bill credit sub-ledger row.
type OldGoldExchange struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	BillID      snowflake.ID `gorm:"not null;uniqueIndex" json:"bill_id"`
	Weight      float64      `gorm:"not null" json:"weight"`
	Purity      string       `gorm:"type:text" json:"purity"`
	RatePerGram float64      `gorm:"column:rate_per_gram;not null" json:"rate_per_gram"`
	TotalValue  float64      `gorm:"column:total_value;not null" json:"total_value"`
	Notes       string       `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (OldGoldExchange) TableName() string { return "old_gold_exchanges" }

const notesHSNMarker = " | HSN Code: "

// EncodeNotes packs the particulars and HSN code into the single notes
// column the table carries.
func EncodeNotes(particulars, hsnCode string) string {
	return fmt.Sprintf("Description: %s%s%s", particulars, notesHSNMarker, hsnCode)
}

// DecodeNotes splits a notes value back into particulars and HSN code.
func DecodeNotes(notes string) (particulars, hsnCode string) {
	particulars = strings.TrimPrefix(notes, "Description: ")
	if idx := strings.Index(particulars, notesHSNMarker); idx >= 0 {
		hsnCode = particulars[idx+len(notesHSNMarker):]
		particulars = particulars[:idx]
	}
	return particulars, hsnCode
}
