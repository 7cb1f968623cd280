package domain

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/smallbiznis/aurum/internal/billing/calc"
	"github.com/smallbiznis/aurum/pkg/listing"
)

// LineItemInput is one article as entered on the billing screen.
type LineItemInput struct {
	Barcode       string
	ItemName      string
	Weight        float64
	Rate          float64
	MakingCharges float64
}

// SurchargeInput carries the operator's MC/Value Added entries.
type SurchargeInput struct {
	Weight float64
	Rate   float64
}

// OldGoldInput carries the exchange sub-ledger entries. A zero Rate means
// "use today's gold rate".
type OldGoldInput struct {
	Weight      float64
	Rate        float64
	Purity      string
	Particulars string
	HSNCode     string
}

// SaveBillRequest assembles a full bill for create or update.
type SaveBillRequest struct {
	CustomerID     string
	SaleType       SaleType
	Items          []LineItemInput
	Surcharge      SurchargeInput
	OldGold        *OldGoldInput
	Discount       float64
	TargetPayable  *float64
	PaymentMethods []PaymentMethod
}

// PreviewResponse is the computed money state of an unsaved bill.
type PreviewResponse struct {
	Totals    calc.Totals    `json:"totals"`
	Surcharge calc.Surcharge `json:"surcharge"`
	OldGold   calc.OldGold   `json:"old_gold"`
}

// BillDetail is the aggregate as loaded for the edit screen.
type BillDetail struct {
	Bill    Bill             `json:"bill"`
	Items   []BillItem       `json:"items"`
	OldGold *OldGoldExchange `json:"old_gold,omitempty"`
}

// ListBillRequest carries the list screen's filters; all are optional and
// combine conjunctively.
type ListBillRequest struct {
	Page       int
	BillNo     string
	CustomerID string
	SaleType   string
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	AmountMin  *float64
	AmountMax  *float64
}

type ListBillResponse struct {
	listing.Page[*Bill]
}

type GetBillRequest struct {
	ID string
}

type Service interface {
	// Preview runs the calculator without persisting anything; the billing
	// screen calls it as inputs change.
	Preview(ctx context.Context, req SaveBillRequest) (PreviewResponse, error)
	Create(ctx context.Context, req SaveBillRequest) (BillDetail, error)
	Update(ctx context.Context, id string, req SaveBillRequest) (BillDetail, error)
	Get(ctx context.Context, req GetBillRequest) (BillDetail, error)
	List(ctx context.Context, req ListBillRequest) (ListBillResponse, error)
	Void(ctx context.Context, id string) error
	Receipt(ctx context.Context, id string) (io.Reader, error)
}

var (
	ErrInvalidStaff    = errors.New("invalid_staff")
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrInvalidSaleType = errors.New("invalid_sale_type")
	ErrNoItems         = errors.New("no_items")
	ErrInvalidWeight   = errors.New("invalid_weight")
	ErrInvalidRate     = errors.New("invalid_rate")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrBillVoid        = errors.New("bill_void")
)
