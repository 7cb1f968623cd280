package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/aurum/pkg/listing"
)

type CreatePlanRequest struct {
	CustomerID  string
	BillID      string // optional link to the billed sale
	TotalAmount float64
}

type RecordPaymentRequest struct {
	PlanID    string
	Amount    float64
	Method    string
	Reference string
}

type ListPlanRequest struct {
	Page       int
	CustomerID string
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

type ListPlanResponse struct {
	listing.Page[*Plan]
}

type GetPlanRequest struct {
	ID string
}

// PlanDetail is a plan with its installment history.
type PlanDetail struct {
	Plan         Plan          `json:"plan"`
	Transactions []Transaction `json:"transactions"`
}

type Service interface {
	Create(context.Context, CreatePlanRequest) (Plan, error)
	// RecordPayment applies one installment atomically: the transaction row
	// and the plan's running paid total move together, and the plan
	// completes once paid >= total.
	RecordPayment(context.Context, RecordPaymentRequest) (PlanDetail, error)
	List(context.Context, ListPlanRequest) (ListPlanResponse, error)
	GetByID(context.Context, GetPlanRequest) (PlanDetail, error)
	Cancel(ctx context.Context, id string) (Plan, error)
}

var (
	ErrInvalidStaff    = errors.New("invalid_staff")
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidMethod   = errors.New("invalid_method")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrPlanClosed      = errors.New("plan_closed")
)
