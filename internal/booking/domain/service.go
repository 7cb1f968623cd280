package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/aurum/pkg/listing"
)

type CreateBookingRequest struct {
	CustomerID      string
	Description     string
	EstimatedAmount float64
	AdvancePaid     float64
	ExpectedDate    *time.Time
}

type ListBookingRequest struct {
	Page       int
	CustomerID string
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

type ListBookingResponse struct {
	listing.Page[*AdvanceBooking]
}

type GetBookingRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateBookingRequest) (AdvanceBooking, error)
	List(context.Context, ListBookingRequest) (ListBookingResponse, error)
	GetByID(context.Context, GetBookingRequest) (AdvanceBooking, error)
	// SetStatus moves a booking between OPEN, DELIVERED, and CANCELLED.
	SetStatus(ctx context.Context, id string, status BookingStatus) (AdvanceBooking, error)
}

var (
	ErrInvalidStaff       = errors.New("invalid_staff")
	ErrInvalidCustomer    = errors.New("invalid_customer")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
)
