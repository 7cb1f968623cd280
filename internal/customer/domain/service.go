package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/aurum/pkg/listing"
)

type CreateCustomerRequest struct {
	Name    string
	Phone   string
	Email   string
	Address string
	City    string
	GSTIN   string
}

type UpdateCustomerRequest struct {
	ID string
	CreateCustomerRequest
}

type ListCustomerRequest struct {
	Page   int
	Search string // substring over name and phone
	City   string
}

type ListCustomerResponse struct {
	listing.Page[*Customer]
}

type GetCustomerRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(context.Context, GetCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidStaff = errors.New("invalid_staff")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPhone = errors.New("invalid_phone")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
