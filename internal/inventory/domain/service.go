package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/aurum/pkg/listing"
)

type CreateItemRequest struct {
	Barcode       string
	Name          string
	Category      string
	Weight        float64
	Purity        string
	MakingCharges float64
	HSNCode       string
}

type UpdateItemRequest struct {
	ID string
	CreateItemRequest
	InStock *bool
}

type ListItemRequest struct {
	Page      int
	Search    string // substring over name and barcode
	Category  string
	WeightMin *float64
	WeightMax *float64
	InStock   *bool
}

type ListItemResponse struct {
	listing.Page[*Item]
}

type GetItemRequest struct {
	ID string
}

// BarcodeLookup is the scan result. Found is false on a miss and the
// operator proceeds with manual entry.
type BarcodeLookup struct {
	Found bool  `json:"found"`
	Item  *Item `json:"item,omitempty"`
}

type Service interface {
	Create(context.Context, CreateItemRequest) (Item, error)
	Update(context.Context, UpdateItemRequest) (Item, error)
	List(context.Context, ListItemRequest) (ListItemResponse, error)
	GetByID(context.Context, GetItemRequest) (Item, error)
	LookupBarcode(ctx context.Context, barcode string) (BarcodeLookup, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidStaff     = errors.New("invalid_staff")
	ErrInvalidBarcode   = errors.New("invalid_barcode")
	ErrDuplicateBarcode = errors.New("duplicate_barcode")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidWeight    = errors.New("invalid_weight")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
)
