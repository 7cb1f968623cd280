package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/aurum/pkg/listing"
)

type SetRateRequest struct {
	RatePerGram float64
}

type ListRateRequest struct {
	Page     int
	DateFrom *time.Time
	DateTo   *time.Time
}

type ListRateResponse struct {
	listing.Page[*GoldRate]
}

type Service interface {
	// SetToday posts today's rate, replacing an earlier posting for the day.
	SetToday(ctx context.Context, req SetRateRequest) (GoldRate, error)

	// Today returns the latest posted rate. ErrNoRate when none exists yet.
	Today(ctx context.Context) (GoldRate, error)

	List(ctx context.Context, req ListRateRequest) (ListRateResponse, error)
}

var (
	ErrInvalidStaff = errors.New("invalid_staff")
	ErrInvalidRate  = errors.New("invalid_rate")
	ErrNoRate       = errors.New("no_rate")
)
