package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/booking/domain"
	"github.com/smallbiznis/aurum/internal/staffctx"
	"github.com/smallbiznis/aurum/pkg/listing"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("booking.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBookingRequest) (domain.AdvanceBooking, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.AdvanceBooking{}, domain.ErrInvalidStaff
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.AdvanceBooking{}, domain.ErrInvalidCustomer
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.AdvanceBooking{}, domain.ErrInvalidDescription
	}
	if req.EstimatedAmount <= 0 || req.AdvancePaid < 0 || req.AdvancePaid > req.EstimatedAmount {
		return domain.AdvanceBooking{}, domain.ErrInvalidAmount
	}

	now := s.clock.Now()
	booking := domain.AdvanceBooking{
		ID:              s.genID.Generate(),
		CustomerID:      customerID,
		Description:     strings.TrimSpace(req.Description),
		EstimatedAmount: req.EstimatedAmount,
		AdvancePaid:     req.AdvancePaid,
		ExpectedDate:    req.ExpectedDate,
		Status:          domain.BookingStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &booking); err != nil {
		return domain.AdvanceBooking{}, err
	}

	s.log.Info("booking created",
		zap.String("customer_id", customerID.String()),
		zap.Float64("advance_paid", booking.AdvancePaid),
	)
	return booking, nil
}

func (s *Service) List(ctx context.Context, req domain.ListBookingRequest) (domain.ListBookingResponse, error) {
	bookings, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return domain.ListBookingResponse{}, err
	}

	filtered := listing.Filter(bookings,
		listing.Equals(func(b *domain.AdvanceBooking) string { return b.CustomerID.String() }, req.CustomerID),
		listing.Equals(func(b *domain.AdvanceBooking) string { return string(b.Status) }, req.Status),
		listing.DateRange(func(b *domain.AdvanceBooking) time.Time { return b.CreatedAt }, req.DateFrom, req.DateTo),
	)

	return domain.ListBookingResponse{
		Page: listing.Paginate(filtered, req.Page, listing.DefaultPageSize),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetBookingRequest) (domain.AdvanceBooking, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.AdvanceBooking{}, domain.ErrInvalidID
	}

	booking, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.AdvanceBooking{}, err
	}
	if booking == nil {
		return domain.AdvanceBooking{}, domain.ErrNotFound
	}

	return *booking, nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (domain.AdvanceBooking, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.AdvanceBooking{}, domain.ErrInvalidStaff
	}

	switch status {
	case domain.BookingStatusOpen, domain.BookingStatusDelivered, domain.BookingStatusCancelled:
	default:
		return domain.AdvanceBooking{}, domain.ErrInvalidStatus
	}

	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.AdvanceBooking{}, domain.ErrInvalidID
	}

	booking, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.AdvanceBooking{}, err
	}
	if booking == nil {
		return domain.AdvanceBooking{}, domain.ErrNotFound
	}

	updated := *booking
	updated.Status = status
	updated.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, &updated); err != nil {
		return domain.AdvanceBooking{}, err
	}

	return updated, nil
}
