package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/customer/domain"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.Customer{}, domain.ErrInvalidStaff
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return domain.Customer{}, domain.ErrInvalidPhone
	}

	now := s.clock.Now()
	customer := domain.Customer{
		ID:        s.genID.Generate(),
		Name:      name,
		Phone:     phone,
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		City:      strings.TrimSpace(req.City),
		GSTIN:     strings.TrimSpace(req.GSTIN),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.Customer{}, domain.ErrInvalidStaff
	}

	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if existing == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return domain.Customer{}, domain.ErrInvalidPhone
	}

	customer := *existing
	customer.Name = name
	customer.Phone = phone
	customer.Email = strings.TrimSpace(req.Email)
	customer.Address = strings.TrimSpace(req.Address)
	customer.City = strings.TrimSpace(req.City)
	customer.GSTIN = strings.TrimSpace(req.GSTIN)
	customer.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	customers, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	filtered := listing.Filter(customers,
		listing.Substring(req.Search,
			func(c *domain.Customer) string { return c.Name },
			func(c *domain.Customer) string { return c.Phone },
		),
		listing.Equals(func(c *domain.Customer) string { return c.City }, req.City),
	)

	return domain.ListCustomerResponse{
		Page: listing.Paginate(filtered, req.Page, listing.DefaultPageSize),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCustomerRequest) (domain.Customer, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}

	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *customer, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.ErrInvalidStaff
	}

	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, parsed)
}
