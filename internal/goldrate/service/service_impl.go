package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/goldrate/domain"
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
		log:   p.Log.Named("goldrate.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) SetToday(ctx context.Context, req domain.SetRateRequest) (domain.GoldRate, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.GoldRate{}, domain.ErrInvalidStaff
	}
	if req.RatePerGram <= 0 {
		return domain.GoldRate{}, domain.ErrInvalidRate
	}

	now := s.clock.Now().UTC()
	rate := domain.GoldRate{
		ID:            s.genID.Generate(),
		RatePerGram:   req.RatePerGram,
		EffectiveDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Upsert(ctx, s.db, &rate); err != nil {
		return domain.GoldRate{}, err
	}

	s.log.Info("gold rate posted",
		zap.Float64("rate_per_gram", rate.RatePerGram),
		zap.Time("effective_date", rate.EffectiveDate),
	)
	return rate, nil
}

func (s *Service) Today(ctx context.Context) (domain.GoldRate, error) {
	rate, err := s.repo.Latest(ctx, s.db)
	if err != nil {
		return domain.GoldRate{}, err
	}
	if rate == nil {
		return domain.GoldRate{}, domain.ErrNoRate
	}
	return *rate, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRateRequest) (domain.ListRateResponse, error) {
	rates, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return domain.ListRateResponse{}, err
	}

	filtered := listing.Filter(rates,
		listing.DateRange(func(r *domain.GoldRate) time.Time { return r.EffectiveDate }, req.DateFrom, req.DateTo),
	)

	return domain.ListRateResponse{
		Page: listing.Paginate(filtered, req.Page, listing.DefaultPageSize),
	}, nil
}
