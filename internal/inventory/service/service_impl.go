package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/inventory/domain"
	"github.com/smallbiznis/aurum/internal/staffctx"
	"github.com/smallbiznis/aurum/pkg/db"
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
		log:   p.Log.Named("inventory.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func validateItem(req domain.CreateItemRequest) error {
	if strings.TrimSpace(req.Barcode) == "" {
		return domain.ErrInvalidBarcode
	}
	if strings.TrimSpace(req.Name) == "" {
		return domain.ErrInvalidName
	}
	if req.Weight <= 0 {
		return domain.ErrInvalidWeight
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.Item{}, domain.ErrInvalidStaff
	}
	if err := validateItem(req); err != nil {
		return domain.Item{}, err
	}

	now := s.clock.Now()
	item := domain.Item{
		ID:            s.genID.Generate(),
		Barcode:       strings.TrimSpace(req.Barcode),
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		Weight:        req.Weight,
		Purity:        strings.TrimSpace(req.Purity),
		MakingCharges: req.MakingCharges,
		HSNCode:       strings.TrimSpace(req.HSNCode),
		InStock:       true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Item{}, domain.ErrDuplicateBarcode
		}
		return domain.Item{}, err
	}

	return item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateItemRequest) (domain.Item, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.Item{}, domain.ErrInvalidStaff
	}

	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Item{}, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Item{}, err
	}
	if existing == nil {
		return domain.Item{}, domain.ErrNotFound
	}

	if err := validateItem(req.CreateItemRequest); err != nil {
		return domain.Item{}, err
	}

	item := *existing
	item.Barcode = strings.TrimSpace(req.Barcode)
	item.Name = strings.TrimSpace(req.Name)
	item.Category = strings.TrimSpace(req.Category)
	item.Weight = req.Weight
	item.Purity = strings.TrimSpace(req.Purity)
	item.MakingCharges = req.MakingCharges
	item.HSNCode = strings.TrimSpace(req.HSNCode)
	if req.InStock != nil {
		item.InStock = *req.InStock
	}
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, &item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Item{}, domain.ErrDuplicateBarcode
		}
		return domain.Item{}, err
	}

	return item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListItemRequest) (domain.ListItemResponse, error) {
	items, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return domain.ListItemResponse{}, err
	}

	preds := []listing.Predicate[*domain.Item]{
		listing.Substring(req.Search,
			func(i *domain.Item) string { return i.Name },
			func(i *domain.Item) string { return i.Barcode },
		),
		listing.Equals(func(i *domain.Item) string { return i.Category }, req.Category),
		listing.NumericRange(func(i *domain.Item) float64 { return i.Weight }, req.WeightMin, req.WeightMax),
	}
	if req.InStock != nil {
		want := *req.InStock
		preds = append(preds, func(i *domain.Item) bool { return i.InStock == want })
	}

	filtered := listing.Filter(items, preds...)

	return domain.ListItemResponse{
		Page: listing.Paginate(filtered, req.Page, listing.DefaultPageSize),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetItemRequest) (domain.Item, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Item{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) LookupBarcode(ctx context.Context, barcode string) (domain.BarcodeLookup, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return domain.BarcodeLookup{}, domain.ErrInvalidBarcode
	}

	item, err := s.repo.FindByBarcode(ctx, s.db, barcode)
	if err != nil {
		return domain.BarcodeLookup{}, err
	}
	if item == nil {
		// Scan miss: the till falls back to manual entry.
		return domain.BarcodeLookup{Found: false}, nil
	}

	return domain.BarcodeLookup{Found: true, Item: item}, nil
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
