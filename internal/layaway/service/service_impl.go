package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/layaway/domain"
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
		log:   p.Log.Named("layaway.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePlanRequest) (domain.Plan, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.Plan{}, domain.ErrInvalidStaff
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.Plan{}, domain.ErrInvalidCustomer
	}
	if req.TotalAmount <= 0 {
		return domain.Plan{}, domain.ErrInvalidAmount
	}

	var billID snowflake.ID
	if trimmed := strings.TrimSpace(req.BillID); trimmed != "" {
		billID, err = snowflake.ParseString(trimmed)
		if err != nil {
			return domain.Plan{}, domain.ErrInvalidID
		}
	}

	now := s.clock.Now()
	plan := domain.Plan{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		BillID:      billID,
		TotalAmount: req.TotalAmount,
		PaidAmount:  0,
		Status:      domain.PlanStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.InsertPlan(ctx, s.db, &plan); err != nil {
		return domain.Plan{}, err
	}

	s.log.Info("layaway plan opened",
		zap.String("customer_id", customerID.String()),
		zap.Float64("total_amount", plan.TotalAmount),
	)
	return plan, nil
}

func (s *Service) RecordPayment(ctx context.Context, req domain.RecordPaymentRequest) (domain.PlanDetail, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.PlanDetail{}, domain.ErrInvalidStaff
	}

	planID, err := snowflake.ParseString(strings.TrimSpace(req.PlanID))
	if err != nil || planID == 0 {
		return domain.PlanDetail{}, domain.ErrInvalidID
	}
	if req.Amount <= 0 {
		return domain.PlanDetail{}, domain.ErrInvalidAmount
	}
	if strings.TrimSpace(req.Method) == "" {
		return domain.PlanDetail{}, domain.ErrInvalidMethod
	}

	var updated domain.Plan
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := s.repo.FindPlanByID(ctx, tx, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.ErrNotFound
		}
		if plan.Status != domain.PlanStatusOpen {
			return domain.ErrPlanClosed
		}

		now := s.clock.Now()
		txn := domain.Transaction{
			ID:        s.genID.Generate(),
			PlanID:    planID,
			Amount:    req.Amount,
			Method:    strings.TrimSpace(req.Method),
			Reference: strings.TrimSpace(req.Reference),
			PaidAt:    now,
		}
		if err := s.repo.InsertTransaction(ctx, tx, &txn); err != nil {
			return err
		}

		updated = *plan
		updated.PaidAmount = plan.PaidAmount + req.Amount
		if updated.PaidAmount >= updated.TotalAmount {
			updated.Status = domain.PlanStatusCompleted
		}
		updated.UpdatedAt = now

		return s.repo.UpdatePlan(ctx, tx, &updated)
	})
	if err != nil {
		return domain.PlanDetail{}, err
	}

	txns, err := s.repo.ListTransactions(ctx, s.db, planID)
	if err != nil {
		return domain.PlanDetail{}, err
	}

	s.log.Info("layaway installment recorded",
		zap.String("plan_id", planID.String()),
		zap.Float64("amount", req.Amount),
		zap.String("status", string(updated.Status)),
	)
	return domain.PlanDetail{Plan: updated, Transactions: txns}, nil
}

func (s *Service) List(ctx context.Context, req domain.ListPlanRequest) (domain.ListPlanResponse, error) {
	plans, err := s.repo.ListAllPlans(ctx, s.db)
	if err != nil {
		return domain.ListPlanResponse{}, err
	}

	filtered := listing.Filter(plans,
		listing.Equals(func(p *domain.Plan) string { return p.CustomerID.String() }, req.CustomerID),
		listing.Equals(func(p *domain.Plan) string { return string(p.Status) }, req.Status),
		listing.DateRange(func(p *domain.Plan) time.Time { return p.CreatedAt }, req.DateFrom, req.DateTo),
	)

	return domain.ListPlanResponse{
		Page: listing.Paginate(filtered, req.Page, listing.DefaultPageSize),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetPlanRequest) (domain.PlanDetail, error) {
	planID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || planID == 0 {
		return domain.PlanDetail{}, domain.ErrInvalidID
	}

	plan, err := s.repo.FindPlanByID(ctx, s.db, planID)
	if err != nil {
		return domain.PlanDetail{}, err
	}
	if plan == nil {
		return domain.PlanDetail{}, domain.ErrNotFound
	}

	txns, err := s.repo.ListTransactions(ctx, s.db, planID)
	if err != nil {
		return domain.PlanDetail{}, err
	}

	return domain.PlanDetail{Plan: *plan, Transactions: txns}, nil
}

func (s *Service) Cancel(ctx context.Context, id string) (domain.Plan, error) {
	if _, ok := staffctx.StaffIDFromContext(ctx); !ok {
		return domain.Plan{}, domain.ErrInvalidStaff
	}

	planID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || planID == 0 {
		return domain.Plan{}, domain.ErrInvalidID
	}

	plan, err := s.repo.FindPlanByID(ctx, s.db, planID)
	if err != nil {
		return domain.Plan{}, err
	}
	if plan == nil {
		return domain.Plan{}, domain.ErrNotFound
	}
	if plan.Status != domain.PlanStatusOpen {
		return domain.Plan{}, domain.ErrPlanClosed
	}

	updated := *plan
	updated.Status = domain.PlanStatusCancelled
	updated.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdatePlan(ctx, s.db, &updated); err != nil {
		return domain.Plan{}, err
	}

	return updated, nil
}
