package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/layaway/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertPlan(ctx context.Context, db *gorm.DB, plan *domain.Plan) error {
	return db.WithContext(ctx).Create(plan).Error
}

func (r *repo) UpdatePlan(ctx context.Context, db *gorm.DB, plan *domain.Plan) error {
	return db.WithContext(ctx).Model(&domain.Plan{}).
		Where("id = ?", plan.ID).
		Select("*").Omit("id", "created_at").
		Updates(plan).Error
}

func (r *repo) FindPlanByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Plan, error) {
	var plan domain.Plan
	err := db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *repo) ListAllPlans(ctx context.Context, db *gorm.DB) ([]*domain.Plan, error) {
	var plans []*domain.Plan
	err := db.WithContext(ctx).
		Model(&domain.Plan{}).
		Order("created_at desc, id desc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *repo) InsertTransaction(ctx context.Context, db *gorm.DB, txn *domain.Transaction) error {
	return db.WithContext(ctx).Create(txn).Error
}

func (r *repo) ListTransactions(ctx context.Context, db *gorm.DB, planID snowflake.ID) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("paid_at asc, id asc").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
