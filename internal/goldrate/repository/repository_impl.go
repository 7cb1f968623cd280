package repository

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/aurum/internal/goldrate/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, rate *domain.GoldRate) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("effective_date = ?", rate.EffectiveDate).
			Delete(&domain.GoldRate{}).Error; err != nil {
			return err
		}
		return tx.Create(rate).Error
	})
}

func (r *repo) Latest(ctx context.Context, db *gorm.DB) (*domain.GoldRate, error) {
	var rate domain.GoldRate
	err := db.WithContext(ctx).Order("effective_date desc").First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repo) FindByDate(ctx context.Context, db *gorm.DB, date time.Time) (*domain.GoldRate, error) {
	var rate domain.GoldRate
	err := db.WithContext(ctx).Where("effective_date = ?", date).First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]*domain.GoldRate, error) {
	var rates []*domain.GoldRate
	err := db.WithContext(ctx).
		Model(&domain.GoldRate{}).
		Order("effective_date desc").
		Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}
