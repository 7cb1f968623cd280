package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/booking/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, booking *domain.AdvanceBooking) error {
	return db.WithContext(ctx).Create(booking).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, booking *domain.AdvanceBooking) error {
	return db.WithContext(ctx).Model(&domain.AdvanceBooking{}).
		Where("id = ?", booking.ID).
		Select("*").Omit("id", "created_at").
		Updates(booking).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.AdvanceBooking, error) {
	var booking domain.AdvanceBooking
	err := db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]*domain.AdvanceBooking, error) {
	var bookings []*domain.AdvanceBooking
	err := db.WithContext(ctx).
		Model(&domain.AdvanceBooking{}).
		Order("created_at desc, id desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
