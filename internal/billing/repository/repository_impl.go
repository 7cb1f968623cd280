package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/billing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) SaveBill(ctx context.Context, db *gorm.DB, bill *domain.Bill, items []domain.BillItem, oldGold *domain.OldGoldExchange) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&domain.Bill{}).Where("id = ?", bill.ID).Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Model(&domain.Bill{}).Where("id = ?", bill.ID).
				Select("*").Omit("id", "created_at").Updates(bill).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(bill).Error; err != nil {
				return err
			}
		}

		// Replace-all item semantics: the edit screen re-submits the full set.
		if err := tx.Where("bill_id = ?", bill.ID).Delete(&domain.BillItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("bill_id = ?", bill.ID).Delete(&domain.OldGoldExchange{}).Error; err != nil {
			return err
		}
		if oldGold != nil && oldGold.TotalValue > 0 {
			if err := tx.Create(oldGold).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Bill, []domain.BillItem, *domain.OldGoldExchange, error) {
	var bill domain.Bill
	err := db.WithContext(ctx).Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil
		}
		return nil, nil, nil, err
	}

	var items []domain.BillItem
	if err := db.WithContext(ctx).Where("bill_id = ?", id).Order("id asc").Find(&items).Error; err != nil {
		return nil, nil, nil, err
	}

	var oldGold domain.OldGoldExchange
	err = db.WithContext(ctx).Where("bill_id = ?", id).First(&oldGold).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &bill, items, nil, nil
		}
		return nil, nil, nil, err
	}

	return &bill, items, &oldGold, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]*domain.Bill, error) {
	var bills []*domain.Bill
	err := db.WithContext(ctx).
		Model(&domain.Bill{}).
		Order("bill_date desc, id desc").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *repo) LatestBillNo(ctx context.Context, db *gorm.DB, prefix string) (string, error) {
	var billNo string
	err := db.WithContext(ctx).Raw(
		`SELECT bill_no FROM bills WHERE bill_no LIKE ? ORDER BY bill_no DESC LIMIT 1`,
		prefix,
	).Scan(&billNo).Error
	if err != nil {
		return "", err
	}
	return billNo, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status domain.BillStatus) error {
	return db.WithContext(ctx).Model(&domain.Bill{}).
		Where("id = ?", id).
		Update("bill_status", status).Error
}
