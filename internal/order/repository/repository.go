package repository

import (
	"context"
	"time"

	"github.com/praneeth8555/dairyadmin/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindDefaultItems(ctx context.Context, db *gorm.DB, customerID int64) ([]domain.DefaultOrderItem, error) {
	var items []domain.DefaultOrderItem
	err := db.WithContext(ctx).
		Model(&domain.DefaultOrderItem{}).
		Where("customer_id = ?", customerID).
		Order("day_type ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ReplaceDefaultItems(ctx context.Context, db *gorm.DB, customerID int64, items []domain.DefaultOrderItem) error {
	if err := db.WithContext(ctx).
		Exec(`DELETE FROM default_order_items WHERE customer_id = ?`, customerID).Error; err != nil {
		return err
	}
	for i := range items {
		if err := db.WithContext(ctx).Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) CreateModification(ctx context.Context, db *gorm.DB, mod *domain.Modification) error {
	return db.WithContext(ctx).Create(mod).Error
}

func (r *repo) FindWinningModification(ctx context.Context, db *gorm.DB, customerID int64, date time.Time) (*domain.Modification, error) {
	var mods []domain.Modification
	err := db.WithContext(ctx).
		Model(&domain.Modification{}).
		Preload("Items").
		Where("customer_id = ? AND start_date <= ? AND end_date >= ?", customerID, date, date).
		Order("created_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&mods).Error
	if err != nil {
		return nil, err
	}
	if len(mods) == 0 {
		return nil, nil
	}
	return &mods[0], nil
}

func (r *repo) FindModificationsInRange(ctx context.Context, db *gorm.DB, customerID int64, from, to time.Time) ([]domain.Modification, error) {
	var mods []domain.Modification
	err := db.WithContext(ctx).
		Model(&domain.Modification{}).
		Preload("Items").
		Where("customer_id = ? AND start_date <= ? AND end_date >= ?", customerID, to, from).
		Order("created_at DESC").
		Order("id DESC").
		Find(&mods).Error
	if err != nil {
		return nil, err
	}
	return mods, nil
}

func (r *repo) DeleteEndedBefore(ctx context.Context, db *gorm.DB, date time.Time) (int64, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM order_modifications WHERE end_date < ?`, date)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
