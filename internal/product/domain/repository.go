package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error

	CreatePriceHistory(ctx context.Context, db *gorm.DB, entry *PriceHistory) error
	FindPriceHistory(ctx context.Context, db *gorm.DB, productID int64) ([]PriceHistory, error)
	// FindPriceOn returns the most recent history entry effective on or
	// before the given date, or nil when none exists.
	FindPriceOn(ctx context.Context, db *gorm.DB, productID int64, on time.Time) (*PriceHistory, error)
	// FindEarliestHistory returns the oldest history entry for the
	// product, or nil when the product has no history.
	FindEarliestHistory(ctx context.Context, db *gorm.DB, productID int64) (*PriceHistory, error)
}
