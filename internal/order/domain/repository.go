package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	FindDefaultItems(ctx context.Context, db *gorm.DB, customerID int64) ([]DefaultOrderItem, error)
	// ReplaceDefaultItems swaps the customer's baseline wholesale.
	ReplaceDefaultItems(ctx context.Context, db *gorm.DB, customerID int64, items []DefaultOrderItem) error

	CreateModification(ctx context.Context, db *gorm.DB, mod *Modification) error
	// FindWinningModification returns the most recently created record
	// covering the date, or nil when none covers it.
	FindWinningModification(ctx context.Context, db *gorm.DB, customerID int64, date time.Time) (*Modification, error)
	// FindModificationsInRange returns every record whose range touches
	// [from, to], newest first, with items preloaded.
	FindModificationsInRange(ctx context.Context, db *gorm.DB, customerID int64, from, to time.Time) ([]Modification, error)
	// DeleteEndedBefore purges records whose end_date precedes the date
	// and reports how many were removed.
	DeleteEndedBefore(ctx context.Context, db *gorm.DB, date time.Time) (int64, error)
}
