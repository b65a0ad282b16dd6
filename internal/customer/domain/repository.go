package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Customer, error)
	FindByApartment(ctx context.Context, db *gorm.DB, apartmentID int64) ([]Customer, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Customer, error)
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	UpdatePriority(ctx context.Context, db *gorm.DB, id int64, priority int) error
	MaxPriority(ctx context.Context, db *gorm.DB, apartmentID int64) (int, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
