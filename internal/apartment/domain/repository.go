package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, apartment *Apartment) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Apartment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Apartment, error)
	Update(ctx context.Context, db *gorm.DB, apartment *Apartment) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
