package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, admin *Admin) error
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*Admin, error)
}
