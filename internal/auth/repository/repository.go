package repository

import (
	"context"

	"github.com/praneeth8555/dairyadmin/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, admin *domain.Admin) error {
	return db.WithContext(ctx).Create(admin).Error
}

func (r *repo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.Admin, error) {
	var a domain.Admin
	err := db.WithContext(ctx).Raw(
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`,
		username,
	).Scan(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}
