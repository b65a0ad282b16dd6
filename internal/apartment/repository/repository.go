package repository

import (
	"context"

	"github.com/praneeth8555/dairyadmin/internal/apartment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, apartment *domain.Apartment) error {
	return db.WithContext(ctx).Create(apartment).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Apartment, error) {
	var a domain.Apartment
	err := db.WithContext(ctx).Raw(
		`SELECT id, apartment_name, created_at, updated_at FROM apartments WHERE id = ?`,
		id,
	).Scan(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Apartment, error) {
	var items []domain.Apartment
	err := db.WithContext(ctx).Raw(
		`SELECT id, apartment_name, created_at, updated_at FROM apartments ORDER BY apartment_name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, apartment *domain.Apartment) error {
	if apartment == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE apartments SET apartment_name = ?, updated_at = ? WHERE id = ?`,
		apartment.ApartmentName,
		apartment.UpdatedAt,
		apartment.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM apartments WHERE id = ?`, id).Error
}
