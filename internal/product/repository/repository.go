package repository

import (
	"context"
	"time"

	"github.com/praneeth8555/dairyadmin/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_name, unit, current_price, acronym, image_url, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_name, unit, current_price, acronym, image_url, created_at, updated_at
		 FROM products ORDER BY product_name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET product_name = ?, unit = ?, current_price = ?, acronym = ?, image_url = ?, updated_at = ?
		 WHERE id = ?`,
		product.ProductName,
		product.Unit,
		product.CurrentPrice,
		product.Acronym,
		product.ImageURL,
		product.UpdatedAt,
		product.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id).Error
}

func (r *repo) CreatePriceHistory(ctx context.Context, db *gorm.DB, entry *domain.PriceHistory) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repo) FindPriceHistory(ctx context.Context, db *gorm.DB, productID int64) ([]domain.PriceHistory, error) {
	var items []domain.PriceHistory
	err := db.WithContext(ctx).
		Model(&domain.PriceHistory{}).
		Where("product_id = ?", productID).
		Order("effective_from DESC").
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindPriceOn(ctx context.Context, db *gorm.DB, productID int64, on time.Time) (*domain.PriceHistory, error) {
	var items []domain.PriceHistory
	err := db.WithContext(ctx).
		Model(&domain.PriceHistory{}).
		Where("product_id = ? AND effective_from <= ?", productID, on).
		Order("effective_from DESC").
		Order("id DESC").
		Limit(1).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repo) FindEarliestHistory(ctx context.Context, db *gorm.DB, productID int64) (*domain.PriceHistory, error) {
	var items []domain.PriceHistory
	err := db.WithContext(ctx).
		Model(&domain.PriceHistory{}).
		Where("product_id = ?", productID).
		Order("effective_from ASC").
		Order("id ASC").
		Limit(1).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
