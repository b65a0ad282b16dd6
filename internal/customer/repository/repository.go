package repository

import (
	"context"

	"github.com/praneeth8555/dairyadmin/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, apartment_id, name, room_number, phone_number, email,
		        priority_order, is_alternating_order, created_at, updated_at
		 FROM customers WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) FindByApartment(ctx context.Context, db *gorm.DB, apartmentID int64) ([]domain.Customer, error) {
	var items []domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, apartment_id, name, room_number, phone_number, email,
		        priority_order, is_alternating_order, created_at, updated_at
		 FROM customers WHERE apartment_id = ?
		 ORDER BY priority_order ASC, id ASC`,
		apartmentID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Customer, error) {
	var items []domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, apartment_id, name, room_number, phone_number, email,
		        priority_order, is_alternating_order, created_at, updated_at
		 FROM customers ORDER BY apartment_id ASC, priority_order ASC, id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	if customer == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE customers
		 SET apartment_id = ?, name = ?, room_number = ?, phone_number = ?, email = ?,
		     priority_order = ?, is_alternating_order = ?, updated_at = ?
		 WHERE id = ?`,
		customer.ApartmentID,
		customer.Name,
		customer.RoomNumber,
		customer.PhoneNumber,
		customer.Email,
		customer.PriorityOrder,
		customer.IsAlternatingOrder,
		customer.UpdatedAt,
		customer.ID,
	).Error
}

func (r *repo) UpdatePriority(ctx context.Context, db *gorm.DB, id int64, priority int) error {
	return db.WithContext(ctx).Exec(
		`UPDATE customers SET priority_order = ? WHERE id = ?`,
		priority,
		id,
	).Error
}

func (r *repo) MaxPriority(ctx context.Context, db *gorm.DB, apartmentID int64) (int, error) {
	var max int
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(priority_order), 0) FROM customers WHERE apartment_id = ?`,
		apartmentID,
	).Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM customers WHERE id = ?`, id).Error
}
