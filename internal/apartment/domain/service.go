package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	ApartmentName string `json:"apartment_name"`
}

type UpdateRequest struct {
	ID            string  `json:"-"`
	ApartmentName *string `json:"apartment_name"`
}

type Response struct {
	ID            string    `json:"id"`
	ApartmentName string    `json:"apartment_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var (
	ErrInvalidName = errors.New("invalid_apartment_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
