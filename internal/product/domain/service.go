package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	BulkCreate(ctx context.Context, reqs []CreateRequest) ([]Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error

	PriceHistory(ctx context.Context, id string) ([]PriceHistoryResponse, error)
	// PriceOn resolves the unit price of a product as it stood on the
	// given date. The lookup never fails on missing data: it falls back
	// through price history to the current price and finally to zero.
	PriceOn(ctx context.Context, productID int64, on time.Time) (float64, error)
}

type CreateRequest struct {
	ProductName  string  `json:"product_name"`
	Unit         string  `json:"unit"`
	CurrentPrice float64 `json:"current_price"`
	Acronym      string  `json:"acronym"`
	ImageURL     string  `json:"image_url"`
}

type UpdateRequest struct {
	ID            string   `json:"-"`
	ProductName   *string  `json:"product_name"`
	Unit          *string  `json:"unit"`
	CurrentPrice  *float64 `json:"current_price"`
	Acronym       *string  `json:"acronym"`
	ImageURL      *string  `json:"image_url"`
	EffectiveFrom *string  `json:"effective_from"`
}

type Response struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"product_name"`
	Unit         string    `json:"unit"`
	CurrentPrice float64   `json:"current_price"`
	Acronym      string    `json:"acronym"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PriceHistoryResponse struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"product_id"`
	OldPrice      float64 `json:"old_price"`
	NewPrice      float64 `json:"new_price"`
	EffectiveFrom string  `json:"effective_from"`
}

var (
	ErrInvalidName  = errors.New("invalid_product_name")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidDate  = errors.New("invalid_date")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
