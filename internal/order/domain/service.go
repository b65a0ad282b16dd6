package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// GetDefaultOrder returns the customer's baseline. An empty product
	// list is a valid state.
	GetDefaultOrder(ctx context.Context, customerID string) (*DefaultOrderResponse, error)
	// SetDefaultOrder replaces the baseline wholesale and records the
	// customer's alternating flag.
	SetDefaultOrder(ctx context.Context, req SetDefaultOrderRequest) (*DefaultOrderResponse, error)

	Modify(ctx context.Context, req ModifyRequest) (*ModificationResponse, error)
	ModifyAlternating(ctx context.Context, req ModifyAlternatingRequest) (*ModificationResponse, error)
	Pause(ctx context.Context, req PauseRequest) (*ModificationResponse, error)
	// Resume reinstates deliveries inside the range by superseding any
	// pause with a record carrying the customer's current baseline.
	Resume(ctx context.Context, req PauseRequest) (*ModificationResponse, error)
	ClearEndedBefore(ctx context.Context, date string) (int64, error)

	// Resolve answers what the customer receives on the given date.
	Resolve(ctx context.Context, customerID int64, date time.Time) ([]ResolvedItem, error)
	// MonthlyOrders resolves every day of a month.
	MonthlyOrders(ctx context.Context, req MonthlyOrdersRequest) (*MonthlyOrdersResponse, error)
}

type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	DayType   string  `json:"day_type"`
}

type SetDefaultOrderRequest struct {
	CustomerID         string             `json:"-"`
	IsAlternatingOrder bool               `json:"is_alternating_order"`
	Products           []OrderItemRequest `json:"products"`
}

type ModifyRequest struct {
	UserID    string             `json:"user_id"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Products  []OrderItemRequest `json:"products"`
}

type ModifyAlternatingRequest struct {
	UserID    string             `json:"user_id"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Orders    []OrderItemRequest `json:"orders"`
}

type PauseRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type MonthlyOrdersRequest struct {
	CustomerID string
	Month      int
	Year       int
}

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	DayType   string  `json:"day_type,omitempty"`
}

type DefaultOrderResponse struct {
	CustomerID         string              `json:"customer_id"`
	IsAlternatingOrder bool                `json:"is_alternating_order"`
	Products           []OrderItemResponse `json:"products"`
}

type ModificationResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Paused    bool                `json:"paused"`
	Products  []OrderItemResponse `json:"products"`
}

type DayOrdersResponse struct {
	Date     string              `json:"date"`
	Products []OrderItemResponse `json:"products"`
}

type MonthlyOrdersResponse struct {
	CustomerID string              `json:"customer_id"`
	Month      int                 `json:"month"`
	Year       int                 `json:"year"`
	Days       []DayOrdersResponse `json:"days"`
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidDate      = errors.New("invalid_date")
	ErrInvalidRange     = errors.New("invalid_date_range")
	ErrInvalidQuantity  = errors.New("invalid_quantity")
	ErrInvalidDayType   = errors.New("invalid_day_type")
	ErrDuplicateProduct = errors.New("duplicate_product")
	ErrInvalidMonth     = errors.New("invalid_month")
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrProductNotFound  = errors.New("product_not_found")
)
