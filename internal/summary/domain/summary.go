package domain

import (
	"context"
	"errors"
)

type Service interface {
	// RoomDaily reports what every customer of an apartment receives on
	// a date, grouped by room. Customers resolving to an empty order
	// are listed with NoOrders set, not omitted.
	RoomDaily(ctx context.Context, req DailyRequest) (*RoomDailyResponse, error)
	// TotalDaily sums quantity per product across the apartment.
	TotalDaily(ctx context.Context, req DailyRequest) (*TotalDailyResponse, error)
	// DailySales aggregates the whole business for one date, with a
	// per-apartment breakdown.
	DailySales(ctx context.Context, date string) (*DailySalesResponse, error)
	// ExportRoomDaily renders the room-wise summary as a spreadsheet.
	ExportRoomDaily(ctx context.Context, req DailyRequest) ([]byte, error)
}

type DailyRequest struct {
	ApartmentID string
	Date        string
}

type SummaryLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Acronym     string  `json:"acronym,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Quantity    float64 `json:"quantity"`
}

type CustomerDaySummary struct {
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	RoomNumber string        `json:"room_number"`
	NoOrders   bool          `json:"no_orders"`
	Orders     []SummaryLine `json:"orders"`
}

type RoomDailyResponse struct {
	ApartmentID string               `json:"apartment_id"`
	Date        string               `json:"date"`
	Customers   []CustomerDaySummary `json:"customers"`
}

type TotalDailyResponse struct {
	ApartmentID string        `json:"apartment_id"`
	Date        string        `json:"date"`
	Totals      []SummaryLine `json:"totals"`
}

// SalesLine carries the rate effective on the requested date next to
// the summed quantity, so the sales view doubles as a revenue report.
type SalesLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Acronym     string  `json:"acronym,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Revenue     float64 `json:"revenue"`
}

type ApartmentSales struct {
	ApartmentID   string      `json:"apartment_id"`
	ApartmentName string      `json:"apartment_name"`
	Products      []SalesLine `json:"products"`
	Revenue       float64     `json:"revenue"`
}

type DailySalesResponse struct {
	Date       string           `json:"date"`
	Totals     []SalesLine      `json:"totals"`
	Revenue    float64          `json:"revenue"`
	Apartments []ApartmentSales `json:"apartments"`
}

var (
	ErrInvalidID   = errors.New("invalid_id")
	ErrInvalidDate = errors.New("invalid_date")
	ErrNotFound    = errors.New("not_found")
)
