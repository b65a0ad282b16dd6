package domain

import (
	"context"
	"errors"
)

type Service interface {
	// MonthlyBill walks every day of the month, prices the resolved
	// order with the rate effective on that day, and adds the flat
	// delivery charge.
	MonthlyBill(ctx context.Context, req MonthlyBillRequest) (*MonthlyBillResponse, error)
	// MonthlyBillPDF renders the same aggregation as a printable
	// statement.
	MonthlyBillPDF(ctx context.Context, req MonthlyBillRequest) ([]byte, error)
}

type MonthlyBillRequest struct {
	CustomerID string
	Month      int
	Year       int
}

type BillLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type DayBill struct {
	Date    string     `json:"date"`
	Items   []BillLine `json:"items"`
	DayBill float64    `json:"daybill"`
}

type MonthlyBillResponse struct {
	CustomerID     string    `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	ApartmentID    string    `json:"apartment_id"`
	RoomNumber     string    `json:"room_number"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	Days           []DayBill `json:"days"`
	Subtotal       float64   `json:"subtotal"`
	DeliveryCharge float64   `json:"delivery_charge"`
	TotalBill      float64   `json:"total_bill"`
}

var (
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidMonth = errors.New("invalid_month")
	ErrNotFound     = errors.New("not_found")
	// ErrBillInFlight reports that another aggregation for the same
	// customer and month is already running.
	ErrBillInFlight = errors.New("bill_in_flight")
)
