package pdf

import (
	"context"
	"io"
)

type Provider interface {
	GenerateMonthlyBill(ctx context.Context, data BillData) (io.Reader, error)
}

type BillData struct {
	BusinessName string
	CustomerName string
	RoomNumber   string
	Period       string
	GeneratedAt  string

	Items []BillItem

	Subtotal       string
	DeliveryCharge string
	Total          string
}

// BillItem is one aggregated product line across the whole month.
type BillItem struct {
	ProductName string
	Quantity    string
	Amount      string
}
