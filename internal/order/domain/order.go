package domain

import "time"

// Day parity buckets for alternating orders. The empty string marks a
// flat entry that applies every day.
const (
	DayTypeAll  = ""
	DayTypeOdd  = "ODD"
	DayTypeEven = "EVEN"
)

// DefaultOrderItem is one line of a customer's baseline recurring order.
type DefaultOrderItem struct {
	ID         int64   `json:"id" gorm:"primaryKey"`
	CustomerID int64   `json:"customer_id" gorm:"not null;uniqueIndex:uq_default_order_item,priority:1"`
	ProductID  int64   `json:"product_id" gorm:"not null;uniqueIndex:uq_default_order_item,priority:2"`
	DayType    string  `json:"day_type" gorm:"type:text;not null;default:'';uniqueIndex:uq_default_order_item,priority:3"`
	Quantity   float64 `json:"quantity" gorm:"not null"`
}

func (DefaultOrderItem) TableName() string { return "default_order_items" }

// Modification is one ledger record overriding a customer's order for
// an inclusive date range. A record with Paused set carries no items
// and resolves every covered day to an empty order.
type Modification struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CustomerID int64     `json:"customer_id" gorm:"not null;index:idx_order_modifications_customer_range,priority:1"`
	StartDate  time.Time `json:"start_date" gorm:"type:date;not null;index:idx_order_modifications_customer_range,priority:2"`
	EndDate    time.Time `json:"end_date" gorm:"type:date;not null;index:idx_order_modifications_customer_range,priority:3"`
	Paused     bool      `json:"paused" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	Items []ModificationItem `json:"items" gorm:"foreignKey:ModificationID"`
}

func (Modification) TableName() string { return "order_modifications" }

type ModificationItem struct {
	ID             int64   `json:"id" gorm:"primaryKey"`
	ModificationID int64   `json:"modification_id" gorm:"not null;index"`
	ProductID      int64   `json:"product_id" gorm:"not null"`
	DayType        string  `json:"day_type" gorm:"type:text;not null;default:''"`
	Quantity       float64 `json:"quantity" gorm:"not null"`
}

func (ModificationItem) TableName() string { return "order_modification_items" }

// ResolvedItem is one line of the order a customer actually receives on
// a particular date. Product identity and quantity are carried verbatim
// from the winning source.
type ResolvedItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// DayParity maps a calendar date to its alternating bucket: odd
// day-of-month picks ODD, even picks EVEN.
func DayParity(date time.Time) string {
	if date.Day()%2 == 1 {
		return DayTypeOdd
	}
	return DayTypeEven
}
