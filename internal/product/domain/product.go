package domain

import "time"

type Product struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	ProductName  string    `json:"product_name" gorm:"type:text;not null"`
	Unit         string    `json:"unit" gorm:"type:text;not null;default:''"`
	CurrentPrice float64   `json:"current_price" gorm:"not null;default:0"`
	Acronym      string    `json:"acronym" gorm:"type:text;not null;default:''"`
	ImageURL     string    `json:"image_url" gorm:"column:image_url;type:text;not null;default:''"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// PriceHistory is append only. A row is written whenever a product's
// price changes, carrying the price before and after the change.
type PriceHistory struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	ProductID     int64     `json:"product_id" gorm:"not null;index:idx_price_history_product,priority:1"`
	OldPrice      float64   `json:"old_price" gorm:"not null"`
	NewPrice      float64   `json:"new_price" gorm:"not null"`
	EffectiveFrom time.Time `json:"effective_from" gorm:"type:date;not null;index:idx_price_history_product,priority:2"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PriceHistory) TableName() string { return "product_price_history" }
