package domain

import "time"

type Apartment struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	ApartmentName string    `json:"apartment_name" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Apartment) TableName() string { return "apartments" }
