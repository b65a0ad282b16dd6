package domain

import "time"

type Customer struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	ApartmentID        int64     `json:"apartment_id" gorm:"not null;index:idx_customers_apartment,priority:1"`
	Name               string    `json:"name" gorm:"type:text;not null"`
	RoomNumber         string    `json:"room_number" gorm:"type:text;not null;default:''"`
	PhoneNumber        string    `json:"phone_number" gorm:"type:text;not null;default:''"`
	Email              string    `json:"email" gorm:"type:text;not null;default:''"`
	PriorityOrder      int       `json:"priority_order" gorm:"not null;default:0;index:idx_customers_apartment,priority:2"`
	IsAlternatingOrder bool      `json:"is_alternating_order" gorm:"not null;default:false"`
	CreatedAt          time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Customer) TableName() string { return "customers" }
