package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	BulkCreate(ctx context.Context, reqs []CreateRequest) ([]Response, error)
	ListByApartment(ctx context.Context, apartmentID string) ([]Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	// UpdatePriorities rewrites delivery ordering inside one apartment.
	// Pairs not mentioned in the request keep their stored priority.
	UpdatePriorities(ctx context.Context, req UpdatePrioritiesRequest) error
}

type CreateRequest struct {
	ApartmentID        string `json:"apartment_id"`
	Name               string `json:"name"`
	RoomNumber         string `json:"room_number"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
	IsAlternatingOrder bool   `json:"is_alternating_order"`
}

type UpdateRequest struct {
	ID                 string  `json:"-"`
	ApartmentID        *string `json:"apartment_id"`
	Name               *string `json:"name"`
	RoomNumber         *string `json:"room_number"`
	PhoneNumber        *string `json:"phone_number"`
	Email              *string `json:"email"`
	IsAlternatingOrder *bool   `json:"is_alternating_order"`
}

type PriorityAssignment struct {
	UserID        string `json:"user_id"`
	PriorityOrder int    `json:"priority_order"`
}

type UpdatePrioritiesRequest struct {
	ApartmentID string `json:"apartment_id"`
	// Customers carries explicit customer/priority pairs.
	Customers []PriorityAssignment `json:"customers"`
	// OrderedCustomerIDs is an alternative form: the full delivery
	// sequence top to bottom, renumbered 1..n server side.
	OrderedCustomerIDs []string `json:"ordered_customer_ids"`
}

type Response struct {
	ID                 string    `json:"id"`
	ApartmentID        string    `json:"apartment_id"`
	Name               string    `json:"name"`
	RoomNumber         string    `json:"room_number"`
	PhoneNumber        string    `json:"phone_number"`
	Email              string    `json:"email"`
	PriorityOrder      int       `json:"priority_order"`
	IsAlternatingOrder bool      `json:"is_alternating_order"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

var (
	ErrInvalidName      = errors.New("invalid_customer_name")
	ErrInvalidApartment = errors.New("invalid_apartment")
	ErrInvalidID        = errors.New("invalid_id")
	ErrEmptyPriorities  = errors.New("empty_priorities")
	ErrNotFound         = errors.New("not_found")
)
