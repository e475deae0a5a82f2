package dto

import (
	"time"

	"lodge/internal/domains/cart/model"
)

type AddCartItemRequest struct {
	HotelID  string `json:"hotel_id"  validate:"required,uuid"`
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required,stayrange=CheckIn"`
	Adults   int    `json:"adults"    validate:"required,min=1"`
	Children int    `json:"children"  validate:"min=0"`
}

type UpdateCartItemRequest struct {
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"  validate:"omitempty,stayrange=CheckIn"`
	Adults   *int    `json:"adults,omitempty"     validate:"omitempty,min=1"`
	Children *int    `json:"children,omitempty"   validate:"omitempty,min=0"`
}

type SetCartOpenRequest struct {
	Open bool `json:"open"`
}

type CartResponse struct {
	Items       []model.CartItem `json:"items"`
	ItemCount   int              `json:"item_count"`
	TotalAmount float64          `json:"total_amount"`
	IsOpen      bool             `json:"is_open"`
}

type CheckoutResponse struct {
	BookingIDs []string `json:"booking_ids"`
	References []string `json:"references"`
	Total      float64  `json:"total"`
}

// BookingCreatedEvent is published to the bookings topic after checkout
// commits.
type BookingCreatedEvent struct {
	BookingID string    `json:"booking_id"`
	Reference string    `json:"reference"`
	GuestID   string    `json:"guest_id"`
	HotelID   string    `json:"hotel_id"`
	RoomID    string    `json:"room_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
