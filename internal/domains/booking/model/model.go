package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldReference     = "reference"
	FieldGuestID       = "guest_id"
	FieldGuestName     = "guest_name"
	FieldGuestEmail    = "guest_email"
	FieldHotelID       = "hotel_id"
	FieldHotelName     = "hotel_name"
	FieldRoomID        = "room_id"
	FieldRoomType      = "room_type"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldAdults        = "adults"
	FieldChildren      = "children"
	FieldRoomRate      = "room_rate"
	FieldNights        = "nights"
	FieldTaxes         = "taxes"
	FieldFees          = "fees"
	FieldDiscount      = "discount"
	FieldTotal         = "total"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
)

const (
	StatusUpcoming  = "upcoming"
	StatusCurrent   = "current"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusPending       = "pending"
	PaymentStatusCompleted     = "completed"
	PaymentStatusRefunded      = "refunded"
	PaymentStatusPartialRefund = "partial_refund"
)

type Booking struct {
	ID            string    `db:"id"`
	Reference     string    `db:"reference"`
	GuestID       string    `db:"guest_id"`
	GuestName     string    `db:"guest_name"`
	GuestEmail    string    `db:"guest_email"`
	HotelID       string    `db:"hotel_id"`
	HotelName     string    `db:"hotel_name"`
	RoomID        string    `db:"room_id"`
	RoomType      string    `db:"room_type"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Adults        int       `db:"adults"`
	Children      int       `db:"children"`
	RoomRate      float64   `db:"room_rate"`
	Nights        int       `db:"nights"`
	Taxes         float64   `db:"taxes"`
	Fees          float64   `db:"fees"`
	Discount      float64   `db:"discount"`
	Total         float64   `db:"total"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	model.Metadata
}

// Total pricing identity: room_rate*nights + taxes + fees - discount.
func (b *Booking) ComputeTotal() float64 {
	return b.RoomRate*float64(b.Nights) + b.Taxes + b.Fees - b.Discount
}
