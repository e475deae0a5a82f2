package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldName          = "name"
	FieldType          = "type"
	FieldDescription   = "description"
	FieldMaxGuests     = "max_guests"
	FieldPricePerNight = "price_per_night"
	FieldImage         = "image"
	FieldAvailable     = "available"
	FieldActive        = "active"
)

type Room struct {
	ID            string  `db:"id"`
	HotelID       string  `db:"hotel_id"`
	Name          string  `db:"name"`
	Type          string  `db:"type"`
	Description   string  `db:"description"`
	MaxGuests     int     `db:"max_guests"`
	PricePerNight float64 `db:"price_per_night"`
	Image         string  `db:"image"`
	Available     bool    `db:"available"`
	Active        bool    `db:"active"`
	model.Metadata
}
