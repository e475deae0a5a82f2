package model

import "lodge/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldAddress     = "address"
	FieldStars       = "stars"
	FieldRating      = "rating"
	FieldImage       = "image"
	FieldActive      = "active"
)

type Hotel struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Location    string  `db:"location"`
	Address     string  `db:"address"`
	Stars       int     `db:"stars"`
	Rating      float64 `db:"rating"`
	Image       string  `db:"image"`
	Active      bool    `db:"active"`
	model.Metadata
}
