package model

import (
	"lodge/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID                = "id"
	FieldBookingID         = "booking_id"
	FieldGuestID           = "guest_id"
	FieldHotelID           = "hotel_id"
	FieldRatingOverall     = "rating_overall"
	FieldRatingCleanliness = "rating_cleanliness"
	FieldRatingService     = "rating_service"
	FieldRatingLocation    = "rating_location"
	FieldComment           = "comment"
	FieldPhotos            = "photos"
	FieldAnonymous         = "anonymous"
)

type Review struct {
	ID                string         `db:"id"`
	BookingID         string         `db:"booking_id"`
	GuestID           string         `db:"guest_id"`
	HotelID           string         `db:"hotel_id"`
	RatingOverall     int            `db:"rating_overall"`
	RatingCleanliness int            `db:"rating_cleanliness"`
	RatingService     int            `db:"rating_service"`
	RatingLocation    int            `db:"rating_location"`
	Comment           string         `db:"comment"`
	Photos            pq.StringArray `db:"photos"`
	Anonymous         bool           `db:"anonymous"`
	model.Metadata
}
