package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"lodge/internal/domains/review/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateReviewRequest struct {
	BookingID         string   `json:"booking_id"         validate:"required,uuid"`
	RatingOverall     int      `json:"rating_overall"     validate:"required,rating"`
	RatingCleanliness int      `json:"rating_cleanliness" validate:"required,rating"`
	RatingService     int      `json:"rating_service"     validate:"required,rating"`
	RatingLocation    int      `json:"rating_location"    validate:"required,rating"`
	Comment           string   `json:"comment"            validate:"omitempty,max=4000"`
	Photos            []string `json:"photos"             validate:"omitempty,max=6,dive,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	Anonymous         bool     `json:"anonymous"`
}

func (r *CreateReviewRequest) ToModel(guestID, hotelID string, photoURLs []string) model.Review {
	return model.Review{
		ID:                uuid.NewString(),
		BookingID:         r.BookingID,
		GuestID:           guestID,
		HotelID:           hotelID,
		RatingOverall:     r.RatingOverall,
		RatingCleanliness: r.RatingCleanliness,
		RatingService:     r.RatingService,
		RatingLocation:    r.RatingLocation,
		Comment:           r.Comment,
		Photos:            pq.StringArray(photoURLs),
		Anonymous:         r.Anonymous,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}
}

type ReviewResponse struct {
	ID                string   `json:"id"`
	BookingID         string   `json:"booking_id"`
	GuestID           string   `json:"guest_id,omitempty"`
	HotelID           string   `json:"hotel_id"`
	RatingOverall     int      `json:"rating_overall"`
	RatingCleanliness int      `json:"rating_cleanliness"`
	RatingService     int      `json:"rating_service"`
	RatingLocation    int      `json:"rating_location"`
	Comment           string   `json:"comment,omitempty"`
	Photos            []string `json:"photos,omitempty"`
	Anonymous         bool     `json:"anonymous"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.HotelID = model.HotelID
	r.RatingOverall = model.RatingOverall
	r.RatingCleanliness = model.RatingCleanliness
	r.RatingService = model.RatingService
	r.RatingLocation = model.RatingLocation
	r.Comment = model.Comment
	r.Photos = model.Photos
	r.Anonymous = model.Anonymous

	// an anonymous review never exposes its author
	if !model.Anonymous {
		r.GuestID = model.GuestID
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

// ReviewCreatedEvent is published to the reviews topic once a review is
// stored.
type ReviewCreatedEvent struct {
	ReviewID      string    `json:"review_id"`
	BookingID     string    `json:"booking_id"`
	HotelID       string    `json:"hotel_id"`
	RatingOverall int       `json:"rating_overall"`
	CreatedAt     time.Time `json:"created_at"`
}
