package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID       string  `json:"hotel_id"        validate:"required,uuid"`
	Name          string  `json:"name"            validate:"required,max=150"`
	Type          string  `json:"type"            validate:"required,max=80"`
	Description   string  `json:"description"     validate:"omitempty,max=2000"`
	MaxGuests     int     `json:"max_guests"      validate:"required,min=1,max=12"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gte=0"`
	Image         string  `json:"image"           validate:"omitempty,url"`
	Available     *bool   `json:"available,omitempty"`
}

func (r *CreateRoomRequest) ToModel(actor string) model.Room {
	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return model.Room{
		ID:            uuid.NewString(),
		HotelID:       r.HotelID,
		Name:          r.Name,
		Type:          r.Type,
		Description:   r.Description,
		MaxGuests:     r.MaxGuests,
		PricePerNight: r.PricePerNight,
		Image:         r.Image,
		Available:     available,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateRoomRequest struct {
	Name          *string  `json:"name,omitempty"            validate:"omitempty,max=150"`
	Type          *string  `json:"type,omitempty"            validate:"omitempty,max=80"`
	Description   *string  `json:"description,omitempty"     validate:"omitempty,max=2000"`
	MaxGuests     *int     `json:"max_guests,omitempty"      validate:"omitempty,min=1,max=12"`
	PricePerNight *float64 `json:"price_per_night,omitempty" validate:"omitempty,gte=0"`
	Image         *string  `json:"image,omitempty"           validate:"omitempty,url"`
	Available     *bool    `json:"available,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotel_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Description   string  `json:"description,omitempty"`
	MaxGuests     int     `json:"max_guests"`
	PricePerNight float64 `json:"price_per_night"`
	Image         string  `json:"image,omitempty"`
	Available     bool    `json:"available"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Type = model.Type
	r.Description = model.Description
	r.MaxGuests = model.MaxGuests
	r.PricePerNight = model.PricePerNight
	r.Image = model.Image
	r.Available = model.Available
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
