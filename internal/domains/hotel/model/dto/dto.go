package dto

import (
	"lodge/internal/domains/hotel/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string  `json:"name"        validate:"required,max=150"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Location    string  `json:"location"    validate:"required,max=150"`
	Address     string  `json:"address"     validate:"omitempty,max=300"`
	Stars       int     `json:"stars"       validate:"required,min=1,max=5"`
	Image       string  `json:"image"       validate:"omitempty,url"`
	Active      *bool   `json:"active,omitempty"`
	Rating      float64 `json:"rating"      validate:"omitempty,gte=0,lte=5"`
}

func (r *CreateHotelRequest) ToModel(actor string) model.Hotel {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return model.Hotel{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Address:     r.Address,
		Stars:       r.Stars,
		Rating:      r.Rating,
		Image:       r.Image,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateHotelRequest struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    *string  `json:"location,omitempty"    validate:"omitempty,max=150"`
	Address     *string  `json:"address,omitempty"     validate:"omitempty,max=300"`
	Stars       *int     `json:"stars,omitempty"       validate:"omitempty,min=1,max=5"`
	Image       *string  `json:"image,omitempty"       validate:"omitempty,url"`
	Rating      *float64 `json:"rating,omitempty"      validate:"omitempty,gte=0,lte=5"`
	Active      *bool    `json:"active,omitempty"`
}

type HotelResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location"`
	Address     string  `json:"address,omitempty"`
	Stars       int     `json:"stars"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image,omitempty"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Address = model.Address
	r.Stars = model.Stars
	r.Rating = model.Rating
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
