package dto

import (
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/timeline"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
)

type BookingResponse struct {
	ID            string  `json:"id"`
	Reference     string  `json:"reference"`
	GuestID       string  `json:"guest_id"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	HotelID       string  `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	RoomID        string  `json:"room_id"`
	RoomType      string  `json:"room_type"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	RoomRate      float64 `json:"room_rate"`
	Nights        int     `json:"nights"`
	Taxes         float64 `json:"taxes"`
	Fees          float64 `json:"fees"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.RoomID = model.RoomID
	r.RoomType = model.RoomType
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	r.Adults = model.Adults
	r.Children = model.Children
	r.RoomRate = model.RoomRate
	r.Nights = model.Nights
	r.Taxes = model.Taxes
	r.Fees = model.Fees
	r.Discount = model.Discount
	r.Total = model.Total
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.Metadata.FromModel(model.Metadata)
}

// BookingDetailResponse is a booking plus its display-ready timeline.
type BookingDetailResponse struct {
	BookingResponse

	Timeline []timeline.Entry `json:"timeline"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
