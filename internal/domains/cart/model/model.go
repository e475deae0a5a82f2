package model

import "time"

const (
	EntityName = "cart_item"
)

// CartItem is one prospective reservation held in a guest's cart before
// checkout. ID and AddedAt are owned by the store and assigned on insertion.
type CartItem struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	HotelImage    string    `json:"hotel_image,omitempty"`
	Location      string    `json:"location"`
	RoomID        string    `json:"room_id"`
	RoomType      string    `json:"room_type"`
	RoomImage     string    `json:"room_image,omitempty"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	PricePerNight float64   `json:"price_per_night"`
	Nights        int       `json:"nights"`
	TotalPrice    float64   `json:"total_price"`
	Available     bool      `json:"available"`
	PriceChanged  bool      `json:"price_changed"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// CartItemPatch is a partial update applied to a held item. Nil fields are
// left untouched. The item id is not patchable. TotalPrice is never derived
// from PricePerNight or Nights here; whoever supplies those fields supplies
// a consistent TotalPrice as well.
type CartItemPatch struct {
	HotelName     *string
	HotelImage    *string
	Location      *string
	RoomType      *string
	RoomImage     *string
	CheckIn       *time.Time
	CheckOut      *time.Time
	Adults        *int
	Children      *int
	PricePerNight *float64
	Nights        *int
	TotalPrice    *float64
	Available     *bool
	PriceChanged  *bool
	OriginalPrice *float64

	// ClearOriginalPrice resets OriginalPrice to nil, for when a changed
	// price reverts. It wins over OriginalPrice when both are set.
	ClearOriginalPrice bool
}
