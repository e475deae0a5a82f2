package store

import (
	"sync"

	"github.com/google/uuid"

	"lodge/internal/domains/cart/model"
	"lodge/shared/timezone"
)

// Cart holds the process-local carts, one per guest. Mutations are observed
// in invocation order; any read reflects every mutation completed before it.
type Cart interface {
	AddItem(guestID string, item model.CartItem) model.CartItem
	RemoveItem(guestID, itemID string)
	UpdateItem(guestID, itemID string, patch model.CartItemPatch)
	Clear(guestID string)
	Items(guestID string) []model.CartItem
	ItemCount(guestID string) int
	TotalAmount(guestID string) float64
	IsOpen(guestID string) bool
	SetOpen(guestID string, open bool)
}

type guestCart struct {
	items []model.CartItem
	open  bool

	// aggregates are recomputed on every mutation so reads never observe a
	// stale value after a mutating call returns
	count int
	total float64
}

type storeImpl struct {
	mu    sync.Mutex
	carts map[string]*guestCart
}

func New() Cart {
	return &storeImpl{
		carts: map[string]*guestCart{},
	}
}

func (s *storeImpl) cart(guestID string) *guestCart {
	c, ok := s.carts[guestID]
	if !ok {
		c = &guestCart{}
		s.carts[guestID] = c
	}

	return c
}

func (c *guestCart) recompute() {
	c.count = len(c.items)
	c.total = 0

	for _, item := range c.items {
		c.total += item.TotalPrice
	}
}

// AddItem appends the item to the guest's cart. Any caller-supplied id or
// added-at timestamp is discarded; the store assigns both. Never fails.
func (s *storeImpl) AddItem(guestID string, item model.CartItem) model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	item.AddedAt = timezone.Now()

	c := s.cart(guestID)
	c.items = append(c.items, item)
	c.recompute()

	return item
}

// RemoveItem removes the matching item. Removing an id that is not held is a
// no-op, so duplicate remove events stay harmless.
func (s *storeImpl) RemoveItem(guestID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(guestID)
	for i, item := range c.items {
		if item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.recompute()

			return
		}
	}
}

// UpdateItem merges the patch into the matching item, leaving absent fields
// untouched. The id never changes. TotalPrice is applied only when supplied,
// never recomputed from a patched PricePerNight or Nights. No-op when the id
// is not held.
func (s *storeImpl) UpdateItem(guestID, itemID string, patch model.CartItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(guestID)
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}

		applyPatch(&c.items[i], patch)
		c.recompute()

		return
	}
}

func applyPatch(item *model.CartItem, patch model.CartItemPatch) {
	if patch.HotelName != nil {
		item.HotelName = *patch.HotelName
	}

	if patch.HotelImage != nil {
		item.HotelImage = *patch.HotelImage
	}

	if patch.Location != nil {
		item.Location = *patch.Location
	}

	if patch.RoomType != nil {
		item.RoomType = *patch.RoomType
	}

	if patch.RoomImage != nil {
		item.RoomImage = *patch.RoomImage
	}

	if patch.CheckIn != nil {
		item.CheckIn = *patch.CheckIn
	}

	if patch.CheckOut != nil {
		item.CheckOut = *patch.CheckOut
	}

	if patch.Adults != nil {
		item.Adults = *patch.Adults
	}

	if patch.Children != nil {
		item.Children = *patch.Children
	}

	if patch.PricePerNight != nil {
		item.PricePerNight = *patch.PricePerNight
	}

	if patch.Nights != nil {
		item.Nights = *patch.Nights
	}

	if patch.TotalPrice != nil {
		item.TotalPrice = *patch.TotalPrice
	}

	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if patch.PriceChanged != nil {
		item.PriceChanged = *patch.PriceChanged
	}

	switch {
	case patch.ClearOriginalPrice:
		item.OriginalPrice = nil
	case patch.OriginalPrice != nil:
		original := *patch.OriginalPrice
		item.OriginalPrice = &original
	}
}

func (s *storeImpl) Clear(guestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(guestID)
	c.items = nil
	c.recompute()
}

// Items returns the guest's items in insertion order. The slice is a copy;
// callers cannot splice the cart behind the store's back.
func (s *storeImpl) Items(guestID string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(guestID)

	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)

	return items
}

func (s *storeImpl) ItemCount(guestID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(guestID).count
}

func (s *storeImpl) TotalAmount(guestID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(guestID).total
}

func (s *storeImpl) IsOpen(guestID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(guestID).open
}

func (s *storeImpl) SetOpen(guestID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(guestID).open = open
}
