package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/cart/model"
	"lodge/internal/domains/cart/model/dto"
	"lodge/internal/domains/cart/store"
	hotelModel "lodge/internal/domains/hotel/model"
	hotelRepo "lodge/internal/domains/hotel/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	userModel "lodge/internal/domains/user/model"
	userRepo "lodge/internal/domains/user/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	taxRate    = 0.12
	serviceFee = 25.0

	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Cart interface {
	Get(ctx context.Context, guestID string) dto.CartResponse
	Add(ctx context.Context, guestID string, req dto.AddCartItemRequest) (dto.CartResponse, error)
	Update(ctx context.Context, guestID, itemID string, req dto.UpdateCartItemRequest) (dto.CartResponse, error)
	Remove(ctx context.Context, guestID, itemID string) dto.CartResponse
	Clear(ctx context.Context, guestID string) dto.CartResponse
	SetOpen(ctx context.Context, guestID string, open bool) dto.CartResponse
	Revalidate(ctx context.Context, guestID string) (dto.CartResponse, error)
	Checkout(ctx context.Context, guestID string) (dto.CheckoutResponse, error)
}

type serviceImpl struct {
	store       store.Cart
	roomRepo    roomRepo.Room
	hotelRepo   hotelRepo.Hotel
	bookingRepo bookingRepo.Booking
	eventRepo   bookingRepo.TimelineEvent
	userRepo    userRepo.User
	kafka       kafka.Client
	cache       cache.RedisCache
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	store store.Cart,
	roomRepo roomRepo.Room,
	hotelRepo hotelRepo.Hotel,
	bookingRepo bookingRepo.Booking,
	eventRepo bookingRepo.TimelineEvent,
	userRepo userRepo.User,
	kafka kafka.Client,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Cart {
	return &serviceImpl{
		store:       store,
		roomRepo:    roomRepo,
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		kafka:       kafka,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) snapshot(guestID string) dto.CartResponse {
	return dto.CartResponse{
		Items:       s.store.Items(guestID),
		ItemCount:   s.store.ItemCount(guestID),
		TotalAmount: s.store.TotalAmount(guestID),
		IsOpen:      s.store.IsOpen(guestID),
	}
}

func (s *serviceImpl) Get(ctx context.Context, guestID string) dto.CartResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	return s.snapshot(guestID)
}

func (s *serviceImpl) Add(ctx context.Context, guestID string, req dto.AddCartItemRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := timezone.Parse(constant.DateOnlyFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format")
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format")
	}

	nights := nightsBetween(checkIn, checkOut)
	if nights < 1 {
		return res, failure.BadRequestFromString("stay must be at least one night")
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.NotFound("room not found")
	}

	if room.HotelID != req.HotelID {
		return res, failure.BadRequestFromString("room does not belong to the given hotel")
	}

	if req.Adults+req.Children > room.MaxGuests {
		return res, failure.BadRequestFromString(fmt.Sprintf("room sleeps at most %d guests", room.MaxGuests))
	}

	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(room.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found")
	}

	item := model.CartItem{
		HotelID:       hotel.ID,
		HotelName:     hotel.Name,
		HotelImage:    hotel.Image,
		Location:      hotel.Location,
		RoomID:        room.ID,
		RoomType:      room.Type,
		RoomImage:     room.Image,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        req.Adults,
		Children:      req.Children,
		PricePerNight: room.PricePerNight,
		Nights:        nights,
		TotalPrice:    room.PricePerNight * float64(nights),
		Available:     room.Available,
	}

	s.store.AddItem(guestID, item)

	return s.snapshot(guestID), nil
}

// Update applies a partial change to a held item. When dates change, nights
// and the total are recomputed here and supplied to the store as part of the
// patch; the store itself never derives the total.
func (s *serviceImpl) Update(ctx context.Context, guestID, itemID string, req dto.UpdateCartItemRequest) (res dto.CartResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, found := findItem(s.store.Items(guestID), itemID)
	if !found {
		// absent id is a no-op, the caller still gets a consistent snapshot
		return s.snapshot(guestID), nil
	}

	patch := model.CartItemPatch{
		Adults:   req.Adults,
		Children: req.Children,
	}

	checkIn := current.CheckIn
	checkOut := current.CheckOut
	datesChanged := false

	if req.CheckIn != nil {
		checkIn, err = timezone.Parse(constant.DateOnlyFormat, *req.CheckIn)
		if err != nil {
			return res, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format")
		}

		datesChanged = true
	}

	if req.CheckOut != nil {
		checkOut, err = timezone.Parse(constant.DateOnlyFormat, *req.CheckOut)
		if err != nil {
			return res, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format")
		}

		datesChanged = true
	}

	if datesChanged {
		nights := nightsBetween(checkIn, checkOut)
		if nights < 1 {
			return res, failure.BadRequestFromString("stay must be at least one night")
		}

		total := current.PricePerNight * float64(nights)

		patch.CheckIn = &checkIn
		patch.CheckOut = &checkOut
		patch.Nights = &nights
		patch.TotalPrice = &total
	}

	adults := current.Adults
	children := current.Children

	if req.Adults != nil {
		adults = *req.Adults
	}

	if req.Children != nil {
		children = *req.Children
	}

	if req.Adults != nil || req.Children != nil {
		room, err := s.roomRepo.Get(ctx, shared.FilterByID(current.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room")

			return res, fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID != constant.Empty && adults+children > room.MaxGuests {
			return res, failure.BadRequestFromString(fmt.Sprintf("room sleeps at most %d guests", room.MaxGuests))
		}
	}

	s.store.UpdateItem(guestID, itemID, patch)

	return s.snapshot(guestID), nil
}

func (s *serviceImpl) Remove(ctx context.Context, guestID, itemID string) dto.CartResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()

	s.store.RemoveItem(guestID, itemID)

	return s.snapshot(guestID)
}

func (s *serviceImpl) Clear(ctx context.Context, guestID string) dto.CartResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()

	s.store.Clear(guestID)

	return s.snapshot(guestID)
}

func (s *serviceImpl) SetOpen(ctx context.Context, guestID string, open bool) dto.CartResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetOpen")
	defer scope.End()

	s.store.SetOpen(guestID, open)

	return s.snapshot(guestID)
}

// Revalidate re-checks every held item against the current room record and is
// the one writer of the availability and price-change flags. A price change
// keeps the first observed price as the original for display; the total is
// always rewritten consistently with the applied nightly price.
func (s *serviceImpl) Revalidate(ctx context.Context, guestID string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revalidate")
	defer scope.End()
	defer scope.TraceIfError(err)

	for _, item := range s.store.Items(guestID) {
		room, err := s.roomRepo.Get(ctx, shared.FilterByID(item.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room")

			return res, fmt.Errorf("failed to get room: %w", err)
		}

		patch := model.CartItemPatch{}

		available := room.ID != constant.Empty && room.Active && room.Available
		patch.Available = &available

		if available && room.PricePerNight != item.PricePerNight {
			original := item.PricePerNight
			if item.OriginalPrice != nil {
				original = *item.OriginalPrice
			}

			price := room.PricePerNight
			total := price * float64(item.Nights)
			changed := price != original

			patch.PricePerNight = &price
			patch.TotalPrice = &total
			patch.PriceChanged = &changed

			if changed {
				patch.OriginalPrice = &original
			} else {
				patch.ClearOriginalPrice = true
			}
		}

		s.store.UpdateItem(guestID, item.ID, patch)
	}

	return s.snapshot(guestID), nil
}

// Checkout turns the cart into confirmed bookings. Each item becomes one
// booking with its created and payment events, written in a single
// transaction; payment is recorded as completed by fiat, there is no charge
// flow here. The cart is cleared only after the transaction commits.
func (s *serviceImpl) Checkout(ctx context.Context, guestID string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	items := s.store.Items(guestID)
	if len(items) == 0 {
		return res, failure.BadRequestFromString("cart is empty")
	}

	for _, item := range items {
		if !item.Available {
			return res, failure.UnprocessableEntity(fmt.Sprintf("%s at %s is no longer available", item.RoomType, item.HotelName))
		}
	}

	guest, err := s.userRepo.Get(ctx, shared.FilterByID(guestID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found")
	}

	guestName := guest.Email
	if guest.FullName != nil {
		guestName = *guest.FullName
	}

	tx, err := s.bookingRepo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin checkout transaction")

		return res, fmt.Errorf("failed to begin checkout transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to roll back checkout transaction")
			}
		}
	}()

	now := timezone.Now()
	events := []kafka.Message{}

	for _, item := range items {
		booking := bookingFromItem(item, guestID, guestName, guest.Email, now)

		if err = s.bookingRepo.InsertTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Msg("failed to insert booking")

			return res, fmt.Errorf("failed to insert booking: %w", err)
		}

		timelineEvents := []bookingModel.TimelineEvent{
			{
				ID:          uuid.NewString(),
				BookingID:   booking.ID,
				Type:        bookingModel.EventTypeCreated,
				Title:       "Booking confirmed",
				Description: fmt.Sprintf("Reservation %s created for %s", booking.Reference, booking.HotelName),
				OccurredAt:  now,
			},
			{
				ID:          uuid.NewString(),
				BookingID:   booking.ID,
				Type:        bookingModel.EventTypePayment,
				Title:       "Payment received",
				Description: fmt.Sprintf("Payment of %.2f recorded", booking.Total),
				OccurredAt:  now,
			},
		}

		if err = s.eventRepo.InsertBulkTx(ctx, tx, timelineEvents); err != nil {
			log.Error().Err(err).Msg("failed to insert timeline events")

			return res, fmt.Errorf("failed to insert timeline events: %w", err)
		}

		events = append(events, kafka.Message{
			Key: booking.ID,
			Value: dto.BookingCreatedEvent{
				BookingID: booking.ID,
				Reference: booking.Reference,
				GuestID:   guestID,
				HotelID:   booking.HotelID,
				RoomID:    booking.RoomID,
				Total:     booking.Total,
				CreatedAt: now,
			},
		})

		res.BookingIDs = append(res.BookingIDs, booking.ID)
		res.References = append(res.References, booking.Reference)
		res.Total += booking.Total
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit checkout transaction")

		return res, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}

	s.store.Clear(guestID)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, constant.KafkaTopicBookings, events...); err != nil {
			log.Error().Err(err).Msg("failed to publish booking events")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func bookingFromItem(item model.CartItem, guestID, guestName, guestEmail string, now time.Time) bookingModel.Booking {
	booking := bookingModel.Booking{
		ID:            uuid.NewString(),
		Reference:     newReference(),
		GuestID:       guestID,
		GuestName:     guestName,
		GuestEmail:    guestEmail,
		HotelID:       item.HotelID,
		HotelName:     item.HotelName,
		RoomID:        item.RoomID,
		RoomType:      item.RoomType,
		CheckIn:       item.CheckIn,
		CheckOut:      item.CheckOut,
		Adults:        item.Adults,
		Children:      item.Children,
		RoomRate:      item.PricePerNight,
		Nights:        item.Nights,
		Taxes:         item.PricePerNight * float64(item.Nights) * taxRate,
		Fees:          serviceFee,
		Status:        bookingModel.StatusUpcoming,
		PaymentStatus: bookingModel.PaymentStatusCompleted,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}

	booking.Total = booking.ComputeTotal()

	return booking
}

func newReference() string {
	return "LDG-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func findItem(items []model.CartItem, itemID string) (model.CartItem, bool) {
	for _, item := range items {
		if item.ID == itemID {
			return item, true
		}
	}

	return model.CartItem{}, false
}
