package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	"lodge/internal/domains/booking/timeline"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	GetMine(ctx context.Context, guestID string, status string, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, guestID, id string) (dto.BookingDetailResponse, error)
	Cancel(ctx context.Context, guestID, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	eventRepo repository.TimelineEvent
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, eventRepo repository.TimelineEvent, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func guestFilter(guestID string) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldGuestID,
		Operator: gDto.FilterOperatorEq,
		Value:    guestID,
		Table:    model.TableName,
	}
}

func (s *serviceImpl) GetMine(ctx context.Context, guestID string, status string, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{guestFilter(guestID)}

	if status != constant.Empty {
		switch status {
		case model.StatusUpcoming, model.StatusCurrent, model.StatusCompleted, model.StatusCancelled:
		default:
			return res, failure.BadRequestFromString("unknown booking status")
		}

		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	filter := gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, guestID, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, guestID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || booking.GuestID != guestID {
		return res, failure.NotFound("booking not found")
	}

	eventFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.EventFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.EventTableName,
			},
		},
	}

	events, err := s.eventRepo.GetAll(ctx, gDto.QueryParams{}, eventFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get timeline events")

		return res, fmt.Errorf("failed to get timeline events: %w", err)
	}

	entries, err := timeline.Render(events)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to render timeline")

		return res, fmt.Errorf("failed to render timeline: %w", err)
	}

	res.FromModel(booking)
	res.Timeline = entries

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel moves an upcoming booking to cancelled and writes the matching
// timeline events in the same transaction, so status and timeline can never
// disagree. A completed payment additionally gets a refund event and a
// refunded payment status.
func (s *serviceImpl) Cancel(ctx context.Context, guestID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || booking.GuestID != guestID {
		return failure.NotFound("booking not found")
	}

	if booking.Status == model.StatusCancelled {
		return failure.Conflict("booking is already cancelled")
	}

	if booking.Status != model.StatusUpcoming {
		return failure.UnprocessableEntity("only upcoming bookings can be cancelled")
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin cancel transaction")

		return fmt.Errorf("failed to begin cancel transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to roll back cancel transaction")
			}
		}
	}()

	now := timezone.Now()
	refunded := booking.PaymentStatus == model.PaymentStatusCompleted

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: guestID,
	}

	if refunded {
		updatedFields[model.FieldPaymentStatus] = model.PaymentStatusRefunded
	}

	if err = s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	events := []model.TimelineEvent{
		{
			ID:          uuid.NewString(),
			BookingID:   id,
			Type:        model.EventTypeCancelled,
			Title:       "Booking cancelled",
			Description: fmt.Sprintf("Reservation %s was cancelled", booking.Reference),
			OccurredAt:  now,
		},
	}

	if refunded {
		events = append(events, model.TimelineEvent{
			ID:          uuid.NewString(),
			BookingID:   id,
			Type:        model.EventTypeRefund,
			Title:       "Refund issued",
			Description: fmt.Sprintf("Refund of %.2f issued", booking.Total),
			OccurredAt:  now,
		})
	}

	if err = s.eventRepo.InsertBulkTx(ctx, tx, events); err != nil {
		log.Error().Err(err).Msg("failed to insert timeline events")

		return fmt.Errorf("failed to insert timeline events: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit cancel transaction")

		return fmt.Errorf("failed to commit cancel transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, guestID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
