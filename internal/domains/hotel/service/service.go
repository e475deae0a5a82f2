package service

import (
	"context"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/hotel/model"
	"lodge/internal/domains/hotel/model/dto"
	"lodge/internal/domains/hotel/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
	cacheCountHotel  = "hotel:count"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyGuestEmail).(string)

	if err = s.repo.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return fmt.Errorf("failed to create hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == "" {
		return res, failure.NotFound("hotel not found")
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	actor, _ := ctx.Value(constant.ContextKeyGuestEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		log.Error().Msg("hotel not found")

		return failure.NotFound("hotel not found")
	}

	updatedFields := shared.TransformFields(req, actor)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		log.Error().Msg("hotel not found")

		return failure.NotFound("hotel not found")
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}
