package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/s3"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/review/model"
	"lodge/internal/domains/review/model/dto"
	"lodge/internal/domains/review/repository"
	"lodge/shared"
	"lodge/shared/base64"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

const (
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"
)

var contentTypeExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type Review interface {
	Create(ctx context.Context, guestID string, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo        repository.Review
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
	kafka       kafka.Client
}

func New(
	repo repository.Review,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	kafka kafka.Client,
) Review {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
		kafka:       kafka,
	}
}

// Create stores a review for one of the guest's completed bookings. A booking
// can be reviewed once; photos arrive as base64 data URIs and are uploaded
// before the review row is written.
func (s *serviceImpl) Create(ctx context.Context, guestID string, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || booking.GuestID != guestID {
		return res, failure.NotFound("booking not found")
	}

	if booking.Status != bookingModel.StatusCompleted {
		return res, failure.UnprocessableEntity("only completed stays can be reviewed")
	}

	reviewed, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.BookingID,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return res, fmt.Errorf("failed to check if review exists: %w", err)
	}

	if reviewed {
		return res, failure.Conflict("booking has already been reviewed")
	}

	photoURLs, err := s.uploadPhotos(ctx, req.Photos)
	if err != nil {
		return res, err
	}

	review := req.ToModel(guestID, booking.HotelID, photoURLs)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)

		event := kafka.Message{
			Key: review.ID,
			Value: dto.ReviewCreatedEvent{
				ReviewID:      review.ID,
				BookingID:     review.BookingID,
				HotelID:       review.HotelID,
				RatingOverall: review.RatingOverall,
				CreatedAt:     timezone.Now(),
			},
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicReviews, event); err != nil {
			log.Error().Err(err).Msg("failed to publish review event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) uploadPhotos(ctx context.Context, photos []string) ([]string, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".uploadPhotos")
	defer scope.End()

	bucketName := s.cfg.External.S3.BucketName
	urls := make([]string, 0, len(photos))

	for _, photo := range photos {
		contentType := base64.GetContentType(photo)

		extension, ok := contentTypeExtensions[contentType]
		if !ok {
			return nil, failure.BadRequestFromString("unsupported photo content type")
		}

		data, err := base64.Decode(photo)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode photo")

			return nil, failure.BadRequestFromString("photo is not valid base64 data")
		}

		fileName := fmt.Sprintf("%s.%s", uuid.NewString(), extension)

		url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, fileName, contentType, data)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload photo to S3")

			return nil, fmt.Errorf("failed to upload photo to S3: %w", err)
		}

		urls = append(urls, url)
	}

	return urls, nil
}

func (s *serviceImpl) GetByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}
