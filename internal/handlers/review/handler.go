package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/review/model/dto"
	"lodge/internal/domains/review/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/middleware"
	"lodge/transport/http/response"
)

type Handler struct {
	service    service.Review
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Review, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
	})

	router.Get("/hotels/{id}/reviews", handler.GetHotelReviews)
}

// CreateReview submits a review for a completed booking.
// @Summary Create a review
// @Description Submit a review with ratings and optional photos for a completed booking.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} dto.ReviewResponse "Created review"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	res, err := handler.service.Create(ctx, guestID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Review created successfully by guest " + guestID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetHotelReviews retrieves the reviews of a hotel.
// @Summary Get reviews of a hotel
// @Description Retrieve the reviews belonging to a hotel with pagination.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.GetReviewsResponse "List of reviews"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/reviews [get]
func (handler *Handler) GetHotelReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelReviews")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	reviews, err := handler.service.GetByHotel(ctx, hotelID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}
