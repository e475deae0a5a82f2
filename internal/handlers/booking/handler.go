package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/transport/http/middleware"
	"lodge/transport/http/response"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})
}

// GetBookings retrieves the authenticated guest's bookings.
// @Summary Get my bookings
// @Description Retrieve the authenticated guest's bookings with optional status filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param status query string false "Filter by status" Enums(upcoming, current, completed, cancelled)
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	bookings, err := handler.service.GetMine(ctx, guestID, status, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking with its history timeline.
// @Summary Get a booking by ID
// @Description Retrieve a booking with its rendered history timeline. Guests can only see their own bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingDetailResponse "Booking details with timeline"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	booking, err := handler.service.Get(ctx, guestID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels an upcoming booking.
// @Summary Cancel a booking
// @Description Cancel an upcoming booking. Completed and already cancelled bookings cannot be cancelled.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	if err := handler.service.Cancel(ctx, guestID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully by guest " + guestID)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}
