package hotel

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/hotel/model"
	"lodge/internal/domains/hotel/model/dto"
	"lodge/internal/domains/hotel/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/middleware"
	"lodge/transport/http/response"
)

type Handler struct {
	service    service.Hotel
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Hotel, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Patch("/{id}", handler.UpdateHotel)
		routerGroup.Delete("/{id}", handler.DeleteHotel)
	})
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a new hotel
// @Description Create a new hotel with the provided details.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Message "Hotel created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(writer, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyGuestID).(string)
	scope.AddEvent("Hotel created successfully by " + admin)

	response.WithMessage(writer, http.StatusCreated, "Hotel created successfully")
}

// GetHotels retrieves all hotels based on query parameters.
// @Summary Get all hotels
// @Description Retrieve all hotels with optional filtering and pagination.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} dto.GetHotelsResponse "List of hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	hotels, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID retrieves a hotel by its ID.
// @Summary Get a hotel by ID
// @Description Retrieve a hotel by its unique identifier.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelResponse "Hotel details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel updates an existing hotel by its ID.
// @Summary Update a hotel by ID
// @Description Update the details of an existing hotel.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Message "Hotel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHotelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyGuestID).(string)
	scope.AddEvent("Hotel updated successfully by " + admin)

	response.WithMessage(w, http.StatusOK, "Hotel updated successfully")
}

// DeleteHotel deletes a hotel by its ID.
// @Summary Delete a hotel by ID
// @Description Delete a hotel using its unique identifier.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Message "Hotel deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyGuestID).(string)
	scope.AddEvent("Hotel deleted successfully by " + admin)

	response.WithMessage(w, http.StatusOK, "Hotel deleted successfully")
}
