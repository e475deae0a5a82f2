package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/cart/model/dto"
	"lodge/internal/domains/cart/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/middleware"
	"lodge/transport/http/response"
)

type Handler struct {
	service    service.Cart
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Cart, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cart", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCart)
		routerGroup.Delete("/", handler.ClearCart)
		routerGroup.Post("/items", handler.AddItem)
		routerGroup.Patch("/items/{id}", handler.UpdateItem)
		routerGroup.Delete("/items/{id}", handler.RemoveItem)
		routerGroup.Put("/open", handler.SetOpen)
		routerGroup.Post("/revalidate", handler.Revalidate)
		routerGroup.Post("/checkout", handler.Checkout)
	})
}

// GetCart retrieves the authenticated guest's booking cart.
// @Summary Get the booking cart
// @Description Retrieve the current cart contents for the authenticated guest.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} dto.CartResponse "Cart contents"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart [get]
// @Security BearerAuth
func (handler *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	cart := handler.service.Get(ctx, guestID)

	scope.AddEvent("Cart retrieved successfully")

	response.WithJSON(w, http.StatusOK, cart)
}

// AddItem adds a room stay to the cart.
// @Summary Add an item to the cart
// @Description Add a room with stay dates and party size to the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.AddCartItemRequest true "Add Cart Item Request"
// @Success 200 {object} dto.CartResponse "Updated cart"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items [post]
// @Security BearerAuth
func (handler *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	req := dto.AddCartItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	cart, err := handler.service.Add(ctx, guestID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add cart item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item added successfully for guest " + guestID)

	response.WithJSON(w, http.StatusOK, cart)
}

// UpdateItem updates the stay dates or party size of a cart item.
// @Summary Update a cart item
// @Description Update the stay dates or party size of an item already in the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart Item ID"
// @Param request body dto.UpdateCartItemRequest true "Update Cart Item Request"
// @Success 200 {object} dto.CartResponse "Updated cart"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	itemID := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCartItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	cart, err := handler.service.Update(ctx, guestID, itemID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cart item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item updated successfully for guest " + guestID)

	response.WithJSON(w, http.StatusOK, cart)
}

// RemoveItem removes an item from the cart.
// @Summary Remove a cart item
// @Description Remove an item from the cart by its ID. Removing an absent item is a no-op.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart Item ID"
// @Success 200 {object} dto.CartResponse "Updated cart"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveItem")
	defer scope.End()

	itemID := chi.URLParam(r, constant.RequestParamID)
	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	cart := handler.service.Remove(ctx, guestID, itemID)

	scope.AddEvent("Cart item removed successfully for guest " + guestID)

	response.WithJSON(w, http.StatusOK, cart)
}

// ClearCart removes every item from the cart.
// @Summary Clear the cart
// @Description Remove all items from the authenticated guest's cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} dto.CartResponse "Emptied cart"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart [delete]
// @Security BearerAuth
func (handler *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearCart")
	defer scope.End()

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	cart := handler.service.Clear(ctx, guestID)

	scope.AddEvent("Cart cleared successfully for guest " + guestID)

	response.WithJSON(w, http.StatusOK, cart)
}

// SetOpen toggles the cart drawer open state.
// @Summary Set the cart open state
// @Description Persist whether the cart drawer is open or closed.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.SetCartOpenRequest true "Set Cart Open Request"
// @Success 200 {object} dto.CartResponse "Updated cart"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/open [put]
// @Security BearerAuth
func (handler *Handler) SetOpen(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetOpen")
	defer scope.End()

	req := dto.SetCartOpenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	cart := handler.service.SetOpen(ctx, guestID, req.Open)

	scope.AddEvent("Cart open state updated for guest " + guestID)

	response.WithJSON(w, http.StatusOK, cart)
}

// Revalidate refreshes every cart item against current room data.
// @Summary Revalidate the cart
// @Description Re-check availability and pricing of every cart item against current room data.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} dto.CartResponse "Revalidated cart"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/revalidate [post]
// @Security BearerAuth
func (handler *Handler) Revalidate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Revalidate")
	defer scope.End()

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	cart, err := handler.service.Revalidate(ctx, guestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to revalidate cart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart revalidated successfully for guest " + guestID)

	response.WithJSON(w, http.StatusOK, cart)
}

// Checkout converts the cart into confirmed bookings.
// @Summary Check out the cart
// @Description Convert every cart item into a confirmed booking and empty the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 201 {object} dto.CheckoutResponse "Created bookings"
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)

	res, err := handler.service.Checkout(ctx, guestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out cart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart checked out successfully for guest " + guestID)

	response.WithJSON(w, http.StatusCreated, res)
}
