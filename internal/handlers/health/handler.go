package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"lodge/infras/postgres"
	"lodge/transport/http/response"
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Health)
	})
}

// Health reports service readiness.
// @Summary Health check
// @Description Check database and cache connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed on postgres write")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed on postgres read")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("health check failed on redis")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
