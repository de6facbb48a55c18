package list_reviews

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/reviews"
)

const msgInvalidQuery = "некорректные параметры фильтрации"

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset := handlers.ParseLimitOffset(r, domain.DefaultLimit)

	filter, err := ParseFilter(r, limit, offset)
	if err != nil {
		h.logger.Warn("GET /reviews - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, reviews.ErrInvalidInput) {
			h.logger.Warn("GET /reviews - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromListResult(result, limit, offset))
}
