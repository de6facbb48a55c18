package search_businesses

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	searchBusinesses "github.com/washify/marketplace-service/internal/usecase/search_businesses"
)

const msgInvalidQuery = "некорректные параметры поиска"

type Handler struct {
	useCase SearchBusinessesUseCase
	logger  Logger
}

func NewHandler(useCase SearchBusinessesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lat, err := handlers.ParseFloatParam(r, "lat", 0)
	if err != nil {
		h.logger.Warn("GET /businesses - Invalid lat: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	lng, err := handlers.ParseFloatParam(r, "lng", 0)
	if err != nil {
		h.logger.Warn("GET /businesses - Invalid lng: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	radius, err := handlers.ParseFloatParam(r, "radius", 0)
	if err != nil {
		h.logger.Warn("GET /businesses - Invalid radius: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	limit, offset := handlers.ParseLimitOffset(r, domain.DefaultLimit)
	filter := ParseFilter(lat, lng, radius, r.URL.Query().Get("search"), limit, offset)

	result, err := h.useCase.Execute(r.Context(), filter)
	if err != nil {
		if errors.Is(err, searchBusinesses.ErrInvalidInput) {
			h.logger.Warn("GET /businesses - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /businesses - Failed to search businesses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromResult(result, limit, offset))
}
