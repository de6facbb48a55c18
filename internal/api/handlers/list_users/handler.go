package list_users

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/users"
)

const msgInvalidRole = "некорректная роль"

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset := handlers.ParseLimitOffset(r, domain.DefaultLimit)
	filter := ParseFilter(r.URL.Query().Get("role"), r.URL.Query().Get("search"), limit, offset)

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, users.ErrInvalidInput) {
			h.logger.Warn("GET /admin/users - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRole)
			return
		}
		h.logger.Error("GET /admin/users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromListResult(result, limit, offset))
}
