package get_me

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/api/middleware"
	"github.com/washify/marketplace-service/internal/service/auth"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	profile, err := h.service.Me(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// Токен ссылается на удаленного пользователя
			h.logger.Warn("GET /auth/me - User not found: user_id=%d", claims.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /auth/me - Failed to get profile: user_id=%d, error=%v", claims.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromProfile(profile, claims))
}
