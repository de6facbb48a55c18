package delete_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/api/middleware"
	"github.com/washify/marketplace-service/internal/service/users"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgUserNotFound  = "пользователь не найден"
	msgSelfDeletion  = "нельзя удалить собственную учетную запись"
	msgUnauthorized  = "требуется авторизация"
	msgUserDeleted   = "пользователь удален"
)

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

// Handle DELETE /api/admin/users?userId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/users - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /admin/users - User not found: user_id=%d", id)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrSelfDeletion):
			h.logger.Warn("DELETE /admin/users - Self deletion attempt: user_id=%d", actorID)
			handlers.RespondBadRequest(w, msgSelfDeletion)

		default:
			h.logger.Error("DELETE /admin/users - Failed to delete user: user_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/users - User deleted: user_id=%d, actor=%d", id, actorID)
	handlers.RespondJSON(w, http.StatusOK, DeleteUserResponse{
		Message:     msgUserDeleted,
		DeletedUser: FromDomainUser(deleted),
	})
}
