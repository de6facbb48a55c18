package create_business

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/api/middleware"
	"github.com/washify/marketplace-service/internal/service/businesses"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgOwnerNotFound      = "владелец не найден"
	msgNotAllowed         = "роль пользователя не позволяет регистрировать бизнесы"
	msgDuplicateListing   = "бизнес с таким именем уже зарегистрирован поблизости"
)

type Handler struct {
	service BusinessesService
	logger  Logger
}

func NewHandler(service BusinessesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /businesses - Validation failed: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}

	business, err := h.service.Create(r.Context(), &businesses.CreateRequest{
		Name:    req.Name,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
		OwnerID: actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrOwnerNotFound):
			h.logger.Warn("POST /businesses - Owner not found: user_id=%d", actorID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, businesses.ErrNotAllowed):
			h.logger.Warn("POST /businesses - Role not allowed: user_id=%d", actorID)
			handlers.RespondForbidden(w, msgNotAllowed)

		case errors.Is(err, businesses.ErrDuplicateListing):
			h.logger.Warn("POST /businesses - Duplicate listing: name=%s, user_id=%d", req.Name, actorID)
			handlers.RespondConflict(w, msgDuplicateListing)

		default:
			h.logger.Error("POST /businesses - Failed to create business: user_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses - Business created: business_id=%d, owner=%d", business.ID, actorID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainBusiness(business))
}
