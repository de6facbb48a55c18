package create_service

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/api/middleware"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgBusinessNotFound   = "бизнес не найден"
	msgAccessDenied       = "услуги может добавлять только владелец бизнеса"
	msgDuplicateName      = "услуга с таким именем уже есть у бизнеса"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /services - Validation failed: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}

	service, err := h.service.Create(r.Context(), &catalog.CreateRequest{
		BusinessID:      req.BusinessID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Tier:            domain.ServiceTier(req.Tier),
		ActorID:         claims.UserID,
		ActorIsAdmin:    claims.Role == string(domain.RoleAdmin),
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			h.logger.Warn("POST /services - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /services - Access denied: user_id=%d, business_id=%d", claims.UserID, req.BusinessID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalog.ErrDuplicateName):
			h.logger.Warn("POST /services - Duplicate name: name=%s, business_id=%d", req.Name, req.BusinessID)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /services - Failed to create service: business_id=%d, error=%v", req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, business_id=%d", service.ID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainService(service))
}
