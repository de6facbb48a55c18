package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
	businessRepo "github.com/washify/marketplace-service/internal/infra/storage/business"
	serviceRepo "github.com/washify/marketplace-service/internal/infra/storage/service"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo  ServiceRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// ListResult страница услуг каталога
type ListResult struct {
	Services []*domain.ServiceDetails
	Total    int64
}

// CreateRequest входные данные создания услуги
type CreateRequest struct {
	BusinessID      int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Tier            domain.ServiceTier
	ActorID         int64
	ActorIsAdmin    bool
}

// List возвращает страницу каталога услуг с фильтрацией по бизнесу,
// tier'у и диапазону цен
func (s *Service) List(ctx context.Context, filter domain.ServicesFilter) (*ListResult, error) {
	s.logger.Info("ListServices: business=%v, tier=%v, limit=%d, offset=%d",
		filter.BusinessID, filter.Tier, filter.Limit, filter.Offset)

	if filter.Tier != nil && !filter.Tier.Valid() {
		s.logger.Warn("ListServices: invalid tier filter=%s", *filter.Tier)
		return nil, fmt.Errorf("%w: unknown tier", ErrInvalidInput)
	}

	list, err := s.serviceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	total, err := s.serviceRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListServices: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %w", ErrInternal, err)
	}

	return &ListResult{Services: list, Total: total}, nil
}

// Create добавляет услугу бизнесу. Доступно владельцу бизнеса и
// администратору. Имя услуги уникально внутри бизнеса.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Service, error) {
	s.logger.Info("CreateService: business=%d, name=%s, actor=%d", req.BusinessID, req.Name, req.ActorID)

	if !req.Tier.Valid() {
		s.logger.Warn("CreateService: invalid tier=%s", req.Tier)
		return nil, fmt.Errorf("%w: unknown tier", ErrInvalidInput)
	}

	business, err := s.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("CreateService: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("CreateService: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Create - get business: %w", ErrInternal, err)
	}

	if business.OwnerID != req.ActorID && !req.ActorIsAdmin {
		s.logger.Warn("CreateService: actor=%d is not owner of business=%d", req.ActorID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	exists, err := s.serviceRepo.ExistsByBusinessAndName(ctx, req.BusinessID, req.Name)
	if err != nil {
		s.logger.Error("CreateService: duplicate check failed: %v", err)
		return nil, fmt.Errorf("%w: Create - duplicate check: %w", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("CreateService: duplicate name=%s in business=%d", req.Name, req.BusinessID)
		return nil, ErrDuplicateName
	}

	service := &domain.Service{
		BusinessID:      req.BusinessID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Tier:            req.Tier,
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateService: service created id=%d, business=%d", created.ID, created.BusinessID)
	return created, nil
}
