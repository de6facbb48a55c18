package businesses

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
	businessRepo "github.com/washify/marketplace-service/internal/infra/storage/business"
	userRepo "github.com/washify/marketplace-service/internal/infra/storage/user"
)

// Service сервис управления бизнесами
type Service struct {
	businessRepo BusinessRepository
	userRepo     UserRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(businessRepo BusinessRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CreateRequest входные данные регистрации бизнеса
type CreateRequest struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
	OwnerID int64
}

// Create регистрирует бизнес. Владельцем может быть только OPERATOR или
// ADMIN. Бизнес с тем же именем в радиусе 100 метров считается дублем.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Business, error) {
	s.logger.Info("CreateBusiness: name=%s, owner=%d", req.Name, req.OwnerID)

	owner, err := s.userRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("CreateBusiness: owner id=%d not found", req.OwnerID)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("CreateBusiness: failed to get owner id=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Create - get owner: %w", ErrInternal, err)
	}

	if !owner.CanOwnBusinesses() {
		s.logger.Warn("CreateBusiness: owner id=%d has role=%s, not allowed", owner.ID, owner.Role)
		return nil, ErrNotAllowed
	}

	exists, err := s.businessRepo.ExistsSameNameNearby(ctx, req.Name, req.Lat, req.Lng, domain.DuplicateBusinessRadiusKm)
	if err != nil {
		s.logger.Error("CreateBusiness: duplicate check failed: %v", err)
		return nil, fmt.Errorf("%w: Create - duplicate check: %w", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("CreateBusiness: duplicate listing name=%s at lat=%f, lng=%f", req.Name, req.Lat, req.Lng)
		return nil, ErrDuplicateListing
	}

	business := &domain.Business{
		Name:    req.Name,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
		OwnerID: req.OwnerID,
	}

	created, err := s.businessRepo.Create(ctx, business)
	if err != nil {
		s.logger.Error("CreateBusiness: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateBusiness: business created id=%d, owner=%d", created.ID, created.OwnerID)
	return created, nil
}

// GetByID получает бизнес по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetBusiness: business id=%d not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusiness: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}
	return business, nil
}
