package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
	userRepo "github.com/washify/marketplace-service/internal/infra/storage/user"
)

// Service административный сервис управления пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListResult страница пользователей со статистикой по ролям
type ListResult struct {
	Users     []*domain.User
	Total     int64
	RoleStats map[domain.UserRole]int64
}

// List возвращает страницу пользователей с фильтрацией по роли и поиском
// по имени/email, плюс распределение всех пользователей по ролям
func (s *Service) List(ctx context.Context, filter domain.UsersFilter) (*ListResult, error) {
	s.logger.Info("ListUsers: role=%v, search=%v, limit=%d, offset=%d",
		filter.Role, filter.Search, filter.Limit, filter.Offset)

	if filter.Role != nil && !filter.Role.Valid() {
		s.logger.Warn("ListUsers: invalid role filter=%s", *filter.Role)
		return nil, fmt.Errorf("%w: unknown role", ErrInvalidInput)
	}

	list, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListUsers: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %w", ErrInternal, err)
	}

	roleStats, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		s.logger.Error("ListUsers: role stats error: %v", err)
		return nil, fmt.Errorf("%w: List - role stats error: %w", ErrInternal, err)
	}

	return &ListResult{Users: list, Total: total, RoleStats: roleStats}, nil
}

// Delete удаляет пользователя и возвращает его карточку. Администратор
// не может удалить себя. Связанные бизнесы, бронирования, платежи и отзывы
// удаляются каскадно ограничениями БД.
func (s *Service) Delete(ctx context.Context, id, actorID int64) (*domain.User, error) {
	s.logger.Info("DeleteUser: id=%d, actor=%d", id, actorID)

	if id == actorID {
		s.logger.Warn("DeleteUser: actor=%d attempted self-deletion", actorID)
		return nil, ErrSelfDeletion
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("DeleteUser: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("DeleteUser: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("DeleteUser: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("DeleteUser: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("DeleteUser: user id=%d deleted by actor=%d", id, actorID)
	return user, nil
}
