package list_users

import (
	"time"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/users"
)

// UserResponse карточка пользователя в списке
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse тело ответа списка пользователей
type ListUsersResponse struct {
	Users      []UserResponse      `json:"users"`
	RoleStats  map[string]int64    `json:"stats"`
	Pagination handlers.Pagination `json:"pagination"`
}

// FromListResult конвертирует результат сервиса в ответ
func FromListResult(result *users.ListResult, limit, offset uint64) ListUsersResponse {
	list := make([]UserResponse, 0, len(result.Users))
	for _, user := range result.Users {
		list = append(list, UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      string(user.Role),
			Phone:     user.Phone,
			CreatedAt: user.CreatedAt,
		})
	}

	roleStats := make(map[string]int64, len(result.RoleStats))
	for role, count := range result.RoleStats {
		roleStats[string(role)] = count
	}

	return ListUsersResponse{
		Users:      list,
		RoleStats:  roleStats,
		Pagination: handlers.NewPagination(result.Total, limit, offset),
	}
}

// ParseFilter читает фильтр списка из query-параметров
func ParseFilter(role, search string, limit, offset uint64) domain.UsersFilter {
	filter := domain.UsersFilter{Limit: limit, Offset: offset}
	if role != "" {
		userRole := domain.UserRole(role)
		filter.Role = &userRole
	}
	if search != "" {
		filter.Search = &search
	}
	return filter
}
