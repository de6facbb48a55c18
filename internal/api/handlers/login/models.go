package login

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// LoginRequest тело запроса входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse карточка пользователя в ответе
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse тело ответа входа
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// FromDomainUser конвертирует доменного пользователя в ответ
func FromDomainUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}
