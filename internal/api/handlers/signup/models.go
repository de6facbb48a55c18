package signup

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// SignupRequest тело запроса регистрации
type SignupRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role" validate:"omitempty,oneof=CUSTOMER OPERATOR ADMIN"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
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

// SignupResponse тело ответа регистрации
type SignupResponse struct {
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
