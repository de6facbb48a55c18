package delete_user

import "github.com/washify/marketplace-service/internal/domain"

// DeletedUserResponse карточка удаленного пользователя
type DeletedUserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DeleteUserResponse тело ответа удаления пользователя
type DeleteUserResponse struct {
	Message     string              `json:"message"`
	DeletedUser DeletedUserResponse `json:"deletedUser"`
}

// FromDomainUser конвертирует доменного пользователя в карточку ответа
func FromDomainUser(user *domain.User) DeletedUserResponse {
	return DeletedUserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
