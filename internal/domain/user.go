package domain

import "time"

// UserRole represents the role of a user in the marketplace
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleOperator UserRole = "OPERATOR"
	RoleAdmin    UserRole = "ADMIN"
)

// Valid returns true if the role is one of the known roles
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// User represents a registered user
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Phone        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanOwnBusinesses returns true if the user may register businesses
func (u *User) CanOwnBusinesses() bool {
	return u.Role == RoleOperator || u.Role == RoleAdmin
}

// UserCounts агрегаты по связанным сущностям пользователя
type UserCounts struct {
	OwnedBusinesses int64
	Bookings        int64
	Reviews         int64
}

// UsersFilter фильтр для выборки пользователей (админка)
type UsersFilter struct {
	Role   *UserRole // Фильтр по роли (опционально)
	Search *string   // Подстрока имени или email, регистронезависимо (опционально)
	Limit  uint64
	Offset uint64
}
