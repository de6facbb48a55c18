package get_me

import (
	"time"

	"github.com/washify/marketplace-service/internal/service/auth"
	"github.com/washify/marketplace-service/pkg/tokens"
)

// CountsResponse агрегаты по связанным сущностям пользователя
type CountsResponse struct {
	OwnedBusinesses int64 `json:"ownedBusinesses"`
	Bookings        int64 `json:"bookings"`
	Reviews         int64 `json:"reviews"`
}

// TokenInfoResponse сроки действия текущего токена
type TokenInfoResponse struct {
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MeResponse тело ответа профиля
type MeResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	Phone     *string           `json:"phone,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	Counts    CountsResponse    `json:"counts"`
	TokenInfo TokenInfoResponse `json:"tokenInfo"`
}

// FromProfile собирает ответ из профиля и claims токена
func FromProfile(profile *auth.Profile, claims *tokens.Claims) MeResponse {
	resp := MeResponse{
		ID:        profile.User.ID,
		Name:      profile.User.Name,
		Email:     profile.User.Email,
		Role:      string(profile.User.Role),
		Phone:     profile.User.Phone,
		CreatedAt: profile.User.CreatedAt,
		Counts: CountsResponse{
			OwnedBusinesses: profile.Counts.OwnedBusinesses,
			Bookings:        profile.Counts.Bookings,
			Reviews:         profile.Counts.Reviews,
		},
	}
	if claims.IssuedAt != nil {
		resp.TokenInfo.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		resp.TokenInfo.ExpiresAt = claims.ExpiresAt.Time
	}
	return resp
}
