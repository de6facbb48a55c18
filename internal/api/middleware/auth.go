package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/pkg/tokens"
)

const (
	msgMissingToken     = "требуется авторизация"
	msgInvalidToken     = "недействительный токен"
	msgExpiredToken     = "срок действия токена истек"
	msgInsufficientRole = "недостаточно прав для выполнения операции"
)

type contextKey string

const claimsContextKey contextKey = "authClaims"

// TokenVerifier проверяет JWT и возвращает claims
type TokenVerifier interface {
	Verify(tokenString string) (*tokens.Claims, error)
}

// Logger интерфейс логгера для middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

// Authenticator навешивает проверку JWT на маршруты
type Authenticator struct {
	verifier TokenVerifier
	logger   Logger
}

func NewAuthenticator(verifier TokenVerifier, logger Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireUser требует валидный токен любой роли
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// RequireOperator требует роль OPERATOR или ADMIN
func (a *Authenticator) RequireOperator(next http.Handler) http.Handler {
	return a.requireRoles(next, domain.RoleOperator, domain.RoleAdmin)
}

// RequireAdmin требует роль ADMIN
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.requireRoles(next, domain.RoleAdmin)
}

// OptionalAuth кладет claims в контекст, если токен передан и валиден.
// Запросы без токена проходят дальше без claims.
func (a *Authenticator) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractBearerToken(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := a.verifier.Verify(tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func (a *Authenticator) requireRoles(next http.Handler, roles ...domain.UserRole) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.authenticate(w, r)
		if !ok {
			return
		}

		allowed := false
		for _, role := range roles {
			if claims.Role == string(role) {
				allowed = true
				break
			}
		}

		if !allowed {
			a.logger.Warn("%s %s - Forbidden: user_id=%d, role=%s", r.Method, r.URL.Path, claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgInsufficientRole)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func (a *Authenticator) authenticate(w http.ResponseWriter, r *http.Request) (*tokens.Claims, bool) {
	tokenString := extractBearerToken(r)
	if tokenString == "" {
		handlers.RespondUnauthorized(w, msgMissingToken)
		return nil, false
	}

	claims, err := a.verifier.Verify(tokenString)
	if err != nil {
		if err == tokens.ErrTokenExpired {
			handlers.RespondUnauthorized(w, msgExpiredToken)
		} else {
			handlers.RespondUnauthorized(w, msgInvalidToken)
		}
		return nil, false
	}

	return claims, true
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func withClaims(ctx context.Context, claims *tokens.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetClaims достает claims из контекста запроса
func GetClaims(ctx context.Context) (*tokens.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*tokens.Claims)
	return claims, ok
}

// GetUserID достает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
