package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/washify/marketplace-service/internal/domain"
	userRepo "github.com/washify/marketplace-service/internal/infra/storage/user"
)

// Service сервис регистрации и аутентификации
type Service struct {
	userRepo   UserRepository
	signer     TokenSigner
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, signer TokenSigner, bcryptCost int, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		signer:     signer,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// SignupRequest входные данные регистрации
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Role     domain.UserRole
	Phone    *string
}

// AuthResult пользователь и выпущенный для него токен
type AuthResult struct {
	User  *domain.User
	Token string
}

// Profile профиль текущего пользователя с агрегатами
type Profile struct {
	User   *domain.User
	Counts *domain.UserCounts
}

// Signup регистрирует пользователя и сразу выпускает токен.
// Роль по умолчанию CUSTOMER, email нормализуется к нижнему регистру.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Signup: registering user email=%s, role=%s", email, req.Role)

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		s.logger.Warn("Signup: invalid role=%s", req.Role)
		return nil, fmt.Errorf("%w: unknown role", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Signup: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Signup - hash password: %w", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Signup: email already taken: %s", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Signup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Signup - repository error: %w", ErrInternal, err)
	}

	token, err := s.signer.Sign(created.ID, created.Email, string(created.Role))
	if err != nil {
		s.logger.Error("Signup: failed to sign token for user=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Signup - sign token: %w", ErrInternal, err)
	}

	s.logger.Info("Signup: user registered id=%d, email=%s", created.ID, created.Email)
	return &AuthResult{User: created, Token: token}, nil
}

// Login проверяет пару email/пароль и выпускает токен.
// Любая причина отказа возвращается как ErrInvalidCredentials, чтобы
// не раскрывать существование учетной записи.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.logger.Info("Login: attempt for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user not found: %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %w", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.signer.Sign(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to sign token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - sign token: %w", ErrInternal, err)
	}

	s.logger.Info("Login: success for user=%d", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

// Me возвращает профиль текущего пользователя с агрегатами
func (s *Service) Me(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Me: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Me: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Me - repository error: %w", ErrInternal, err)
	}

	counts, err := s.userRepo.GetCounts(ctx, userID)
	if err != nil {
		s.logger.Error("Me: failed to get counts for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Me - get counts: %w", ErrInternal, err)
	}

	return &Profile{User: user, Counts: counts}, nil
}
