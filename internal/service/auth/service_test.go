package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/washify/marketplace-service/internal/domain"
	userRepo "github.com/washify/marketplace-service/internal/infra/storage/user"
)

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
	counts    *domain.UserCounts
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	created := *user
	created.ID = int64(len(f.users) + 1)
	f.users[user.Email] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetCounts(context.Context, int64) (*domain.UserCounts, error) {
	if f.counts != nil {
		return f.counts, nil
	}
	return &domain.UserCounts{}, nil
}

type fakeSigner struct{}

func (fakeSigner) Sign(int64, string, string) (string, error) {
	return "signed-token", nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(repo, fakeSigner{}, bcrypt.MinCost, noopLogger{})
}

func TestSignup_DefaultRoleAndNormalizedEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	result, err := svc.Signup(context.Background(), &SignupRequest{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, domain.RoleCustomer, result.User.Role)
	assert.Equal(t, "signed-token", result.Token)
	assert.NotEqual(t, "secret123", result.User.PasswordHash)
}

func TestSignup_InvalidRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Email:    "user@example.com",
		Password: "secret123",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignup_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), &SignupRequest{Email: "user@example.com", Password: "pass1"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), &SignupRequest{Email: "USER@example.com", Password: "pass2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), &SignupRequest{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "User@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), &SignupRequest{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret123")
	_, errWrongPass := svc.Login(context.Background(), "user@example.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestMe_NotFound(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Me(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMe_ReturnsCounts(t *testing.T) {
	repo := newFakeUserRepo()
	repo.counts = &domain.UserCounts{Bookings: 3, Reviews: 1}
	svc := newTestService(repo)

	result, err := svc.Signup(context.Background(), &SignupRequest{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)

	profile, err := svc.Me(context.Background(), result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.Counts.Bookings)
}
