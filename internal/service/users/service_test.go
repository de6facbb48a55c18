package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	userRepo "github.com/washify/marketplace-service/internal/infra/storage/user"
	"github.com/washify/marketplace-service/pkg/ptr"
)

type fakeUserRepo struct {
	users     []*domain.User
	roleStats map[domain.UserRole]int64
	deleteErr error
	deletedID int64
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) List(context.Context, domain.UsersFilter) ([]*domain.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) Count(context.Context, domain.UsersFilter) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(context.Context) (map[domain.UserRole]int64, error) {
	return f.roleStats, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestList_ReturnsRoleStats(t *testing.T) {
	repo := &fakeUserRepo{
		users: []*domain.User{{ID: 1, Role: domain.RoleCustomer}},
		roleStats: map[domain.UserRole]int64{
			domain.RoleCustomer: 5,
			domain.RoleAdmin:    1,
		},
	}
	svc := NewService(repo, noopLogger{})

	result, err := svc.List(context.Background(), domain.UsersFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, int64(5), result.RoleStats[domain.RoleCustomer])
}

func TestList_InvalidRoleFilter(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, noopLogger{})

	role := domain.UserRole("SUPERUSER")
	_, err := svc.List(context.Background(), domain.UsersFilter{Role: &role})
	assert.ErrorIs(t, err, ErrInvalidInput)

	valid := domain.RoleOperator
	_, err = svc.List(context.Background(), domain.UsersFilter{Role: &valid, Search: ptr.Ptr("ann")})
	assert.NoError(t, err)
}

func TestDelete_ReturnsDeletedUser(t *testing.T) {
	repo := &fakeUserRepo{
		users: []*domain.User{{ID: 7, Name: "Bob", Email: "bob@example.com", Role: domain.RoleOperator}},
	}
	svc := NewService(repo, noopLogger{})

	deleted, err := svc.Delete(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.deletedID)
	assert.Equal(t, "bob@example.com", deleted.Email)
}

func TestDelete_SelfDeletionForbidden(t *testing.T) {
	repo := &fakeUserRepo{users: []*domain.User{{ID: 1}}}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfDeletion)
	assert.Zero(t, repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, noopLogger{})

	_, err := svc.Delete(context.Background(), 404, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
