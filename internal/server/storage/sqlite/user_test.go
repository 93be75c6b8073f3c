package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnlab/accesslab/internal/models"
	"github.com/vulnlab/accesslab/internal/server/storage"
)

// newTestStore создает in-memory хранилище с миграциями и seed-набором
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestNew_SeedsEmptyDatabase(t *testing.T) {
	s := newTestStore(t)

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "admin", u.Role)

	_, err = s.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)
}

func TestGetByID_ProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)

	u, err := s.GetByID(context.Background(), 2)
	require.NoError(t, err)

	require.NotNil(t, u.Profile)
	assert.Equal(t, "John Doe", u.Profile.FullName)
	assert.Equal(t, "Marketing", u.Profile.Department)
	assert.Equal(t, float64(65000), u.Profile.Salary)
	assert.Equal(t, "987-65-4321", u.Profile.SSN)

	_, err = s.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestList_Order(t *testing.T) {
	s := newTestStore(t)

	users, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 4)

	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "bob", users[3].Username)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	phone := "+1-555-9999"
	salary := 150000.0
	u, err := s.UpdateProfile(ctx, 3, models.ProfilePatch{Phone: &phone, Salary: &salary})
	require.NoError(t, err)

	assert.Equal(t, "+1-555-9999", u.Profile.Phone)
	assert.Equal(t, float64(150000), u.Profile.Salary)
	assert.Equal(t, "Jane Smith", u.Profile.FullName)

	// Изменения видны при повторном чтении
	again, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "+1-555-9999", again.Profile.Phone)

	_, err = s.UpdateProfile(ctx, 42, models.ProfilePatch{Phone: &phone})
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestDeleteAndReset(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 1))
	assert.ErrorIs(t, s.Delete(ctx, 1), storage.ErrUserNotFound)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, s.Reset(ctx))

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "admin123", users[0].Password)
}

func TestSetRole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.SetRole(ctx, 4, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)

	_, err = s.SetRole(ctx, 42, "admin")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
