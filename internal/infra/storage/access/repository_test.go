package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialAdmins(t *testing.T) {
	repo := NewRepository([]int64{100, 200})

	assert.True(t, repo.IsAdmin(100))
	assert.True(t, repo.IsAdmin(200))
	assert.False(t, repo.IsAdmin(300))
	assert.ElementsMatch(t, []int64{100, 200}, repo.Admins())
}

func TestRestrictIsIdempotent(t *testing.T) {
	repo := NewRepository(nil)

	repo.Restrict(1)
	repo.Restrict(1)
	assert.True(t, repo.IsRestricted(1))
}

func TestRestrictRemovesAdmin(t *testing.T) {
	repo := NewRepository([]int64{100})

	repo.Restrict(100)
	assert.True(t, repo.IsRestricted(100))
	assert.False(t, repo.IsAdmin(100))
}

func TestUnrestrict(t *testing.T) {
	repo := NewRepository(nil)

	repo.Restrict(1)
	require.NoError(t, repo.Unrestrict(1))
	assert.False(t, repo.IsRestricted(1))

	assert.ErrorIs(t, repo.Unrestrict(1), ErrNotRestricted)
	assert.ErrorIs(t, repo.Unrestrict(99), ErrNotRestricted)
}

func TestPromote(t *testing.T) {
	repo := NewRepository(nil)

	require.NoError(t, repo.Promote(1))
	assert.True(t, repo.IsAdmin(1))

	assert.ErrorIs(t, repo.Promote(1), ErrAlreadyAdmin)
}

func TestPromoteClearsRestriction(t *testing.T) {
	repo := NewRepository(nil)

	repo.Restrict(1)
	require.NoError(t, repo.Promote(1))
	assert.True(t, repo.IsAdmin(1))
	assert.False(t, repo.IsRestricted(1))
}

func TestDemote(t *testing.T) {
	repo := NewRepository([]int64{100, 200})

	require.NoError(t, repo.Demote(200, 100))
	assert.False(t, repo.IsAdmin(200))

	assert.ErrorIs(t, repo.Demote(200, 100), ErrNotAdmin)
	assert.ErrorIs(t, repo.Demote(100, 100), ErrSelfDemote)

	// Последнего администратора снять можно
	require.NoError(t, repo.Promote(200))
	require.NoError(t, repo.Demote(100, 200))
	require.NoError(t, repo.Demote(200, 999))
	assert.Empty(t, repo.Admins())
}
