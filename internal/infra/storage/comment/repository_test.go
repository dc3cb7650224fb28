package comment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var day = domain.NewDateKey(2024, time.June, 10)

func TestSetAndGet(t *testing.T) {
	repo := NewRepository()

	err := repo.Set(1, day, "  в офисе после обеда  ")
	require.NoError(t, err)

	text, err := repo.Get(1, day)
	require.NoError(t, err)
	assert.Equal(t, "в офисе после обеда", text)

	// Перезапись заменяет текст
	err = repo.Set(1, day, "весь день на созвонах")
	require.NoError(t, err)
	text, _ = repo.Get(1, day)
	assert.Equal(t, "весь день на созвонах", text)
}

func TestSetRejectsEmpty(t *testing.T) {
	repo := NewRepository()

	assert.ErrorIs(t, repo.Set(1, day, ""), ErrEmptyComment)
	assert.ErrorIs(t, repo.Set(1, day, "   \t\n"), ErrEmptyComment)

	_, err := repo.Get(1, day)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewRepository()

	require.NoError(t, repo.Set(1, day, "заметка"))
	require.NoError(t, repo.Delete(1, day))

	_, err := repo.Get(1, day)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	assert.ErrorIs(t, repo.Delete(1, day), ErrCommentNotFound)
	assert.ErrorIs(t, repo.Delete(99, day), ErrCommentNotFound)
}

func TestGetByUser(t *testing.T) {
	repo := NewRepository()

	require.NoError(t, repo.Set(1, day, "раз"))
	require.NoError(t, repo.Set(1, day.AddDays(1), "два"))
	require.NoError(t, repo.Set(2, day, "чужая"))

	comments := repo.GetByUser(1)
	assert.Len(t, comments, 2)
	for _, c := range comments {
		assert.Equal(t, int64(1), c.UserID)
	}
}

func TestPurgeUser(t *testing.T) {
	repo := NewRepository()

	require.NoError(t, repo.Set(1, day, "раз"))
	require.NoError(t, repo.Set(1, day.AddDays(1), "два"))
	require.NoError(t, repo.Set(2, day, "чужая"))

	assert.Equal(t, 2, repo.PurgeUser(1))
	assert.Equal(t, 0, repo.PurgeUser(1))

	_, err := repo.Get(1, day)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	// Заметки других пользователей не затронуты
	text, err := repo.Get(2, day)
	require.NoError(t, err)
	assert.Equal(t, "чужая", text)
}

func TestPurgeAll(t *testing.T) {
	repo := NewRepository()

	require.NoError(t, repo.Set(1, day, "раз"))
	require.NoError(t, repo.Set(2, day, "два"))
	require.NoError(t, repo.Set(2, day.AddDays(1), "три"))

	assert.Equal(t, 3, repo.PurgeAll())
	assert.Equal(t, 0, repo.PurgeAll())
	assert.Empty(t, repo.GetByUser(2))
}
