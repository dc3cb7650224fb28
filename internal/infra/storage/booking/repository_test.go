package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestCreateRejectsOverlap(t *testing.T) {
	repo := NewRepository()
	date := domain.NewDateKey(2024, time.June, 10)

	_, err := repo.Create(domain.Booking{
		Date: date, StartTime: mustTime(t, "09:00"), DurationMinutes: 60, OwnerID: 1,
	})
	require.NoError(t, err)

	// 09:30 попадает внутрь интервала [09:00, 10:00)
	_, err = repo.Create(domain.Booking{
		Date: date, StartTime: mustTime(t, "09:30"), DurationMinutes: 30, OwnerID: 2,
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	// 10:00 начинается ровно в момент окончания первой брони
	_, err = repo.Create(domain.Booking{
		Date: date, StartTime: mustTime(t, "10:00"), DurationMinutes: 30, OwnerID: 2,
	})
	assert.NoError(t, err)
}

func TestCreateRejectsDuplicateStart(t *testing.T) {
	repo := NewRepository()
	date := domain.NewDateKey(2024, time.June, 10)

	_, err := repo.Create(domain.Booking{
		Date: date, StartTime: mustTime(t, "14:00"), DurationMinutes: 30, OwnerID: 1,
	})
	require.NoError(t, err)

	_, err = repo.Create(domain.Booking{
		Date: date, StartTime: mustTime(t, "14:00"), DurationMinutes: 90, OwnerID: 2,
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateDifferentDatesDoNotConflict(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Create(domain.Booking{
		Date: domain.NewDateKey(2024, time.June, 10), StartTime: mustTime(t, "09:00"), DurationMinutes: 60, OwnerID: 1,
	})
	require.NoError(t, err)

	_, err = repo.Create(domain.Booking{
		Date: domain.NewDateKey(2024, time.June, 11), StartTime: mustTime(t, "09:00"), DurationMinutes: 60, OwnerID: 2,
	})
	assert.NoError(t, err)
}

func TestCancel(t *testing.T) {
	repo := NewRepository()
	date := domain.NewDateKey(2024, time.June, 10)
	start := mustTime(t, "09:00")

	_, err := repo.Create(domain.Booking{Date: date, StartTime: start, DurationMinutes: 60, OwnerID: 1})
	require.NoError(t, err)

	// Чужую бронь отменить нельзя
	err = repo.Cancel(date, start, 2)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = repo.Cancel(date, start, 1)
	require.NoError(t, err)

	// Повторная отмена - бронь уже не существует
	err = repo.Cancel(date, start, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Освобождённый слот можно занять снова
	_, err = repo.Create(domain.Booking{Date: date, StartTime: start, DurationMinutes: 30, OwnerID: 2})
	assert.NoError(t, err)
}

func TestCancelUnknownDate(t *testing.T) {
	repo := NewRepository()
	err := repo.Cancel(domain.NewDateKey(2024, time.June, 10), mustTime(t, "09:00"), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByOwnerSorted(t *testing.T) {
	repo := NewRepository()
	d1 := domain.NewDateKey(2024, time.June, 10)
	d2 := domain.NewDateKey(2024, time.June, 12)

	for _, b := range []domain.Booking{
		{Date: d2, StartTime: mustTime(t, "09:00"), DurationMinutes: 30, OwnerID: 1},
		{Date: d1, StartTime: mustTime(t, "15:00"), DurationMinutes: 30, OwnerID: 1},
		{Date: d1, StartTime: mustTime(t, "09:00"), DurationMinutes: 30, OwnerID: 2},
		{Date: d1, StartTime: mustTime(t, "10:00"), DurationMinutes: 30, OwnerID: 1},
	} {
		_, err := repo.Create(b)
		require.NoError(t, err)
	}

	mine := repo.GetByOwner(1)
	require.Len(t, mine, 3)
	assert.Equal(t, d1, mine[0].Date)
	assert.Equal(t, "10:00", mine[0].StartTime.String())
	assert.Equal(t, "15:00", mine[1].StartTime.String())
	assert.Equal(t, d2, mine[2].Date)

	all := repo.GetAll()
	require.Len(t, all, 4)
	assert.Equal(t, "09:00", all[0].StartTime.String())
	assert.Equal(t, int64(2), all[0].OwnerID)
}

func TestGetByOwnerEmpty(t *testing.T) {
	repo := NewRepository()
	assert.Empty(t, repo.GetByOwner(42))
	assert.Empty(t, repo.GetAll())
}
