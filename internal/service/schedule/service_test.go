package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	accessStorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/access"
	bookingStorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	commentStorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/comment"
	profileStorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/profile"
	statusStorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/status"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	adminID      = int64(100)
	userID       = int64(1)
	otherUserID  = int64(2)
	strangerID   = int64(3)
	testTimezone = "Europe/Moscow"
)

// stubTimeProvider фиксирует часы сервиса на 2024-06-10 (понедельник)
type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	svc      *Service
	bookings *bookingStorage.Repository
	statuses *statusStorage.Repository
	comments *commentStorage.Repository
	access   *accessStorage.Repository
	profiles *profileStorage.Repository
	clock    *stubTimeProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation(testTimezone)
	require.NoError(t, err)

	f := &fixture{
		bookings: bookingStorage.NewRepository(),
		statuses: statusStorage.NewRepository(),
		comments: commentStorage.NewRepository(),
		access:   accessStorage.NewRepository([]int64{adminID}),
		profiles: profileStorage.NewRepository(),
		clock:    &stubTimeProvider{now: time.Date(2024, time.June, 10, 12, 0, 0, 0, loc)},
	}
	f.svc = NewService(f.bookings, f.statuses, f.comments, f.access, f.profiles, f.clock, noopLogger{})
	return f
}

func (f *fixture) today() domain.DateKey {
	return domain.DateKeyFromTime(f.clock.now)
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestRestrictedUserRejectedEverywhere(t *testing.T) {
	f := newFixture(t)
	f.access.Restrict(userID)
	date := f.today()

	_, err := f.svc.ListMine(userID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.ListAll(userID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.GetWindow(userID, userID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.ToggleStatus(userID, date)
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.ErrorIs(t, f.svc.AddComment(userID, date, "текст"), ErrUnauthorized)
	assert.ErrorIs(t, f.svc.DeleteComment(userID, date), ErrUnauthorized)
	assert.ErrorIs(t, f.svc.SetDisplayName(userID, "Иван"), ErrUnauthorized)
	assert.ErrorIs(t, f.svc.Cancel(date, mustTime(t, "09:00"), userID), ErrUnauthorized)
	assert.ErrorIs(t, f.svc.Restrict(userID, otherUserID), ErrUnauthorized)
}

func TestEnsureUserAllowedWhenRestricted(t *testing.T) {
	f := newFixture(t)
	f.access.Restrict(userID)

	resp := f.svc.EnsureUser(userID, "Иван")
	assert.Equal(t, "Иван", resp.DisplayName)
	assert.True(t, resp.IsRestricted)
	assert.False(t, resp.IsAdmin)
}

func TestEnsureUserKeepsExistingName(t *testing.T) {
	f := newFixture(t)

	f.svc.EnsureUser(userID, "Иван")
	require.NoError(t, f.svc.SetDisplayName(userID, "Иван Петров"))

	resp := f.svc.EnsureUser(userID, "Иван")
	assert.Equal(t, "Иван Петров", resp.DisplayName)
}

func TestCancelMapsRepositoryErrors(t *testing.T) {
	f := newFixture(t)
	date := f.today()
	start := mustTime(t, "09:00")

	_, err := f.bookings.Create(domain.Booking{
		Date: date, StartTime: start, DurationMinutes: 60, OwnerID: userID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Cancel(date, start, otherUserID), ErrNotOwner)
	assert.NoError(t, f.svc.Cancel(date, start, userID))
	assert.ErrorIs(t, f.svc.Cancel(date, start, userID), ErrBookingNotFound)
}

func TestListAllGroupsByDay(t *testing.T) {
	f := newFixture(t)
	d1 := f.today()
	d2 := d1.AddDays(1)
	f.svc.EnsureUser(userID, "Иван")

	for _, b := range []domain.Booking{
		{Date: d2, StartTime: mustTime(t, "09:00"), DurationMinutes: 30, OwnerID: userID},
		{Date: d1, StartTime: mustTime(t, "10:00"), DurationMinutes: 30, OwnerID: userID},
		{Date: d1, StartTime: mustTime(t, "09:00"), DurationMinutes: 30, OwnerID: otherUserID},
	} {
		_, err := f.bookings.Create(b)
		require.NoError(t, err)
	}

	resp, err := f.svc.ListAll(userID)
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, d1.String(), resp.Days[0].Date)
	require.Len(t, resp.Days[0].Bookings, 2)
	assert.Equal(t, "09:00", resp.Days[0].Bookings[0].StartTime)
	assert.Equal(t, "Иван", resp.Days[0].Bookings[1].OwnerName)
	require.Len(t, resp.Days[1].Bookings, 1)
}

func TestGetWindowSelfAndAdminGating(t *testing.T) {
	f := newFixture(t)

	// Своё окно открыто любому активному пользователю
	resp, err := f.svc.GetWindow(userID, userID)
	require.NoError(t, err)
	assert.Len(t, resp.Entries, domain.StatusWindowDays)

	// Чужое окно доступно только администратору
	_, err = f.svc.GetWindow(userID, otherUserID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	resp, err = f.svc.GetWindow(adminID, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
}

func TestGetWindowJoinsComments(t *testing.T) {
	f := newFixture(t)
	date := f.today().AddDays(2)

	require.NoError(t, f.svc.AddComment(userID, date, "в офисе до обеда"))

	resp, err := f.svc.GetWindow(userID, userID)
	require.NoError(t, err)
	assert.Equal(t, "в офисе до обеда", resp.Entries[2].Comment)
	assert.Empty(t, resp.Entries[0].Comment)
}

func TestToggleStatus(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.ToggleStatus(userID, f.today())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRemote), resp.Status)

	_, err = f.svc.ToggleStatus(userID, f.today().AddDays(10))
	assert.ErrorIs(t, err, ErrOutOfWindow)
}

func TestAddCommentValidation(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.svc.AddComment(userID, f.today(), "   "), ErrEmptyComment)
	assert.ErrorIs(t, f.svc.DeleteComment(userID, f.today()), ErrCommentNotFound)
}

func TestSetDisplayNameValidation(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.svc.SetDisplayName(userID, "  "), ErrEmptyName)

	long := make([]rune, domain.MaxDisplayNameLength+1)
	for i := range long {
		long[i] = 'я'
	}
	assert.ErrorIs(t, f.svc.SetDisplayName(userID, string(long)), ErrNameTooLong)

	// Ровно 50 символов проходит
	assert.NoError(t, f.svc.SetDisplayName(userID, string(long[:domain.MaxDisplayNameLength])))
}

func TestRestrictPurgesComments(t *testing.T) {
	f := newFixture(t)
	date := f.today()

	require.NoError(t, f.svc.AddComment(userID, date, "заметка"))
	require.NoError(t, f.svc.Restrict(adminID, userID))

	assert.True(t, f.access.IsRestricted(userID))
	assert.Empty(t, f.comments.GetByUser(userID))

	// Разблокировка возвращает доступ, но не заметки
	require.NoError(t, f.svc.Unrestrict(adminID, userID))
	assert.False(t, f.access.IsRestricted(userID))
	assert.Empty(t, f.comments.GetByUser(userID))
}

func TestAccessOperationsRequireAdmin(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.svc.Restrict(userID, otherUserID), ErrUnauthorized)
	assert.ErrorIs(t, f.svc.Unrestrict(userID, otherUserID), ErrUnauthorized)
	assert.ErrorIs(t, f.svc.Promote(userID, otherUserID), ErrUnauthorized)
	assert.ErrorIs(t, f.svc.Demote(userID, adminID), ErrUnauthorized)

	_, err := f.svc.ListUsers(userID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPromoteAndDemote(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Promote(adminID, userID))
	assert.ErrorIs(t, f.svc.Promote(adminID, userID), ErrAlreadyAdmin)

	assert.ErrorIs(t, f.svc.Demote(adminID, adminID), ErrSelfDemote)
	assert.ErrorIs(t, f.svc.Demote(adminID, strangerID), ErrNotAdminTarget)
	require.NoError(t, f.svc.Demote(adminID, userID))
	assert.False(t, f.access.IsAdmin(userID))
}

func TestUnrestrictNotRestricted(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.Unrestrict(adminID, userID), ErrNotRestricted)
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)

	f.svc.EnsureUser(userID, "Иван")
	f.svc.EnsureUser(adminID, "Админ")
	f.svc.EnsureUser(otherUserID, "Мария")
	require.NoError(t, f.svc.Restrict(adminID, otherUserID))

	resp, err := f.svc.ListUsers(adminID)
	require.NoError(t, err)
	require.Len(t, resp.Users, 3)

	byID := make(map[int64]bool)
	for _, u := range resp.Users {
		byID[u.UserID] = true
		switch u.UserID {
		case adminID:
			assert.True(t, u.IsAdmin)
			assert.False(t, u.IsRestricted)
		case otherUserID:
			assert.False(t, u.IsAdmin)
			assert.True(t, u.IsRestricted)
		default:
			assert.False(t, u.IsAdmin)
			assert.False(t, u.IsRestricted)
		}
	}
	assert.Len(t, byID, 3)
}
