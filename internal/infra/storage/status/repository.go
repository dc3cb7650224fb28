package status

import (
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Repository календарь статусов работы сотрудников.
// Для каждого пользователя хранится карта date -> status, материализованная
// только в пределах скользящего окна [today, today+9].
type Repository struct {
	mu     sync.Mutex
	byUser map[int64]map[domain.DateKey]domain.WorkStatus
}

// NewRepository создает новый календарь статусов
func NewRepository() *Repository {
	return &Repository{
		byUser: make(map[int64]map[domain.DateKey]domain.WorkStatus),
	}
}

// GetWindow возвращает ровно StatusWindowDays записей для дней
// today..today+9. Отсутствующие дни материализуются значением по умолчанию
// (Weekend для субботы/воскресенья, иначе Office) — это намеренный побочный
// эффект просмотра. Дни за пределами окна удаляются из хранилища.
func (r *Repository) GetWindow(userID int64, today domain.DateKey) []domain.StatusEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	days := r.materializeWindow(userID, today)

	entries := make([]domain.StatusEntry, 0, domain.StatusWindowDays)
	for i := 0; i < domain.StatusWindowDays; i++ {
		date := today.AddDays(i)
		entries = append(entries, domain.StatusEntry{
			UserID: userID,
			Date:   date,
			Status: days[date],
		})
	}
	return entries
}

// Toggle переводит статус на дату к следующему значению цикла.
// Для будних дней цикл Office -> Remote -> BusinessTrip -> SickLeave ->
// Vacation -> Office, для выходных Weekend -> BusinessTrip -> Vacation ->
// Weekend. Дата за пределами окна отклоняется.
func (r *Repository) Toggle(userID int64, date domain.DateKey, today domain.DateKey) (domain.WorkStatus, error) {
	if !date.InWindow(today) {
		return "", ErrOutOfWindow
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	days := r.materializeWindow(userID, today)
	next := domain.NextStatus(days[date], date)
	days[date] = next
	return next, nil
}

// materializeWindow приводит карту пользователя к текущему окну: создает
// отсутствующие дни со значениями по умолчанию и выбрасывает дни вне окна.
// Вызывается строго под блокировкой.
func (r *Repository) materializeWindow(userID int64, today domain.DateKey) map[domain.DateKey]domain.WorkStatus {
	days, ok := r.byUser[userID]
	if !ok {
		days = make(map[domain.DateKey]domain.WorkStatus, domain.StatusWindowDays)
		r.byUser[userID] = days
	}

	for date := range days {
		if !date.InWindow(today) {
			delete(days, date)
		}
	}

	for i := 0; i < domain.StatusWindowDays; i++ {
		date := today.AddDays(i)
		if _, ok := days[date]; !ok {
			days[date] = domain.DefaultStatus(date)
		}
	}
	return days
}

// KnownUsers возвращает идентификаторы пользователей, у которых есть
// материализованный календарь
func (r *Repository) KnownUsers() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, 0, len(r.byUser))
	for id := range r.byUser {
		out = append(out, id)
	}
	return out
}
