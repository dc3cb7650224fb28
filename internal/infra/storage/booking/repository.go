package booking

import (
	"sort"
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Repository хранилище броней переговорной комнаты.
// Все брони держатся в памяти: date -> start -> booking. Карта защищена
// RWMutex; блокировка удерживается только на время мутации (без I/O).
type Repository struct {
	mu     sync.RWMutex
	byDate map[domain.DateKey]map[types.TimeString]domain.Booking
}

// NewRepository создает новый экземпляр хранилища броней
func NewRepository() *Repository {
	return &Repository{
		byDate: make(map[domain.DateKey]map[types.TimeString]domain.Booking),
	}
}

// Create добавляет бронь, если она не пересекается ни с одной существующей
// бронью на эту дату. Интервалы полуоткрытые: бронь, заканчивающаяся ровно в
// момент начала другой, конфликтом не считается. Повторная бронь на тот же
// (date, start) отклоняется как конфликт независимо от длительности.
func (r *Repository) Create(b domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.byDate[b.Date]
	if !ok {
		day = make(map[types.TimeString]domain.Booking)
		r.byDate[b.Date] = day
	}

	if _, taken := day[b.StartTime]; taken {
		return domain.Booking{}, ErrSlotConflict
	}
	for _, existing := range day {
		if existing.Overlaps(&b) {
			return domain.Booking{}, ErrSlotConflict
		}
	}

	day[b.StartTime] = b
	return b, nil
}

// Cancel удаляет бронь по ключу (date, start).
// Удалить бронь может только её владелец.
func (r *Repository) Cancel(date domain.DateKey, start types.TimeString, callerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.byDate[date]
	if !ok {
		return ErrBookingNotFound
	}
	b, ok := day[start]
	if !ok {
		return ErrBookingNotFound
	}
	if b.OwnerID != callerID {
		return ErrNotOwner
	}

	delete(day, start)
	if len(day) == 0 {
		delete(r.byDate, date)
	}
	return nil
}

// GetByOwner возвращает все брони пользователя, отсортированные хронологически
func (r *Repository) GetByOwner(ownerID int64) []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Booking
	for _, day := range r.byDate {
		for _, b := range day {
			if b.OwnerID == ownerID {
				out = append(out, b)
			}
		}
	}
	sortBookings(out)
	return out
}

// GetAll возвращает все брони, отсортированные по дате и времени начала
func (r *Repository) GetAll() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Booking
	for _, day := range r.byDate {
		for _, b := range day {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out
}

func sortBookings(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date.Before(bookings[j].Date)
		}
		return bookings[i].StartTime.IsBefore(bookings[j].StartTime)
	})
}
