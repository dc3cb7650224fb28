package profile

import (
	"sort"
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Repository хранилище профилей пользователей (отображаемых имён)
type Repository struct {
	mu     sync.RWMutex
	byUser map[int64]domain.UserProfile
}

// NewRepository создает хранилище профилей
func NewRepository() *Repository {
	return &Repository{
		byUser: make(map[int64]domain.UserProfile),
	}
}

// Ensure регистрирует пользователя при первом контакте с именем, которое
// сообщила платформа. Уже существующий профиль не перезаписывается.
func (r *Repository) Ensure(userID int64, platformName string) domain.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.byUser[userID]; ok {
		return p
	}
	p := domain.UserProfile{UserID: userID, DisplayName: platformName}
	r.byUser[userID] = p
	return p
}

// SetDisplayName устанавливает отображаемое имя пользователя
func (r *Repository) SetDisplayName(userID int64, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = domain.UserProfile{UserID: userID, DisplayName: name}
}

// Get возвращает профиль пользователя
func (r *Repository) Get(userID int64) (domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUser[userID]
	if !ok {
		return domain.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}

// GetAll возвращает все профили, отсортированные по идентификатору
func (r *Repository) GetAll() []domain.UserProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.UserProfile, 0, len(r.byUser))
	for _, p := range r.byUser {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
