package comment

import (
	"strings"
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Repository доска заметок: для каждого пользователя карта date -> text.
// Заметки живут до явного удаления владельцем или до ежесуточной полуночной
// очистки.
type Repository struct {
	mu     sync.RWMutex
	byUser map[int64]map[domain.DateKey]string
}

// NewRepository создает новую доску заметок
func NewRepository() *Repository {
	return &Repository{
		byUser: make(map[int64]map[domain.DateKey]string),
	}
}

// Set устанавливает или перезаписывает заметку пользователя на дату.
// Текст, пустой после обрезки пробелов, отклоняется.
func (r *Repository) Set(userID int64, date domain.DateKey, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyComment
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	days, ok := r.byUser[userID]
	if !ok {
		days = make(map[domain.DateKey]string)
		r.byUser[userID] = days
	}
	days[date] = trimmed
	return nil
}

// Get возвращает заметку пользователя на дату
func (r *Repository) Get(userID int64, date domain.DateKey) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	text, ok := r.byUser[userID][date]
	if !ok {
		return "", ErrCommentNotFound
	}
	return text, nil
}

// Delete удаляет заметку пользователя на дату
func (r *Repository) Delete(userID int64, date domain.DateKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	days, ok := r.byUser[userID]
	if !ok {
		return ErrCommentNotFound
	}
	if _, ok := days[date]; !ok {
		return ErrCommentNotFound
	}
	delete(days, date)
	if len(days) == 0 {
		delete(r.byUser, userID)
	}
	return nil
}

// GetByUser возвращает все заметки пользователя
func (r *Repository) GetByUser(userID int64) []domain.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Comment
	for date, text := range r.byUser[userID] {
		out = append(out, domain.Comment{UserID: userID, Date: date, Text: text})
	}
	return out
}

// PurgeUser удаляет все заметки пользователя. Возвращает число удалённых
// заметок; отсутствие заметок ошибкой не считается (операция идемпотентна).
func (r *Repository) PurgeUser(userID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.byUser[userID])
	delete(r.byUser, userID)
	return n
}

// PurgeAll удаляет все заметки всех пользователей. Возвращает число
// удалённых заметок. Вызывается фоновой задачей полуночной очистки.
func (r *Repository) PurgeAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, days := range r.byUser {
		n += len(days)
	}
	r.byUser = make(map[int64]map[domain.DateKey]string)
	return n
}
