package access

import (
	"sync"
)

// Repository реестр прав доступа: множество администраторов и множество
// заблокированных пользователей. Пользователь не может находиться в обоих
// множествах одновременно.
type Repository struct {
	mu         sync.RWMutex
	admins     map[int64]struct{}
	restricted map[int64]struct{}
}

// NewRepository создает реестр прав. Переданные идентификаторы становятся
// начальными администраторами (bootstrap из конфигурации).
func NewRepository(initialAdmins []int64) *Repository {
	r := &Repository{
		admins:     make(map[int64]struct{}),
		restricted: make(map[int64]struct{}),
	}
	for _, id := range initialAdmins {
		r.admins[id] = struct{}{}
	}
	return r
}

// IsAdmin возвращает true, если пользователь администратор
func (r *Repository) IsAdmin(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.admins[userID]
	return ok
}

// IsRestricted возвращает true, если пользователь заблокирован
func (r *Repository) IsRestricted(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.restricted[userID]
	return ok
}

// Restrict добавляет пользователя в множество заблокированных. Операция
// идемпотентна. Администратор при блокировке теряет права администратора:
// множества не пересекаются.
func (r *Repository) Restrict(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.admins, userID)
	r.restricted[userID] = struct{}{}
}

// Unrestrict убирает пользователя из множества заблокированных.
// Если пользователь не был заблокирован, возвращается ErrNotRestricted.
func (r *Repository) Unrestrict(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.restricted[userID]; !ok {
		return ErrNotRestricted
	}
	delete(r.restricted, userID)
	return nil
}

// Promote добавляет пользователя в множество администраторов.
// Повторное назначение сигнализируется ErrAlreadyAdmin. Заблокированный
// пользователь при назначении разблокируется: множества не пересекаются.
func (r *Repository) Promote(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[userID]; ok {
		return ErrAlreadyAdmin
	}
	delete(r.restricted, userID)
	r.admins[userID] = struct{}{}
	return nil
}

// Demote убирает пользователя из множества администраторов. Самоснятие
// запрещено. Минимальное число администраторов не контролируется: снять
// последнего администратора возможно (открытый вопрос, см. DESIGN.md).
func (r *Repository) Demote(targetID, callerID int64) error {
	if targetID == callerID {
		return ErrSelfDemote
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[targetID]; !ok {
		return ErrNotAdmin
	}
	delete(r.admins, targetID)
	return nil
}

// Admins возвращает идентификаторы всех администраторов
func (r *Repository) Admins() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int64, 0, len(r.admins))
	for id := range r.admins {
		out = append(out, id)
	}
	return out
}
