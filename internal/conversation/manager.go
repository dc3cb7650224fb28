package conversation

import (
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Kind вид ожидаемого от пользователя ответа
type Kind string

const (
	// KindAwaitingName следующий свободный текст пользователя — новое имя
	KindAwaitingName Kind = "awaiting_name"
	// KindAwaitingComment следующий свободный текст — заметка на дату
	KindAwaitingComment Kind = "awaiting_comment"
)

// Pending ожидание ответа пользователя на ранее показанный вопрос.
// Date заполнена только для KindAwaitingComment.
type Pending struct {
	Kind Kind
	Date domain.DateKey
}

// Manager краткоживущие состояния диалога "вопрос - следующий ответ".
// Отсутствие записи означает состояние Idle. Состояние потребляется ровно
// один раз: Consume возвращает его и сразу очищает.
type Manager struct {
	mu     sync.Mutex
	byUser map[int64]Pending
}

// NewManager создает менеджер состояний диалога
func NewManager() *Manager {
	return &Manager{
		byUser: make(map[int64]Pending),
	}
}

// ExpectName переводит пользователя в ожидание нового имени.
// Прежнее ожидание, если было, заменяется.
func (m *Manager) ExpectName(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[userID] = Pending{Kind: KindAwaitingName}
}

// ExpectComment переводит пользователя в ожидание текста заметки на дату
func (m *Manager) ExpectComment(userID int64, date domain.DateKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[userID] = Pending{Kind: KindAwaitingComment, Date: date}
}

// Consume возвращает текущее ожидание и очищает его.
// Второй результат false означает Idle.
func (m *Manager) Consume(userID int64) (Pending, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUser[userID]
	if ok {
		delete(m.byUser, userID)
	}
	return p, ok
}

// Clear сбрасывает ожидание пользователя в Idle
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
}
