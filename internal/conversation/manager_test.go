package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func TestConsumeIdleByDefault(t *testing.T) {
	m := NewManager()

	_, ok := m.Consume(1)
	assert.False(t, ok)
}

func TestConsumeOnce(t *testing.T) {
	m := NewManager()

	m.ExpectName(1)

	p, ok := m.Consume(1)
	require.True(t, ok)
	assert.Equal(t, KindAwaitingName, p.Kind)

	// Состояние потреблено, повторный Consume возвращает Idle
	_, ok = m.Consume(1)
	assert.False(t, ok)
}

func TestExpectCommentCarriesDate(t *testing.T) {
	m := NewManager()
	date := domain.NewDateKey(2024, time.June, 10)

	m.ExpectComment(1, date)

	p, ok := m.Consume(1)
	require.True(t, ok)
	assert.Equal(t, KindAwaitingComment, p.Kind)
	assert.Equal(t, date, p.Date)
}

func TestNewExpectationReplacesPrevious(t *testing.T) {
	m := NewManager()
	date := domain.NewDateKey(2024, time.June, 10)

	m.ExpectName(1)
	m.ExpectComment(1, date)

	p, ok := m.Consume(1)
	require.True(t, ok)
	assert.Equal(t, KindAwaitingComment, p.Kind)
}

func TestClear(t *testing.T) {
	m := NewManager()

	m.ExpectName(1)
	m.Clear(1)

	_, ok := m.Consume(1)
	assert.False(t, ok)

	// Clear для Idle пользователя безвреден
	m.Clear(2)
}

func TestStatesAreIndependentPerUser(t *testing.T) {
	m := NewManager()

	m.ExpectName(1)
	m.ExpectComment(2, domain.NewDateKey(2024, time.June, 10))

	p1, ok := m.Consume(1)
	require.True(t, ok)
	assert.Equal(t, KindAwaitingName, p1.Kind)

	p2, ok := m.Consume(2)
	require.True(t, ok)
	assert.Equal(t, KindAwaitingComment, p2.Kind)
}
