package purge

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

// CommentBoard интерфейс доски заметок, очищаемой задачей
type CommentBoard interface {
	PurgeAll() int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Task фоновая задача ежесуточной очистки заметок. Срабатывает в локальную
// полночь; задержка до следующей полуночи пересчитывается после каждой
// очистки, а не берётся фиксированным периодом, чтобы не накапливать дрейф.
type Task struct {
	board        CommentBoard
	timeProvider TimeProvider
	metrics      *metrics.Metrics
	logger       Logger
}

// NewTask создает задачу очистки. metrics может быть nil, если сбор метрик
// выключен.
func NewTask(board CommentBoard, timeProvider TimeProvider, m *metrics.Metrics, logger Logger) *Task {
	return &Task{
		board:        board,
		timeProvider: timeProvider,
		metrics:      m,
		logger:       logger,
	}
}

// Run крутит цикл очистки до отмены контекста.
// Запускается отдельной горутиной из main.
func (t *Task) Run(ctx context.Context) {
	for {
		now := t.timeProvider.Now()
		timer := time.NewTimer(nextMidnight(now).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			t.logger.Info("purge: task stopped")
			return
		case <-timer.C:
			n := t.board.PurgeAll()
			if t.metrics != nil {
				t.metrics.CommentsPurged.Add(float64(n))
			}
			t.logger.Info("purge: midnight cleanup removed %d comments", n)
		}
	}
}

// nextMidnight возвращает ближайшую полночь строго после now
// в таймзоне now
func nextMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1)
}
