// Package audit пишет след каждого обращения к данным: кто позвал и какую
// запись тронул. Операции при этом никак не ограничиваются — аудит только
// фиксирует, что authorization gap был использован, для последующего разбора
// на занятии.
package audit

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxEvents ограничивает хвост аудита в памяти.
const maxEvents = 1000

// Event — одна зафиксированная операция.
type Event struct {
	ID             string
	Time           time.Time
	Action         string // "read_profile", "update_profile", "list_users", ...
	CallerID       int64
	CallerUsername string
	CallerRole     string
	TargetID       int64 // 0 для операций без конкретной цели
	Detail         string
}

// Recorder накапливает события в памяти и дублирует их в лог.
type Recorder struct {
	mu     sync.Mutex
	logger *slog.Logger
	events []Event
	now    func() time.Time
}

// NewRecorder создает recorder поверх заданного логгера.
func NewRecorder(logger *slog.Logger) *Recorder {
	return &Recorder{
		logger: logger,
		now:    time.Now,
	}
}

// Record присваивает событию id и метку времени и сохраняет его.
func (r *Recorder) Record(e Event) {
	e.ID = uuid.New().String()
	e.Time = r.now()

	r.mu.Lock()
	r.events = append(r.events, e)
	if len(r.events) > maxEvents {
		r.events = r.events[len(r.events)-maxEvents:]
	}
	r.mu.Unlock()

	// Тот самый "VULNERABILITY EXPLOITED" след оригинального стенда
	r.logger.Warn("access operation executed without authorization check",
		"action", e.Action,
		"caller_id", e.CallerID,
		"caller_username", e.CallerUsername,
		"caller_role", e.CallerRole,
		"target_id", e.TargetID,
		"detail", e.Detail,
	)
}

// Events возвращает копию накопленных событий в порядке записи.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset очищает накопленный след.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
