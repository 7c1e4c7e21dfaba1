package schedule

import (
	"sync"
	"time"

	"deepworktimer/internal/core/model"

	"github.com/jonboulle/clockwork"
)

// Config contains runtime options for Tracker.
type Config struct {
	TickInterval time.Duration
	Clock        clockwork.Clock
}

// Tracker re-evaluates the schedule on every tick and publishes updates.
type Tracker struct {
	mu      sync.Mutex
	phases  model.Schedule
	options Config
	last    *Snapshot
	events  []chan Update
	stopCh  chan struct{}
	ticker  clockwork.Ticker
	running bool
}

// NewTracker creates a Tracker over an immutable schedule.
func NewTracker(phases model.Schedule, options Config) *Tracker {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}

	return &Tracker{
		phases:  append(model.Schedule(nil), phases...),
		options: options,
	}
}

// Phases returns a copy of the tracked schedule.
func (tracker *Tracker) Phases() model.Schedule {
	return append(model.Schedule(nil), tracker.phases...)
}

// Subscribe registers a new observer channel. Slow observers miss updates
// rather than blocking the tick.
func (tracker *Tracker) Subscribe(buffer int) <-chan Update {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Update, buffer)
	tracker.mu.Lock()
	tracker.events = append(tracker.events, ch)
	tracker.mu.Unlock()
	return ch
}

// Start evaluates once immediately and then launches the ticking loop.
func (tracker *Tracker) Start() {
	tracker.mu.Lock()
	if tracker.running {
		tracker.mu.Unlock()
		return
	}
	tracker.running = true
	tracker.stopCh = make(chan struct{})
	tracker.ticker = tracker.options.Clock.NewTicker(tracker.options.TickInterval)
	ticker := tracker.ticker
	stopCh := tracker.stopCh
	tracker.evaluateLocked(tracker.options.Clock.Now())
	tracker.mu.Unlock()

	go tracker.run(ticker, stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (tracker *Tracker) Stop() {
	tracker.mu.Lock()
	if !tracker.running {
		tracker.mu.Unlock()
		return
	}
	close(tracker.stopCh)
	tracker.ticker.Stop()
	tracker.running = false
	events := tracker.events
	tracker.events = nil
	tracker.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Evaluate recomputes the snapshot for now, diffs it against the previous
// evaluation and publishes the result.
func (tracker *Tracker) Evaluate(now time.Time) Update {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.evaluateLocked(now)
}

// Last returns the most recent snapshot, if any evaluation has happened.
func (tracker *Tracker) Last() (Snapshot, bool) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if tracker.last == nil {
		return Snapshot{}, false
	}
	return *tracker.last, true
}

func (tracker *Tracker) run(ticker clockwork.Ticker, stopCh chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.Chan():
			tracker.tick(tickTime)
		}
	}
}

func (tracker *Tracker) tick(tickTime time.Time) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if !tracker.running {
		return
	}
	tracker.evaluateLocked(tickTime)
}

func (tracker *Tracker) evaluateLocked(now time.Time) Update {
	snapshot := Resolve(tracker.phases, now)
	update := Diff(tracker.last, snapshot)
	tracker.last = &snapshot
	tracker.emitLocked(update)
	return update
}

func (tracker *Tracker) emitLocked(update Update) {
	for _, ch := range tracker.events {
		select {
		case ch <- update:
		default:
		}
	}
}
