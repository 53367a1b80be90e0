package timer

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// TickMsg is delivered once per elapsed second while the timer runs.
// Gen identifies the running interval that scheduled it.
type TickMsg struct {
	Gen int
}

// Timer is a one-second stopwatch. It is driven from a single goroutine
// (the bubbletea update loop); the ticker only produces TickMsg values.
type Timer struct {
	clock    clockwork.Clock
	interval time.Duration
	elapsed  int
	running  bool
	gen      int
	ticker   clockwork.Ticker
	stopChan chan struct{}
}

func New(clock clockwork.Clock) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Timer{
		clock:    clock,
		interval: time.Second,
	}
}

// Start begins a new running interval. Calling it while running does nothing.
func (t *Timer) Start() {
	if t.running {
		return
	}

	t.running = true
	t.gen++
	t.ticker = t.clock.NewTicker(t.interval)
	t.stopChan = make(chan struct{})
}

// WaitTick returns a command that blocks until the current ticker fires.
// It yields nil once the interval is cancelled, and is nil itself when the
// timer is stopped.
func (t *Timer) WaitTick() tea.Cmd {
	if !t.running {
		return nil
	}

	ticker, stop, gen := t.ticker, t.stopChan, t.gen
	return func() tea.Msg {
		select {
		case <-stop:
			return nil
		case <-ticker.Chan():
			return TickMsg{Gen: gen}
		}
	}
}

// Tick counts one second. Ticks from an earlier interval, or arriving while
// stopped, are dropped; the return value reports whether it was counted.
func (t *Timer) Tick(msg TickMsg) bool {
	if !t.running || msg.Gen != t.gen {
		return false
	}
	t.elapsed++
	return true
}

// Stop ends the running interval and returns the elapsed seconds. The bool
// is true when a session worth recording just ended: the timer was running
// and at least one second was counted. Elapsed time is kept.
func (t *Timer) Stop() (int, bool) {
	if !t.running {
		return t.elapsed, false
	}

	t.halt()
	return t.elapsed, t.elapsed > 0
}

func (t *Timer) Reset() {
	t.halt()
	t.elapsed = 0
}

// Close releases the ticker without producing a session.
func (t *Timer) Close() {
	t.halt()
}

func (t *Timer) halt() {
	t.running = false
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
	if t.stopChan != nil {
		close(t.stopChan)
		t.stopChan = nil
	}
}

func (t *Timer) Elapsed() int {
	return t.elapsed
}

func (t *Timer) Running() bool {
	return t.running
}

// Generation is the identifier carried by ticks of the current interval.
func (t *Timer) Generation() int {
	return t.gen
}

// Format renders seconds as MM:SS. Minutes are not wrapped into hours, so
// 4505 renders as "75:05".
func Format(totalSeconds int) string {
	totalSeconds = max(totalSeconds, 0)
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
