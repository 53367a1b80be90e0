package timer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickN(t *Timer, n int) {
	for range n {
		t.Tick(TickMsg{Gen: t.Generation()})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{3599, "59:59"},
		{3600, "60:00"},
		{4505, "75:05"},
		{-3, "00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.secs), "Format(%d)", tc.secs)
	}
}

func TestNewTimerIsStopped(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	assert.False(t, tm.Running())
	assert.Equal(t, 0, tm.Elapsed())
	assert.Nil(t, tm.WaitTick())
}

func TestStartIsIdempotent(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	gen := tm.Generation()
	tm.Start()

	assert.True(t, tm.Running())
	assert.Equal(t, gen, tm.Generation())
}

func TestTickOnlyCountsWhileRunning(t *testing.T) {
	tm := New(clockwork.NewFakeClock())

	assert.False(t, tm.Tick(TickMsg{Gen: tm.Generation()}))
	assert.Equal(t, 0, tm.Elapsed())

	tm.Start()
	tickN(tm, 3)
	assert.Equal(t, 3, tm.Elapsed())
}

func TestStopKeepsElapsedAndReportsRecord(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	tickN(tm, 5)

	elapsed, record := tm.Stop()
	assert.Equal(t, 5, elapsed)
	assert.True(t, record)
	assert.False(t, tm.Running())
	assert.Equal(t, 5, tm.Elapsed())
}

func TestStopWithZeroElapsedReportsNoRecord(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()

	elapsed, record := tm.Stop()
	assert.Equal(t, 0, elapsed)
	assert.False(t, record)
}

func TestStopWhileStoppedIsNoop(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	tickN(tm, 2)
	tm.Stop()

	elapsed, record := tm.Stop()
	assert.Equal(t, 2, elapsed)
	assert.False(t, record)
}

func TestStaleTickAfterStopIsDropped(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	old := tm.Generation()
	tickN(tm, 1)
	tm.Stop()

	assert.False(t, tm.Tick(TickMsg{Gen: old}))
	assert.Equal(t, 1, tm.Elapsed())

	tm.Start()
	assert.False(t, tm.Tick(TickMsg{Gen: old}))
	assert.True(t, tm.Tick(TickMsg{Gen: tm.Generation()}))
	assert.Equal(t, 2, tm.Elapsed())
}

func TestResumeAccumulates(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	tickN(tm, 4)
	tm.Stop()
	tm.Start()
	tickN(tm, 3)

	elapsed, record := tm.Stop()
	assert.Equal(t, 7, elapsed)
	assert.True(t, record)
}

func TestResetFromAnyState(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	tickN(tm, 9)
	tm.Reset()

	assert.False(t, tm.Running())
	assert.Equal(t, 0, tm.Elapsed())

	tm.Reset()
	assert.Equal(t, 0, tm.Elapsed())
}

func TestElapsedNeverDecreasesWhileRunning(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	ops := []func(){
		tm.Start, func() { tickN(tm, 2) }, func() { tm.Stop() },
		tm.Start, func() { tickN(tm, 1) }, tm.Reset,
		tm.Start, func() { tickN(tm, 4) }, func() { tm.Stop() },
	}

	prev := 0
	for _, op := range ops {
		wasRunning := tm.Running()
		op()
		require.GreaterOrEqual(t, tm.Elapsed(), 0)
		if wasRunning && tm.Running() {
			require.GreaterOrEqual(t, tm.Elapsed(), prev)
		}
		prev = tm.Elapsed()
	}
}

func waitMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("tick command did not return")
		return nil
	}
}

func TestWaitTickFiresOnClockAdvance(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tm := New(clock)
	tm.Start()

	cmd := tm.WaitTick()
	clock.Advance(time.Second)

	msg := waitMsg(t, cmd)
	require.IsType(t, TickMsg{}, msg)
	assert.True(t, tm.Tick(msg.(TickMsg)))
	assert.Equal(t, 1, tm.Elapsed())
}

func TestWaitTickReturnsNilAfterStop(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	cmd := tm.WaitTick()
	tm.Stop()

	assert.Nil(t, waitMsg(t, cmd))
	assert.Nil(t, tm.WaitTick())
}

func TestCloseCancelsWithoutRecord(t *testing.T) {
	tm := New(clockwork.NewFakeClock())
	tm.Start()
	tickN(tm, 3)
	cmd := tm.WaitTick()
	tm.Close()

	assert.False(t, tm.Running())
	assert.Nil(t, waitMsg(t, cmd))
}
