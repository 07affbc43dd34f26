package stage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for driving Engine ticks in
// simulated time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine() (*Engine, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.now)), clock
}

func TestEngine_InitialState(t *testing.T) {
	e, _ := newTestEngine()

	got := e.Snapshot()

	assert.Equal(t, State{Stage: 0, Progress: 0, Playing: false, Speed: 1}, got)
}

func TestEngine_TickAdvancesWithSimulatedTime(t *testing.T) {
	e, clock := newTestEngine()

	e.Play()
	clock.advance(6 * time.Second) // full stage 0 duration
	got := e.Tick()

	assert.Equal(t, 1, got.Stage)
	assert.Equal(t, float64(0), got.Progress)
}

func TestEngine_TickWhilePausedOnlyRestampsClock(t *testing.T) {
	e, clock := newTestEngine()

	clock.advance(time.Hour)
	got := e.Tick()

	assert.Equal(t, 0, got.Stage)
	assert.Equal(t, float64(0), got.Progress)

	// The hour spent paused must not count as playback time afterwards.
	e.Play()
	clock.advance(3 * time.Second)
	got = e.Tick()
	assert.InDelta(t, 50, got.Progress, 0.001)
}

func TestEngine_PlayAtTerminalStateRestarts(t *testing.T) {
	e, clock := newTestEngine()

	// Run to completion.
	e.Play()
	for i := 0; i < 1000 && e.Snapshot().Playing; i++ {
		clock.advance(500 * time.Millisecond)
		e.Tick()
	}
	terminal := e.Snapshot()
	require.False(t, terminal.Playing)
	require.Equal(t, float64(100), terminal.Progress)

	got := e.Play()

	assert.Equal(t, 0, got.Stage, "play at terminal state should restart")
	assert.Equal(t, float64(0), got.Progress)
	assert.True(t, got.Playing)
}

func TestEngine_ResetFromAnyState(t *testing.T) {
	e, clock := newTestEngine()

	e.Play()
	clock.advance(10 * time.Second)
	e.Tick()

	got := e.Reset()

	assert.Equal(t, 0, got.Stage)
	assert.Equal(t, float64(0), got.Progress)
	assert.False(t, got.Playing)
	assert.Equal(t, float64(1), got.Speed, "speed survives a reset")
}

func TestEngine_SelectStageJumpsAndPauses(t *testing.T) {
	e, _ := newTestEngine()
	e.Play()

	got, err := e.SelectStage(3)

	require.NoError(t, err)
	assert.Equal(t, 3, got.Stage)
	assert.Equal(t, float64(0), got.Progress)
	assert.False(t, got.Playing)
}

func TestEngine_SelectStageOutOfRange(t *testing.T) {
	e, _ := newTestEngine()

	_, err := e.SelectStage(len(DefaultStages()))
	assert.Error(t, err)

	_, err = e.SelectStage(-1)
	assert.Error(t, err)
}

func TestEngine_SetSpeed(t *testing.T) {
	e, clock := newTestEngine()

	_, err := e.SetSpeed(2)
	require.NoError(t, err)

	e.Play()
	clock.advance(3 * time.Second) // 3s at 2x covers the 6s stage 0
	got := e.Tick()

	assert.Equal(t, 1, got.Stage)
}

func TestEngine_SetSpeedRejectsUnknownValues(t *testing.T) {
	e, _ := newTestEngine()

	_, err := e.SetSpeed(4)

	assert.Error(t, err)
	assert.Equal(t, float64(1), e.Snapshot().Speed)
}
