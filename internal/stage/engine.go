package stage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Engine is the stateful form of the animation: it owns a State, timestamps
// ticks against an injected clock, and serializes all access behind a mutex.
// Every tick reads the stage index from the state as of the start of that
// tick — nothing captures an index at construction time.
type Engine struct {
	mu     sync.Mutex
	stages []Stage
	state  State
	now    func() time.Time
	last   time.Time // instant of the previous tick while playing
}

// Option configures an Engine.
type Option func(*Engine)

// WithStages overrides the default stage sequence.
func WithStages(stages []Stage) Option {
	return func(e *Engine) { e.stages = stages }
}

// WithClock overrides the wall clock, for tests driving simulated time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns a paused Engine at stage 0 / progress 0 / speed 1.
func New(opts ...Option) *Engine {
	e := &Engine{
		stages: DefaultStages(),
		state:  Initial(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stages returns the engine's stage sequence.
func (e *Engine) Stages() []Stage {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Stage, len(e.stages))
	copy(out, e.stages)
	return out
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Tick advances the animation by the wall-clock delta since the previous
// tick and returns the new state. While paused it only re-stamps the clock.
func (e *Engine) Tick() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	elapsed := now.Sub(e.last)
	e.last = now

	if e.state.Playing {
		e.state = Step(e.state, elapsed, e.stages)
	}
	return e.state
}

// Play resumes playback. Pressing play at the terminal state (final stage,
// progress clamped at 100) restarts from stage 0 / progress 0.
func (e *Engine) Play() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Stage == len(e.stages)-1 && e.state.Progress >= 100 {
		e.state.Stage = 0
		e.state.Progress = 0
	}
	e.state.Playing = true
	e.last = e.now()
	return e.state
}

// Pause halts playback, keeping stage and progress where they are.
func (e *Engine) Pause() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Playing = false
	return e.state
}

// Reset returns to stage 0 / progress 0 / paused, regardless of current state.
func (e *Engine) Reset() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	speed := e.state.Speed
	e.state = Initial()
	e.state.Speed = speed
	return e.state
}

// SelectStage jumps directly to stage i, resets progress to 0, and pauses.
func (e *Engine) SelectStage(i int) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.stages) {
		return e.state, fmt.Errorf("stage.Engine.SelectStage: index %d out of range", i)
	}
	e.state.Stage = i
	e.state.Progress = 0
	e.state.Playing = false
	return e.state, nil
}

// SetSpeed changes the playback speed multiplier. Only the discrete values in
// Speeds are accepted.
func (e *Engine) SetSpeed(v float64) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !ValidSpeed(v) {
		return e.state, fmt.Errorf("stage.Engine.SetSpeed: unsupported speed %v", v)
	}
	e.state.Speed = v
	return e.state, nil
}

// Run ticks the engine at the given interval until ctx is cancelled.
// It stands in for the browser's animation-frame scheduler when the engine
// drives a server-side visualization.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			e.Tick()
		}
	}
}
