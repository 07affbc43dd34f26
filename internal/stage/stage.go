// Package stage implements the compost stage animation engine: a timer-driven
// finite state machine that walks a fixed, ordered list of narrative stages,
// each with its own duration, and exposes continuous progress for a visual
// layer. It runs entirely on wall-clock time and never touches the backend.
package stage

import "time"

// Stage is one named phase in the compost narrative.
type Stage struct {
	Key         string
	Title       string
	Description string
	Duration    time.Duration
}

// Speeds is the set of playback speed multipliers the engine accepts.
var Speeds = []float64{0.5, 1, 1.5, 2}

// DefaultStages returns the six-stage compost narrative in order.
// A fresh slice is returned so callers can't reorder the shared sequence.
func DefaultStages() []Stage {
	return []Stage{
		{Key: "collect", Title: "Toplama", Description: "Yeşil ve kahverengi malzemeler toplanır.", Duration: 6 * time.Second},
		{Key: "layer", Title: "Katmanlama", Description: "Malzemeler sırayla katmanlar halinde dizilir.", Duration: 8 * time.Second},
		{Key: "decompose", Title: "Aktif Ayrışma", Description: "Mikroorganizmalar yığını ısıtır ve parçalar.", Duration: 12 * time.Second},
		{Key: "turn", Title: "Karıştırma", Description: "Yığın havalandırmak için çevrilir.", Duration: 8 * time.Second},
		{Key: "cure", Title: "Olgunlaşma", Description: "Kompost dinlenir ve dengelenir.", Duration: 10 * time.Second},
		{Key: "ready", Title: "Hazır", Description: "Koyu renkli, toprak kokulu kompost kullanıma hazır.", Duration: 4 * time.Second},
	}
}

// State is the full engine state at one instant. It is a plain value so the
// per-tick transition can take the state as a parameter instead of closing
// over a possibly stale stage index.
type State struct {
	Stage    int     `json:"stage"`
	Progress float64 `json:"progress"` // 0..100 within the current stage
	Playing  bool    `json:"playing"`
	Speed    float64 `json:"speed"`
}

// Initial is the engine state before any interaction: stage 0, progress 0,
// paused, speed 1.
func Initial() State {
	return State{Speed: 1}
}

// ValidSpeed reports whether v is one of the accepted speed multipliers.
func ValidSpeed(v float64) bool {
	for _, s := range Speeds {
		if s == v {
			return true
		}
	}
	return false
}

// Step applies one tick of elapsed wall-clock time to the state and returns
// the successor state. The elapsed delta is converted to a percentage of the
// current stage's duration, scaled by the speed multiplier.
//
// When progress reaches or passes 100 the engine advances at most one stage
// per tick and discards the overshoot; a large tick therefore never skips a
// stage. At the final stage playback stops and progress clamps at 100.
func Step(s State, elapsed time.Duration, stages []Stage) State {
	if !s.Playing || elapsed <= 0 || len(stages) == 0 {
		return s
	}
	if s.Stage < 0 {
		s.Stage = 0
	}
	if s.Stage >= len(stages) {
		s.Stage = len(stages) - 1
	}

	d := stages[s.Stage].Duration
	if d <= 0 {
		d = time.Second
	}
	s.Progress += elapsed.Seconds() / d.Seconds() * s.Speed * 100

	if s.Progress < 100 {
		return s
	}
	if s.Stage < len(stages)-1 {
		s.Stage++
		s.Progress = 0 // overshoot is discarded, not carried forward
		return s
	}
	s.Progress = 100
	s.Playing = false
	return s
}
