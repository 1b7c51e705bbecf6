package motion

import (
	"sync"

	"portfolio-canvas/viewport"
)

// Animator owns the ball state and applies one Step per tick.
//
// Ticks come from the game's Update callback. Once Stop has been called no
// further tick changes the state.
type Animator struct {
	config func() viewport.Config

	mu      sync.Mutex
	state   State
	ticks   uint64
	stopped bool
	once    sync.Once
	onStop  func()
}

// NewAnimator returns an animator at the initial state. config is read exactly
// once per tick.
func NewAnimator(config func() viewport.Config) *Animator {
	return &Animator{
		config: config,
		state:  Initial(),
	}
}

// OnStop registers fn to run when the animator is stopped.
func (a *Animator) OnStop(fn func()) {
	a.mu.Lock()
	a.onStop = fn
	a.mu.Unlock()
}

// Tick advances the ball by one frame. It reports false when the animator has
// been stopped and nothing happened.
func (a *Animator) Tick() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return false
	}
	cfg := a.config()
	a.state = StepConfig(a.state, cfg)
	a.ticks++
	return true
}

// State returns the current ball state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Ticks returns how many steps have been applied.
func (a *Animator) Ticks() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

// Stop cancels the tick source. Only the first call has any effect.
func (a *Animator) Stop() {
	a.once.Do(func() {
		a.mu.Lock()
		a.stopped = true
		fn := a.onStop
		a.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}
