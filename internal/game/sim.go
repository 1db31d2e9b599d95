package game

import (
	"math"
	"time"
)

const (
	// TickInterval is the simulation step used by the screen's tick loop.
	TickInterval = 100 * time.Millisecond

	// LevelBudget is the per-level countdown in seconds.
	LevelBudget = 30.0

	// SweepDuration is how long the driven reference angle takes to travel
	// from the level's start angle to its end angle, in running time.
	SweepDuration = 30 * time.Second

	// NeutralAngle is where the user-controlled angle rests after a reset.
	NeutralAngle = 0.0
)

// Simulation runs one mini-game play session over a fixed level list. All
// per-level state is transient; progress is not persisted.
type Simulation struct {
	levels     []Level
	levelIndex int

	userAngle    float64
	sweepElapsed time.Duration
	efficiency   float64
	score        int
	complete     bool
	running      bool
	remaining    float64
}

// NewSimulation creates a Simulation over the given level list.
func NewSimulation(levels []Level) *Simulation {
	s := &Simulation{levels: levels}
	s.resetTransient()
	return s
}

// CurrentLevel returns the active level, clamped to the last level when the
// index overruns. An empty level list yields the zero Level.
func (s *Simulation) CurrentLevel() Level {
	if len(s.levels) == 0 {
		return Level{}
	}
	i := s.levelIndex
	if i >= len(s.levels) {
		i = len(s.levels) - 1
	}
	return s.levels[i]
}

// LevelIndex returns the zero-based index of the active level.
func (s *Simulation) LevelIndex() int { return s.levelIndex }

// LevelCount returns the number of levels.
func (s *Simulation) LevelCount() int { return len(s.levels) }

// UserAngle returns the user-controlled angle in [0, 360).
func (s *Simulation) UserAngle() float64 { return s.userAngle }

// EfficiencyPercent returns the efficiency computed on the last tick.
func (s *Simulation) EfficiencyPercent() float64 { return s.efficiency }

// Score returns the accumulated bonus score for this play session.
func (s *Simulation) Score() int { return s.score }

// LevelComplete reports whether the active level has been cleared.
func (s *Simulation) LevelComplete() bool { return s.complete }

// Running reports whether the simulation is live.
func (s *Simulation) Running() bool { return s.running }

// TimeRemaining returns the seconds left on the level countdown.
func (s *Simulation) TimeRemaining() float64 { return s.remaining }

// Efficiency scores how well an angle aligns with the center of a level's
// target arc: 100 at the midpoint, falling linearly to 0 at 90° off or more.
func Efficiency(userAngle float64, level Level) float64 {
	dist := AngularDistance(userAngle, level.Midpoint())
	eff := 100 - dist/90*100
	if eff < 0 {
		eff = 0
	}
	return eff
}

// Start begins (or resumes) the level.
func (s *Simulation) Start() {
	if s.complete || s.remaining <= 0 {
		return
	}
	s.running = true
}

// Pause suspends the level; the countdown and the driven sweep both freeze.
func (s *Simulation) Pause() {
	s.running = false
}

// Tick advances the simulation by dt. It decrements the countdown,
// recomputes efficiency and decides level completion; clearing the level
// stops the run and awards floor(timeRemaining * 10) bonus points. A tick
// while paused or after completion is ignored.
func (s *Simulation) Tick(dt time.Duration) {
	if !s.running || s.complete {
		return
	}

	secs := dt.Seconds()
	s.remaining -= secs
	s.sweepElapsed += dt
	s.efficiency = Efficiency(s.userAngle, s.CurrentLevel())

	if s.remaining <= 0 {
		// Timed out: no bonus.
		s.remaining = 0
		s.running = false
		return
	}

	if s.efficiency >= s.CurrentLevel().Target {
		s.complete = true
		s.running = false
		s.score += int(math.Floor(s.remaining * 10))
	}
}

// DrivenAngle returns the externally-moving reference (sun position or wind
// direction): a linear interpolation from the level's start angle to its end
// angle over SweepDuration of running time. Paused time does not advance
// it; after a pause it resumes from its current position.
func (s *Simulation) DrivenAngle() float64 {
	level := s.CurrentLevel()
	frac := float64(s.sweepElapsed) / float64(SweepDuration)
	if frac > 1 {
		frac = 1
	}
	span := WrapAngle(level.RangeEnd - level.RangeStart)
	return WrapAngle(level.RangeStart + span*frac)
}

// SetUserAngle points the user control at the given angle, wrapped into
// [0, 360). Input is ignored while the level is paused or complete.
func (s *Simulation) SetUserAngle(deg float64) {
	if !s.running || s.complete {
		return
	}
	s.userAngle = WrapAngle(deg)
	s.efficiency = Efficiency(s.userAngle, s.CurrentLevel())
}

// Rotate nudges the user angle by delta degrees, subject to the same input
// gate as SetUserAngle.
func (s *Simulation) Rotate(delta float64) {
	s.SetUserAngle(s.userAngle + delta)
}

// NextLevel advances to the next level unless already at the last (the
// index is then untouched) and fully resets transient per-level state.
func (s *Simulation) NextLevel() {
	if s.levelIndex < len(s.levels)-1 {
		s.levelIndex++
	}
	s.resetTransient()
}

// ResetLevel resets transient state for the current level without
// advancing.
func (s *Simulation) ResetLevel() {
	s.resetTransient()
}

func (s *Simulation) resetTransient() {
	s.userAngle = NeutralAngle
	s.sweepElapsed = 0
	s.remaining = LevelBudget
	s.running = false
	s.complete = false
	s.efficiency = Efficiency(s.userAngle, s.CurrentLevel())
}

// AtLastLevel reports whether the active level is the final one.
func (s *Simulation) AtLastLevel() bool {
	return s.levelIndex >= len(s.levels)-1
}
