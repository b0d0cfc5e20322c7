// Package sim is the simulation core of the grid snake game: a discrete-time
// state machine driven once per frame by the host. It owns the snake, the food
// set and the tick timers, and reports every entity change through lifecycle
// events so the presentation layer never reaches into simulation state.
package sim

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvariant marks a synchronization bug between simulation steps (a stale
// entity id, growth without a recorded tail cell). An Update returning it has
// aborted the current tick. Game over is not an error; it is handled
// internally by the reset step.
var ErrInvariant = errors.New("sim: invariant violation")

// Config fixes the process-lifetime parameters of a simulation.
type Config struct {
	Width        int
	Height       int
	MoveInterval time.Duration // cadence of movement ticks
	FoodInterval time.Duration // cadence of food spawns
	Seed         uint64
}

// Sim holds all simulation state. All mutation happens inside Update in a
// fixed per-frame order, so no locking is needed: there is no parallelism,
// only sequencing.
type Sim struct {
	grid      Grid
	moveTimer *Timer
	foodTimer *Timer
	rng       *Rand

	nextEntity Entity
	positions  map[Entity]Position

	snake   []Entity // head first, length >= 2 outside of reset
	heading Direction
	pending Direction

	food []Entity

	// lastTail is the cell the tail vacated on the most recent tick; growth
	// reuses it. Nil before the first tick and after a reset.
	lastTail *Position

	growth   []growthEvent
	gameOver []gameOverEvent
	out      []EntityEvent
}

func New(cfg Config) *Sim {
	s := &Sim{
		grid:      Grid{Width: cfg.Width, Height: cfg.Height},
		moveTimer: NewTimer(cfg.MoveInterval),
		foodTimer: NewTimer(cfg.FoodInterval),
		rng:       NewRand(cfg.Seed),
		positions: make(map[Entity]Position),
	}
	s.spawnSnake()
	return s
}

// Update runs one frame: advance the timers, sample input, then on a fired
// move tick propagate the snake and detect eating; drain growth, spawn food,
// and finally drain game-over into at most one reset. The ordering guarantees
// that eating sees the post-move head and growth sees the tail cell recorded
// by the same tick.
func (s *Sim) Update(dt time.Duration, pressed DirectionSet) error {
	s.moveTimer.Tick(dt)
	s.foodTimer.Tick(dt)

	s.resolveDirection(pressed)

	if s.moveTimer.Fired() {
		if err := s.step(); err != nil {
			return err
		}
		s.detectEating()
	}

	if err := s.handleGrowth(); err != nil {
		return err
	}

	if s.foodTimer.Fired() {
		s.spawnFood()
	}

	s.handleGameOver()
	return nil
}

// handleGrowth drains all pending growth events, appending one tail segment
// per event at the cell the tail vacated on the most recent tick.
func (s *Sim) handleGrowth() error {
	if len(s.growth) == 0 {
		return nil
	}
	if s.lastTail == nil {
		s.growth = s.growth[:0]
		return fmt.Errorf("%w: growth event before any movement tick", ErrInvariant)
	}
	for range s.growth {
		s.spawnSegment(*s.lastTail)
	}
	s.growth = s.growth[:0]
	return nil
}

// handleGameOver collapses any number of queued game-over events into a
// single reset: every food item and segment is destroyed and the starting
// snake respawns. From the core's perspective the result is indistinguishable
// from a fresh game; the timers keep running as process-lifetime resources.
func (s *Sim) handleGameOver() {
	if len(s.gameOver) == 0 {
		return
	}
	s.gameOver = s.gameOver[:0]

	for _, f := range s.food {
		s.emit(EntityEvent{Op: OpDespawn, Entity: f, Kind: KindFood, Pos: s.positions[f]})
		delete(s.positions, f)
	}
	s.food = s.food[:0]

	for i, e := range s.snake {
		s.emit(EntityEvent{Op: OpDespawn, Entity: e, Kind: s.segmentKind(i), Pos: s.positions[e]})
		delete(s.positions, e)
	}
	s.snake = s.snake[:0]
	s.lastTail = nil

	s.spawnSnake()
}

// Drain returns the lifecycle events accumulated since the previous call.
// The host applies them in order: spawn, move, despawn.
func (s *Sim) Drain() []EntityEvent {
	ev := s.out
	s.out = nil
	return ev
}

// Len returns the number of live snake segments, head included.
func (s *Sim) Len() int {
	return len(s.snake)
}

// Heading returns the snake's current direction of travel.
func (s *Sim) Heading() Direction {
	return s.heading
}

func (s *Sim) allocEntity() Entity {
	s.nextEntity++
	return s.nextEntity
}

func (s *Sim) emit(e EntityEvent) {
	s.out = append(s.out, e)
}
