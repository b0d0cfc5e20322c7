package sim

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Width:        10,
		Height:       10,
		MoveInterval: 100 * time.Millisecond,
		// Food cadence pushed out of the way; tests place food explicitly.
		FoodInterval: time.Hour,
		Seed:         7,
	}
}

// mustTick runs one frame whose elapsed time fires exactly one move tick.
func mustTick(t *testing.T, s *Sim, pressed DirectionSet) {
	t.Helper()
	if err := s.Update(s.moveTimer.Interval(), pressed); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

// mustIdle runs one frame too short to fire the move timer.
func mustIdle(t *testing.T, s *Sim, pressed DirectionSet) {
	t.Helper()
	if err := s.Update(time.Millisecond, pressed); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

// setSnake replaces the snake with the given chain, head first.
func setSnake(s *Sim, heading Direction, cells ...Position) {
	for _, e := range s.snake {
		delete(s.positions, e)
	}
	s.snake = s.snake[:0]
	for _, p := range cells {
		e := s.allocEntity()
		s.positions[e] = p
		s.snake = append(s.snake, e)
	}
	s.heading = heading
	s.pending = heading
	s.out = nil
}

func bodyPositions(s *Sim) []Position {
	out := make([]Position, len(s.snake))
	for i, e := range s.snake {
		out[i] = s.positions[e]
	}
	return out
}

func headPos(s *Sim) Position {
	return s.positions[s.snake[0]]
}

func TestFirstTickMovesUp(t *testing.T) {
	s := New(testConfig())

	got := bodyPositions(s)
	want := []Position{{3, 3}, {3, 2}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("start chain = %v, want %v", got, want)
		}
	}

	mustTick(t, s, 0)

	got = bodyPositions(s)
	want = []Position{{3, 4}, {3, 3}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain after tick = %v, want %v", got, want)
		}
	}
	if s.Heading() != Up {
		t.Fatalf("heading = %v, want up", s.Heading())
	}
}

func TestIdleFrameMovesNothing(t *testing.T) {
	s := New(testConfig())
	before := bodyPositions(s)
	mustIdle(t, s, 0)
	after := bodyPositions(s)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("positions changed on a frame without a tick: %v -> %v", before, after)
		}
	}
}

func TestWallCollisionResets(t *testing.T) {
	s := New(testConfig())
	setSnake(s, Right, Position{9, 5}, Position{8, 5})

	mustTick(t, s, 0)

	// Head stepped to (10,5), which is off a width-10 grid: one game over,
	// one reset back to the starting chain.
	if s.Len() != 2 {
		t.Fatalf("length after reset = %d, want 2", s.Len())
	}
	if s.Heading() != Up {
		t.Fatalf("heading after reset = %v, want up", s.Heading())
	}
	if got := headPos(s); got != startHead {
		t.Fatalf("head after reset = %v, want %v", got, startHead)
	}
}

func TestReversalRejected(t *testing.T) {
	s := New(testConfig())
	setSnake(s, Up, Position{5, 5}, Position{5, 4}, Position{5, 3})

	mustTick(t, s, DirectionSet(0).With(Down))

	if s.pending != Up {
		t.Fatalf("pending = %v, opposite input must not change it", s.pending)
	}
	got := bodyPositions(s)
	want := []Position{{5, 6}, {5, 5}, {5, 4}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain after tick = %v, want %v", got, want)
		}
	}
}

func TestReversalRejectionIdempotent(t *testing.T) {
	s := New(testConfig())
	for i := 0; i < 5; i++ {
		mustIdle(t, s, DirectionSet(0).With(Down))
		if s.pending != Up {
			t.Fatalf("frame %d: pending = %v, want up", i, s.pending)
		}
	}
}

func TestInputPriority(t *testing.T) {
	cases := []struct {
		heading Direction
		pressed DirectionSet
		want    Direction
	}{
		// Left wins over everything it doesn't reverse into.
		{Up, DirectionSet(0).With(Left).With(Up).With(Right), Left},
		// Heading right: Left is first by priority but is the reversal, so
		// the candidate is rejected and the buffer keeps the heading.
		{Right, DirectionSet(0).With(Left).With(Up), Right},
		// Down precedes Up and Right in the priority order.
		{Left, DirectionSet(0).With(Down).With(Up).With(Right), Down},
		{Left, DirectionSet(0).With(Up).With(Right), Up},
	}
	for i, c := range cases {
		s := New(testConfig())
		s.heading = c.heading
		s.pending = c.heading
		mustIdle(t, s, c.pressed)
		if s.pending != c.want {
			t.Errorf("case %d: pending = %v, want %v", i, s.pending, c.want)
		}
	}
}

func TestBufferedDirectionSurvivesIdleFrames(t *testing.T) {
	s := New(testConfig())
	mustIdle(t, s, DirectionSet(0).With(Right))
	// No input for several frames; the buffered turn must still apply on
	// the next tick.
	for i := 0; i < 3; i++ {
		mustIdle(t, s, 0)
	}
	mustTick(t, s, 0)
	if s.Heading() != Right {
		t.Fatalf("heading = %v, want buffered right", s.Heading())
	}
	if got, want := headPos(s), (Position{4, 3}); got != want {
		t.Fatalf("head = %v, want %v", got, want)
	}
}

func TestSelfCollisionResets(t *testing.T) {
	s := New(testConfig())
	// Head at (5,5) after moving left; turning up steps into (5,6), held by
	// the body before this tick.
	setSnake(s, Left,
		Position{5, 5}, Position{6, 5}, Position{6, 6}, Position{5, 6}, Position{4, 6})

	mustTick(t, s, DirectionSet(0).With(Up))

	if s.Len() != 2 || headPos(s) != startHead {
		t.Fatalf("expected reset, got chain %v", bodyPositions(s))
	}
}

func TestVacatedTailCellStillCollides(t *testing.T) {
	s := New(testConfig())
	// The tail at (5,6) vacates its cell this tick, but the pre-move body
	// snapshot is what the detector checks, so stepping into it ends the game.
	setSnake(s, Left,
		Position{5, 5}, Position{6, 5}, Position{6, 6}, Position{5, 6})

	mustTick(t, s, DirectionSet(0).With(Up))

	if s.Len() != 2 || headPos(s) != startHead {
		t.Fatalf("expected reset, got chain %v", bodyPositions(s))
	}
}

func TestPropagationPreservesLength(t *testing.T) {
	s := New(testConfig())
	setSnake(s, Up,
		Position{5, 5}, Position{5, 4}, Position{5, 3}, Position{5, 2})

	script := []DirectionSet{
		0,
		DirectionSet(0).With(Right),
		0,
		DirectionSet(0).With(Up),
		DirectionSet(0).With(Left),
	}
	for i, pressed := range script {
		before := s.Len()
		mustTick(t, s, pressed)
		if s.Len() != before {
			t.Fatalf("tick %d: length %d -> %d without growth", i, before, s.Len())
		}
	}
}
