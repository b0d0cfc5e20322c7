package sim

import "fmt"

// Starting configuration, matching the classic arena: head at (3,3) with one
// trailing segment directly behind it, heading up.
var (
	startHead = Position{X: 3, Y: 3}
	startDir  = Up
)

// resolveDirection samples the frame's pressed directions into the pending
// buffer. Input is sampled every frame, independent of the move cadence; the
// buffer is only consumed at tick boundaries.
//
// When several directions are held at once the first pressed entry of
// inputPriority wins. With nothing pressed the previously buffered direction
// stands. A candidate that would reverse the current heading is ignored, so
// the snake can never turn back into its own neck.
func (s *Sim) resolveDirection(pressed DirectionSet) {
	dir := s.pending
	for _, d := range inputPriority {
		if pressed.Has(d) {
			dir = d
			break
		}
	}
	if dir != s.heading.Opposite() {
		s.pending = dir
	}
}

// step advances the snake by one cell on a fired move tick: commit the pending
// heading, shift every trailing segment to its predecessor's pre-move cell,
// record the vacated tail cell for growth, move the head, then check for a
// wall or body collision against the pre-move body.
func (s *Sim) step() error {
	// The resolver never buffers a reversal; if one shows up anyway, keep
	// the old heading instead of turning the snake into its own neck.
	if s.pending != s.heading.Opposite() {
		s.heading = s.pending
	}

	snapshot := make([]Position, len(s.snake))
	for i, e := range s.snake {
		p, ok := s.positions[e]
		if !ok {
			return fmt.Errorf("%w: segment %d (entity %d) has no position", ErrInvariant, i, e)
		}
		snapshot[i] = p
	}

	// Propagate tail-first: each trailing segment takes the cell its
	// predecessor held before this tick.
	for i := len(s.snake) - 1; i >= 1; i-- {
		s.positions[s.snake[i]] = snapshot[i-1]
	}

	tail := snapshot[len(snapshot)-1]
	s.lastTail = &tail

	head := snapshot[0].Step(s.heading)
	s.positions[s.snake[0]] = head

	for i, e := range s.snake {
		s.emit(EntityEvent{Op: OpMove, Entity: e, Kind: s.segmentKind(i), Pos: s.positions[e]})
	}

	if s.detectCollision(head, snapshot) {
		s.gameOver = append(s.gameOver, gameOverEvent{})
	}
	return nil
}

// detectCollision reports whether the post-move head left the grid or landed
// on a cell the body occupied before this tick's propagation. The head's own
// previous cell is skipped; the tail's pre-move cell counts as a hit even
// though the tail vacates it this tick.
func (s *Sim) detectCollision(head Position, snapshot []Position) bool {
	if !s.grid.Contains(head) {
		return true
	}
	for _, p := range snapshot[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// spawnSegment appends one trailing segment at p.
func (s *Sim) spawnSegment(p Position) {
	e := s.allocEntity()
	s.positions[e] = p
	s.snake = append(s.snake, e)
	s.emit(EntityEvent{Op: OpSpawn, Entity: e, Kind: KindSegment, Pos: p})
}

// spawnSnake creates the starting two-segment snake.
func (s *Sim) spawnSnake() {
	head := s.allocEntity()
	s.positions[head] = startHead
	s.snake = append(s.snake, head)
	s.heading = startDir
	s.pending = startDir
	s.emit(EntityEvent{Op: OpSpawn, Entity: head, Kind: KindHead, Pos: startHead})
	s.spawnSegment(startHead.Step(startDir.Opposite()))
}

func (s *Sim) segmentKind(i int) EntityKind {
	if i == 0 {
		return KindHead
	}
	return KindSegment
}
