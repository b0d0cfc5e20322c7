package game

import "gridsnake/internal/sim"

// visual is the presentation-side record of one live entity.
type visual struct {
	kind sim.EntityKind
	pos  sim.Position
}

// EntityTable mirrors the simulation's live entities. It is maintained purely
// from drained lifecycle events; the renderer never reads simulation state.
type EntityTable struct {
	entities map[sim.Entity]visual
}

func NewEntityTable() *EntityTable {
	return &EntityTable{
		entities: make(map[sim.Entity]visual),
	}
}

// Apply folds one frame's lifecycle events into the table.
func (t *EntityTable) Apply(events []sim.EntityEvent) {
	for _, ev := range events {
		switch ev.Op {
		case sim.OpSpawn:
			t.entities[ev.Entity] = visual{kind: ev.Kind, pos: ev.Pos}
		case sim.OpMove:
			v := t.entities[ev.Entity]
			v.pos = ev.Pos
			t.entities[ev.Entity] = v
		case sim.OpDespawn:
			delete(t.entities, ev.Entity)
		}
	}
}

// SpriteData appends one point sprite per entity to buf, food below body
// below head so an overlapped cell shows the snake.
func (t *EntityTable) SpriteData(buf []float32) []float32 {
	buf = t.appendKind(buf, sim.KindFood, FoodScale, Palette.Food)
	buf = t.appendKind(buf, sim.KindSegment, SegmentScale, Palette.Segment)
	buf = t.appendKind(buf, sim.KindHead, HeadScale, Palette.Head)
	return buf
}

func (t *EntityTable) appendKind(buf []float32, kind sim.EntityKind, scale float64, col RGB) []float32 {
	r, g, b := col.floats()
	for _, v := range t.entities {
		if v.kind != kind {
			continue
		}
		x, y := cellCenter(v.pos)
		buf = append(buf, x, y, float32(scale), r, g, b, 1.0)
	}
	return buf
}

// cellCenter converts a grid cell to world coordinates. Grid y grows upward;
// screen y grows downward, so the row order is flipped.
func cellCenter(p sim.Position) (float32, float32) {
	return float32(p.X) + 0.5, float32(ArenaHeight-p.Y) - 0.5
}
