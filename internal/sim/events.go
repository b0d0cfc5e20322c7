package sim

// Entity identifies one live segment or food item. Ids are never reused
// within a process; a fresh id is handed out for every spawn.
type Entity uint64

// EntityKind tells the presentation layer what an entity is.
type EntityKind int

const (
	KindHead EntityKind = iota
	KindSegment
	KindFood
)

// EventOp is an entity lifecycle operation.
type EventOp int

const (
	OpSpawn EventOp = iota
	OpMove
	OpDespawn
)

// EntityEvent is an outbound lifecycle notification. The host maps these to
// visuals: spawn creates one, move repositions it, despawn removes it.
type EntityEvent struct {
	Op     EventOp
	Entity Entity
	Kind   EntityKind
	Pos    Position
}

// growthEvent is queued by the eating detector, one per consumed food item,
// and drained by the growth handler.
type growthEvent struct{}

// gameOverEvent is queued by the collision detector and drained by the reset
// handler; several in one frame collapse into a single reset.
type gameOverEvent struct{}
