package game

import "time"

// Arena dimensions (in grid cells).
const (
	ArenaWidth  = 10
	ArenaHeight = 10
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 800
)

// Tick cadences. Movement and food spawning run on independent clocks and
// are not required to be commensurate.
const (
	MoveInterval = 1500 * time.Millisecond
	FoodInterval = 1000 * time.Millisecond
)

// Sprite sizes relative to one grid cell.
const (
	HeadScale    = 0.8
	SegmentScale = 0.65
	FoodScale    = 0.8
)

// Upper bound on sprites streamed to the GPU per draw call.
const MaxSpriteRender = 4096
