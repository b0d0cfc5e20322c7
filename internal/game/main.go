package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/sim"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		PlaySound(SoundBoot)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	br, bg, bb := Palette.Background.floats()
	gl.ClearColor(br, bg, bb, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	world := sim.New(sim.Config{
		Width:        ArenaWidth,
		Height:       ArenaHeight,
		MoveInterval: MoveInterval,
		FoodInterval: FoodInterval,
		Seed:         seed,
	})
	visuals := NewEntityTable()
	visuals.Apply(world.Drain())

	var spriteBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		pressed := PressedDirections(window)
		if err := world.Update(time.Duration(dt*float64(time.Second)), pressed); err != nil {
			panic(fmt.Errorf("simulation: %w", err))
		}

		events := world.Drain()
		visuals.Apply(events)
		playFrameSounds(events)

		rend.BeginFrame(fbW, fbH)
		spriteBuf = visuals.SpriteData(spriteBuf[:0])
		rend.DrawSprites(spriteBuf, arenaCamera(fbW, fbH), fbW, fbH)

		window.SwapBuffers()
	}
}

// playFrameSounds maps one frame's lifecycle events to effects: a despawned
// head means the game ended; a despawned food on a surviving snake means it
// was eaten. The reset also despawns food, so the game-over jingle wins.
func playFrameSounds(events []sim.EntityEvent) {
	var ate, died bool
	for _, ev := range events {
		if ev.Op != sim.OpDespawn {
			continue
		}
		switch ev.Kind {
		case sim.KindFood:
			ate = true
		case sim.KindHead:
			died = true
		}
	}
	if died {
		PlaySound(SoundGameOver)
		return
	}
	if ate {
		PlaySound(SoundEat)
	}
}
