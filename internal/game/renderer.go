package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Camera maps world (cell) coordinates to the framebuffer. Zoom is pixels
// per cell.
type Camera struct {
	X, Y float64
	Zoom float64
}

// arenaCamera centers the full arena in the framebuffer at the largest zoom
// that fits both axes.
func arenaCamera(fbW, fbH int) Camera {
	zx := float64(fbW) / float64(ArenaWidth)
	zy := float64(fbH) / float64(ArenaHeight)
	zoom := zx
	if zy < zoom {
		zoom = zy
	}
	return Camera{
		X:    float64(ArenaWidth) / 2,
		Y:    float64(ArenaHeight) / 2,
		Zoom: zoom,
	}
}

// Renderer draws the scene as point sprites through a single streaming VBO.
// Each sprite is 7 floats: x, y, size, r, g, b, a.
type Renderer struct {
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	uCamera     int32
	uZoom       int32
	uResolution int32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{spriteProg: spriteProg}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(7 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.spriteVAO = vao
	r.spriteVBO = vbo

	gl.UseProgram(spriteProg)
	r.uCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.spriteVBO != 0 {
		gl.DeleteBuffers(1, &r.spriteVBO)
	}
	if r.spriteVAO != 0 {
		gl.DeleteVertexArrays(1, &r.spriteVAO)
	}
	if r.spriteProg != 0 {
		gl.DeleteProgram(r.spriteProg)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites streams the sprite buffer and draws it as points.
// buf format: [x, y, size, r, g, b, a] * N (7 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 7
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*7*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
