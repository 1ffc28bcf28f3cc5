// Package viewer implements the standalone ring viewer loop.
package viewer

import (
	"fmt"
	"log/slog"
	gomath "math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/quartzweave/ringforge/internal/config"
	"github.com/quartzweave/ringforge/internal/engine/camera"
	"github.com/quartzweave/ringforge/internal/engine/input"
	"github.com/quartzweave/ringforge/internal/engine/ring"
	"github.com/quartzweave/ringforge/internal/engine/window"
	"github.com/quartzweave/ringforge/internal/geom"
	"github.com/quartzweave/ringforge/internal/param"
	"github.com/quartzweave/ringforge/internal/profile"
	"github.com/quartzweave/ringforge/pkg/math"
)

// Viewer is the keyboard-driven ring viewer.
type Viewer struct {
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.OrbitCamera
	ring   *ring.Renderer

	source *profile.Source
	params *param.Store
	dirty  bool

	width  int
	height int

	dragging   bool
	lastMouseX int
	lastMouseY int
}

// New creates the viewer window and wires the outline and parameter stores
// to the mesh renderer.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Ringforge Viewer",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)

	v.ring, err = ring.New()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create ring renderer: %w", err)
	}

	v.input = input.New()
	v.camera = camera.NewOrbitCamera()

	v.source = profile.NewSource()
	v.source.ApplyPreset(cfg.Ring.Preset)
	v.params = param.NewStore()
	v.params.Set(cfg.Ring.Params())

	// Any outline or parameter change marks the mesh for rebuild; the actual
	// regeneration happens once per frame on the GL thread.
	v.source.Subscribe(func([]math.Vec2) { v.dirty = true })
	v.params.Subscribe(func(geom.Params) { v.dirty = true })

	slog.Info("viewer initialized", "preset", cfg.Ring.Preset)
	return v, nil
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}

		if v.dirty {
			v.dirty = false
			v.ring.UpdateProfile(v.source.Points(), v.params.Value())
		}

		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		v.width = e.Width
		v.height = e.Height
		gl.Viewport(0, 0, int32(e.Width), int32(e.Height))

	case input.EventKeyDown:
		v.handleKey(e.Key)

	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			v.dragging = true
			v.lastMouseX = e.MouseX
			v.lastMouseY = e.MouseY
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			v.dragging = false
		}

	case input.EventMouseMove:
		if v.dragging {
			dx := float32(e.MouseX - v.lastMouseX)
			dy := float32(e.MouseY - v.lastMouseY)
			v.camera.HandleDrag(dx, dy)
			v.lastMouseX = e.MouseX
			v.lastMouseY = e.MouseY
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(float32(e.WheelY))
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false

	case sdl.SCANCODE_1:
		v.source.ApplyPreset("circle")
	case sdl.SCANCODE_2:
		v.source.ApplyPreset("rounded-square")
	case sdl.SCANCODE_3:
		v.source.ApplyPreset("diamond")
	case sdl.SCANCODE_4:
		v.source.ApplyPreset("star")

	case sdl.SCANCODE_LEFT:
		v.params.Update(func(p *geom.Params) { p.TwistDegrees -= 15 })
	case sdl.SCANCODE_RIGHT:
		v.params.Update(func(p *geom.Params) { p.TwistDegrees += 15 })

	case sdl.SCANCODE_UP:
		v.params.Update(func(p *geom.Params) {
			p.ArcDegrees += 15
			if p.ArcDegrees > 360 {
				p.ArcDegrees = 360
			}
		})
	case sdl.SCANCODE_DOWN:
		v.params.Update(func(p *geom.Params) {
			p.ArcDegrees -= 15
			if p.ArcDegrees < 15 {
				p.ArcDegrees = 15
			}
		})

	case sdl.SCANCODE_F:
		v.camera.FitToBounds(v.ring.Bounds())

	case sdl.SCANCODE_R:
		v.params.Set(geom.DefaultParams())
	}
}

func (v *Viewer) render() {
	gl.ClearColor(0.08, 0.09, 0.11, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(v.width) / float32(v.height)
	projection := math.Perspective(45*gomath.Pi/180, aspect, 0.1, 100)
	view := v.camera.ViewMatrix()
	model := math.Identity()

	v.ring.Draw(model, view, projection)
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	slog.Info("closing viewer")

	if v.ring != nil {
		v.ring.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
