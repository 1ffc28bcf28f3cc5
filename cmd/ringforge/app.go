package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/quartzweave/ringforge/internal/config"
	"github.com/quartzweave/ringforge/internal/engine/camera"
	"github.com/quartzweave/ringforge/internal/engine/framebuffer"
	"github.com/quartzweave/ringforge/internal/engine/ring"
	"github.com/quartzweave/ringforge/internal/geom"
	"github.com/quartzweave/ringforge/internal/logger"
	"github.com/quartzweave/ringforge/internal/param"
	"github.com/quartzweave/ringforge/internal/profile"
	"github.com/quartzweave/ringforge/pkg/math"
)

const (
	editorPanelWidth = 360
	paramPanelWidth  = 320
	viewportSize     = 1024
)

// App holds the editor state: the outline, the parameters, and the offscreen
// viewport the ring is rendered into.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	source *profile.Source
	params *param.Store
	dirty  bool

	viewport *framebuffer.Framebuffer
	ring     *ring.Renderer
	camera   *camera.OrbitCamera

	// Editor canvas state
	dragIndex    int
	lastMousePos imgui.Vec2

	// Cached stats for the status line
	vertexCount   int
	triangleCount int
}

// NewApp creates the editor window and GL resources.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:       cfg,
		dragIndex: -1,
	}

	var err error
	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow("Ringforge", cfg.Window.Width, cfg.Window.Height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)

	app.viewport, err = framebuffer.New(viewportSize, viewportSize)
	if err != nil {
		return nil, fmt.Errorf("viewport framebuffer: %w", err)
	}

	app.ring, err = ring.New()
	if err != nil {
		return nil, fmt.Errorf("ring renderer: %w", err)
	}

	app.camera = camera.NewOrbitCamera()

	app.source = profile.NewSource()
	app.source.ApplyPreset(cfg.Ring.Preset)
	app.params = param.NewStore()
	app.params.Set(cfg.Ring.Params())

	// Mark the mesh stale on every edit; rebuilds run once per frame from
	// render(), which owns the GL context.
	app.source.Subscribe(func([]math.Vec2) { app.dirty = true })
	app.params.Subscribe(func(geom.Params) { app.dirty = true })

	return app, nil
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close cleans up GL resources.
func (app *App) Close() {
	if app.ring != nil {
		app.ring.Destroy()
		app.ring = nil
	}
	if app.viewport != nil {
		app.viewport.Destroy()
		app.viewport = nil
	}
}

func (app *App) render() {
	if app.dirty {
		app.dirty = false
		app.rebuildMesh()
	}

	app.renderViewportPass()

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left: profile editor canvas
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(editorPanelWidth, workSize.Y))
	if imgui.BeginV("Profile", nil, flags) {
		app.renderProfileEditor()
	}
	imgui.End()

	// Center: 3D viewport
	centerWidth := workSize.X - editorPanelWidth - paramPanelWidth
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+editorPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(centerWidth, workSize.Y))
	if imgui.BeginV("Viewport", nil, flags) {
		app.renderViewportPanel()
	}
	imgui.End()

	// Right: parameter sliders
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+editorPanelWidth+centerWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(paramPanelWidth, workSize.Y))
	if imgui.BeginV("Parameters", nil, flags) {
		app.renderParamPanel()
	}
	imgui.End()
}

// rebuildMesh regenerates the ring from the current outline and parameters.
// An empty outline keeps the last mesh on screen.
func (app *App) rebuildMesh() {
	mesh := geom.Generate(app.source.Points(), app.params.Value())
	if mesh == nil {
		return
	}
	app.ring.UpdateMesh(mesh)

	app.vertexCount = len(mesh.Vertices)
	app.triangleCount = mesh.TriangleCount()

	logger.Debug("mesh rebuilt",
		zap.Int("vertices", app.vertexCount),
		zap.Int("triangles", app.triangleCount),
	)
}

// renderViewportPass draws the ring into the offscreen framebuffer.
func (app *App) renderViewportPass() {
	restore := app.viewport.BindWithViewport()
	defer restore()

	app.viewport.Clear(0.08, 0.09, 0.11, 1.0)

	w, h := app.viewport.Size()
	aspect := float32(w) / float32(h)
	projection := math.Perspective(0.785, aspect, 0.1, 100)
	view := app.camera.ViewMatrix()
	model := math.Identity()

	app.ring.Draw(model, view, projection)
}
