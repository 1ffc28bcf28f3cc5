package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/quartzweave/ringforge/internal/geom"
	"github.com/quartzweave/ringforge/internal/logger"
)

// renderViewportPanel embeds the offscreen render target as an imgui image
// and routes mouse input on it to the orbit camera.
func (app *App) renderViewportPanel() {
	avail := imgui.ContentRegionAvail()
	side := avail.X
	if avail.Y-40 < side {
		side = avail.Y - 40
	}
	if side < 100 {
		side = 100
	}

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(app.viewport.ColorTexture()))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(side, side),
		imgui.NewVec2(0, 1), // UV flipped, OpenGL origin is bottom-left
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.08, 0.09, 0.11, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if imgui.IsItemHovered() {
		mousePos := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			deltaX := mousePos.X - app.lastMousePos.X
			deltaY := mousePos.Y - app.lastMousePos.Y
			app.camera.HandleDrag(deltaX, deltaY)
		}
		app.lastMousePos = mousePos

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			app.camera.HandleZoom(wheel)
		}
	}

	if imgui.Button("Fit View") {
		app.camera.FitToBounds(app.ring.Bounds())
	}
	imgui.SameLine()
	imgui.TextDisabled("(Drag to orbit, scroll to zoom)")

	imgui.Text(fmt.Sprintf("Vertices: %d  Triangles: %d", app.vertexCount, app.triangleCount))
}

// renderParamPanel draws the generator sliders. Every slider writes through
// the parameter store so the viewer and the mesh rebuild stay in sync.
func (app *App) renderParamPanel() {
	p := app.params.Value()
	changed := false

	imgui.Text("Ring")
	radial := int32(p.RadialSegments)
	if imgui.SliderIntV("Segments", &radial, 3, 512, "%d", imgui.SliderFlagsNone) {
		p.RadialSegments = int(radial)
		changed = true
	}
	if imgui.SliderFloatV("Radius", &p.RingRadius, 0.2, 5.0, "%.2f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Arc", &p.ArcDegrees, 15, 360, "%.0f deg", imgui.SliderFlagsNone) {
		changed = true
	}

	imgui.Separator()
	imgui.Text("Cross-section")
	if imgui.SliderFloatV("Scale", &p.ProfileScale, 0.05, 2.0, "%.2f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Thickness", &p.Thickness, 0.05, 3.0, "%.2f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Twist", &p.TwistDegrees, -720, 720, "%.0f deg", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Taper", &p.Taper, -1.0, 1.0, "%.2f", imgui.SliderFlagsNone) {
		changed = true
	}

	imgui.Separator()
	imgui.Text("Modulation")
	if imgui.SliderFloatV("Scale Wave", &p.ScaleVariance, 0, 1.0, "%.2f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Scale Freq", &p.ScaleFrequency, 0, 16, "%.1f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Tilt", &p.TiltVariance, 0, 60, "%.0f deg", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Tilt Freq", &p.TiltFrequency, 0, 16, "%.1f", imgui.SliderFlagsNone) {
		changed = true
	}

	if changed {
		app.params.Set(p)
	}

	imgui.Separator()
	imgui.Text("Appearance")
	imgui.ColorEdit3("Color", &app.ring.Color)

	imgui.Separator()
	if imgui.Button("Reset Parameters") {
		app.params.Set(geom.DefaultParams())
	}
	if imgui.Button("Save as Defaults") {
		app.saveConfig()
	}
}

// saveConfig writes the current parameters back to the user config file so
// the next launch starts from them.
func (app *App) saveConfig() {
	p := app.params.Value()
	app.cfg.Ring.RadialSegments = p.RadialSegments
	app.cfg.Ring.TwistDegrees = p.TwistDegrees
	app.cfg.Ring.ProfileScale = p.ProfileScale
	app.cfg.Ring.Taper = p.Taper
	app.cfg.Ring.RingRadius = p.RingRadius
	app.cfg.Ring.Thickness = p.Thickness
	app.cfg.Ring.ArcDegrees = p.ArcDegrees
	app.cfg.Ring.ScaleVariance = p.ScaleVariance
	app.cfg.Ring.ScaleFrequency = p.ScaleFrequency
	app.cfg.Ring.TiltVariance = p.TiltVariance
	app.cfg.Ring.TiltFrequency = p.TiltFrequency

	if err := app.cfg.Save(); err != nil {
		logger.Error("failed to save config", zap.Error(err))
		return
	}
	logger.Info("config saved")
}
