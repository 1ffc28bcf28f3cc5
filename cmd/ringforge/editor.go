package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/quartzweave/ringforge/internal/geom"
	"github.com/quartzweave/ringforge/internal/profile"
	"github.com/quartzweave/ringforge/pkg/math"
)

// Canvas maps outline space [-0.7, 0.7] to pixels, Y up.
const canvasExtent = 0.7

const (
	pointRadius  = 5.0
	pointHitDist = 10.0
)

// renderProfileEditor draws the 2D outline canvas: grid, smoothed outline
// preview, and draggable control points.
func (app *App) renderProfileEditor() {
	for i, name := range profile.PresetNames {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(name) {
			app.source.ApplyPreset(name)
		}
	}

	imgui.Separator()

	avail := imgui.ContentRegionAvail()
	size := avail.X
	if size > avail.Y-60 {
		size = avail.Y - 60
	}
	if size < 100 {
		size = 100
	}

	origin := imgui.CursorScreenPos()
	drawList := imgui.WindowDrawList()

	toCanvas := func(p math.Vec2) imgui.Vec2 {
		return imgui.NewVec2(
			origin.X+(p.X/canvasExtent+1)*size/2,
			origin.Y+(1-p.Y/canvasExtent)*size/2,
		)
	}
	fromCanvas := func(c imgui.Vec2) math.Vec2 {
		return math.Vec2{
			X: ((c.X-origin.X)*2/size - 1) * canvasExtent,
			Y: (1 - (c.Y-origin.Y)*2/size) * canvasExtent,
		}
	}

	// Background and axis grid
	bg := imgui.ColorU32Vec4(imgui.NewVec4(0.13, 0.13, 0.15, 1.0))
	gridCol := imgui.ColorU32Vec4(imgui.NewVec4(0.25, 0.25, 0.28, 1.0))
	drawList.AddRectFilledV(origin, imgui.NewVec2(origin.X+size, origin.Y+size), bg, 0, 0)
	drawList.AddLineV(
		imgui.NewVec2(origin.X, origin.Y+size/2),
		imgui.NewVec2(origin.X+size, origin.Y+size/2),
		gridCol, 1,
	)
	drawList.AddLineV(
		imgui.NewVec2(origin.X+size/2, origin.Y),
		imgui.NewVec2(origin.X+size/2, origin.Y+size),
		gridCol, 1,
	)

	points := app.source.Points()

	// Smoothed outline preview, drawn through the same resampling the
	// generator uses so the canvas matches the swept cross-section.
	smoothCol := imgui.ColorU32Vec4(imgui.NewVec4(0.45, 0.65, 0.9, 1.0))
	smooth := geom.Resample(points)
	for i := range smooth {
		a := toCanvas(smooth[i])
		b := toCanvas(smooth[(i+1)%len(smooth)])
		drawList.AddLineV(a, b, smoothCol, 2)
	}

	// Control polygon
	polyCol := imgui.ColorU32Vec4(imgui.NewVec4(0.4, 0.4, 0.45, 1.0))
	for i := range points {
		a := toCanvas(points[i])
		b := toCanvas(points[(i+1)%len(points)])
		drawList.AddLineV(a, b, polyCol, 1)
	}

	// Control points
	selected := app.source.Selected()
	normalCol := imgui.ColorU32Vec4(imgui.NewVec4(0.85, 0.85, 0.85, 1.0))
	selectedCol := imgui.ColorU32Vec4(imgui.NewVec4(1.0, 0.75, 0.2, 1.0))
	for i, p := range points {
		col := normalCol
		if i == selected {
			col = selectedCol
		}
		drawList.AddCircleFilledV(toCanvas(p), pointRadius, col, 12)
	}

	// Input region over the canvas
	imgui.InvisibleButton("##canvas", imgui.NewVec2(size, size))

	if imgui.IsItemHovered() {
		mouse := imgui.MousePos()

		if imgui.IsMouseClickedBool(imgui.MouseButtonLeft) {
			app.dragIndex = app.hitTest(points, mouse, toCanvas)
			app.source.Select(app.dragIndex)
		}
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) && app.dragIndex >= 0 {
			app.source.MoveTo(app.dragIndex, clampToCanvas(fromCanvas(mouse)))
		}

		// Right click: add a point on the nearest edge, or remove the point
		// under the cursor.
		if imgui.IsMouseClickedBool(imgui.MouseButtonRight) {
			if hit := app.hitTest(points, mouse, toCanvas); hit >= 0 {
				app.source.Remove(hit)
			} else if edge := nearestEdge(points, fromCanvas(mouse)); edge >= 0 {
				if idx := app.source.InsertAfter(edge); idx >= 0 {
					app.source.MoveTo(idx, clampToCanvas(fromCanvas(mouse)))
				}
			}
		}
	}
	if imgui.IsMouseReleased(imgui.MouseButtonLeft) {
		app.dragIndex = -1
	}

	imgui.Text(fmt.Sprintf("%d points", len(points)))
	imgui.TextDisabled("Drag to move, right-click to add/remove")
}

// hitTest returns the index of the point under the mouse, or -1.
func (app *App) hitTest(points []math.Vec2, mouse imgui.Vec2, toCanvas func(math.Vec2) imgui.Vec2) int {
	best := -1
	bestDist := float32(pointHitDist * pointHitDist)
	for i, p := range points {
		c := toCanvas(p)
		dx := c.X - mouse.X
		dy := c.Y - mouse.Y
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// nearestEdge returns the index of the edge whose midpoint is closest to p.
func nearestEdge(points []math.Vec2, p math.Vec2) int {
	if len(points) < 2 {
		return -1
	}
	best := -1
	bestDist := float32(1e10)
	for i := range points {
		mid := points[i].Lerp(points[(i+1)%len(points)], 0.5)
		d := mid.Distance(p)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func clampToCanvas(p math.Vec2) math.Vec2 {
	if p.X > canvasExtent {
		p.X = canvasExtent
	}
	if p.X < -canvasExtent {
		p.X = -canvasExtent
	}
	if p.Y > canvasExtent {
		p.Y = canvasExtent
	}
	if p.Y < -canvasExtent {
		p.Y = -canvasExtent
	}
	return p
}
