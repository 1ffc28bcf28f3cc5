// Package ring renders the generated ring mesh with a simple lit shader.
package ring

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/quartzweave/ringforge/internal/engine/shader"
	"github.com/quartzweave/ringforge/internal/geom"
	"github.com/quartzweave/ringforge/internal/logger"
	"github.com/quartzweave/ringforge/pkg/math"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    vNormal = mat3(uModel) * aNormal;
    vTexCoord = aTexCoord;
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform vec3 uColor;

out vec4 FragColor;

void main() {
    vec3 normal = normalize(vNormal);
    vec3 lightDir = normalize(uLightDir);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 result = (uAmbient + diff * uDiffuse) * uColor;
    FragColor = vec4(result, 1.0);
}
`

// Renderer owns the GPU copy of the current ring mesh. The mesh is rebuilt
// from scratch on every profile or parameter change; no incremental updates.
type Renderer struct {
	program uint32

	locModel      int32
	locView       int32
	locProjection int32
	locLightDir   int32
	locAmbient    int32
	locDiffuse    int32
	locColor      int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	bounds geom.Bounds

	// Surface color, editable from the UI.
	Color [3]float32
}

// New compiles the lit shader and prepares an empty renderer. The OpenGL
// context must already be current.
func New() (*Renderer, error) {
	r := &Renderer{
		Color: [3]float32{0.78, 0.63, 0.25},
	}

	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("ring shader: %w", err)
	}
	r.program = program

	r.locModel = shader.GetUniform(program, "uModel")
	r.locView = shader.GetUniform(program, "uView")
	r.locProjection = shader.GetUniform(program, "uProjection")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	r.locDiffuse = shader.GetUniform(program, "uDiffuse")
	r.locColor = shader.GetUniform(program, "uColor")

	return r, nil
}

// UpdateProfile regenerates the mesh from the outline and parameters and
// replaces the GPU buffers. An empty outline is a no-op: the previously
// displayed mesh stays up, since empty lists occur mid-preset-swap.
func (r *Renderer) UpdateProfile(points []math.Vec2, p geom.Params) {
	mesh := geom.Generate(points, p)
	if mesh == nil {
		return
	}

	r.upload(mesh)

	logger.Debug("ring mesh rebuilt",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
	)
}

// UpdateMesh replaces the GPU buffers with an already-generated mesh.
// A nil or empty mesh is a no-op.
func (r *Renderer) UpdateMesh(mesh *geom.Mesh) {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return
	}
	r.upload(mesh)
}

// Bounds returns the bounding box of the last uploaded mesh.
func (r *Renderer) Bounds() geom.Bounds {
	return r.bounds
}

func (r *Renderer) upload(mesh *geom.Mesh) {
	r.clearBuffers()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(unsafe.Sizeof(geom.Vertex{})), unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(geom.Vertex{}))

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.indexCount = int32(len(mesh.Indices))
	r.bounds = mesh.Bounds
}

// Draw renders the current mesh with the given matrices.
func (r *Renderer) Draw(model, view, projection math.Mat4) {
	if r.indexCount == 0 {
		return
	}

	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())

	gl.Uniform3f(r.locLightDir, 0.4, 1.0, 0.6)
	gl.Uniform3f(r.locAmbient, 0.25, 0.25, 0.28)
	gl.Uniform3f(r.locDiffuse, 0.85, 0.85, 0.8)
	gl.Uniform3f(r.locColor, r.Color[0], r.Color[1], r.Color[2])

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (r *Renderer) clearBuffers() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}

// Destroy releases all OpenGL resources.
func (r *Renderer) Destroy() {
	r.clearBuffers()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
