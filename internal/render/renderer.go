package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/cavekit/cavemesh/internal/logger"
	"github.com/cavekit/cavemesh/internal/meshgen"
	"github.com/cavekit/cavemesh/pkg/math"
)

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;

void main() {
	gl_Position = uProj * uView * vec4(aPos, 1.0);
	vNormal = aNormal;
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	// Walls are seen from inside the cave, so light back faces too.
	float diffuse = abs(dot(normalize(vNormal), normalize(uLightDir)));
	FragColor = vec4(uColor * (0.3 + 0.7 * diffuse), 1.0);
}
`

// Renderer draws uploaded meshes with a single lit color shader.
type Renderer struct {
	program  uint32
	locView  int32
	locProj  int32
	locColor int32
	locLight int32
}

// NewRenderer initializes OpenGL state and compiles the shader.
// Must be called after the GL context exists.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Wall strips face inward; culling would hide them from outside views.
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.08, 0.08, 0.12, 1.0)

	program, err := compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling mesh shader: %w", err)
	}

	return &Renderer{
		program:  program,
		locView:  uniform(program, "uView"),
		locProj:  uniform(program, "uProj"),
		locColor: uniform(program, "uColor"),
		locLight: uniform(program, "uLightDir"),
	}, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Begin clears the frame and binds the shader with the given matrices.
func (r *Renderer) Begin(view, proj math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProj, 1, false, proj.Ptr())
	gl.Uniform3f(r.locLight, 0.4, 1.0, 0.3)
}

// Draw renders an uploaded mesh in the given color.
func (r *Renderer) Draw(m *GPUMesh, color [3]float32) {
	if m == nil || m.count == 0 {
		return
	}
	gl.Uniform3f(r.locColor, color[0], color[1], color[2])
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// GPUMesh is a mesh uploaded to GL buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Upload interleaves positions with accumulated per-vertex normals and
// uploads the buffers. Empty meshes upload as a no-op handle.
func Upload(m *meshgen.Mesh) *GPUMesh {
	if len(m.Indices) == 0 {
		return &GPUMesh{}
	}

	normals := vertexNormals(m)
	data := make([]float32, 0, 6*len(m.Vertices))
	for i, v := range m.Vertices {
		n := normals[i]
		data = append(data, v.X, v.Y, v.Z, n.X, n.Y, n.Z)
	}

	g := &GPUMesh{count: int32(len(m.Indices))}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return g
}

// Delete releases the mesh buffers.
func (g *GPUMesh) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
}

// vertexNormals accumulates face normals onto each vertex and normalizes.
// Wall quads share no vertices, so they keep hard per-panel normals; the top
// surface averages to a smooth result.
func vertexNormals(m *meshgen.Mesh) []math.Vec3 {
	normals := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a := m.Vertices[ia]
		b := m.Vertices[ib]
		c := m.Vertices[ic]
		n := b.Sub(a).Cross(c.Sub(a))
		normals[ia] = normals[ia].Add(n)
		normals[ib] = normals[ib].Add(n)
		normals[ic] = normals[ic].Add(n)
	}
	for i := range normals {
		n := normals[i].Normalize()
		if n == (math.Vec3{}) {
			n = math.Vec3{Y: 1}
		}
		normals[i] = n
	}
	return normals
}
