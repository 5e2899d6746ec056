// Package gfxtest provides an in-memory core.Renderer for tests.
package gfxtest

import (
	"fmt"

	"github.com/hubastard/groveui/engine/core"
)

type Texture struct {
	W, H   int
	Pixels []byte
}

func (t *Texture) Size() (int, int) { return t.W, t.H }
func (t *Texture) Release()         {}

type Pipeline struct{ Desc core.PipelineDesc }

func (*Pipeline) Release() {}

type Mesh struct {
	VertCap, IndCap int
	Vertices        []float32
	Indices         []uint32
}

func (*Mesh) Release() {}

// Call is a snapshot of one Draw.
type Call struct {
	Vertices []float32
	Indices  []uint32
	Uniforms map[string]any
	Samplers map[string]core.Texture
}

// Recorder records resources and draw calls.
type Recorder struct {
	Textures []*Texture
	Calls    []Call
}

var _ core.Renderer = (*Recorder)(nil)

func (r *Recorder) Resize(int, int)                          {}
func (r *Recorder) Clear(float32, float32, float32, float32) {}
func (r *Recorder) Shutdown()                                {}

func (r *Recorder) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	return &Pipeline{Desc: desc}, nil
}

func (r *Recorder) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	t := &Texture{W: desc.Width, H: desc.Height, Pixels: append([]byte(nil), desc.Pixels...)}
	r.Textures = append(r.Textures, t)
	return t, nil
}

func (r *Recorder) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	return &Mesh{VertCap: len(desc.Vertices), IndCap: len(desc.Indices)}, nil
}

func (r *Recorder) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	m := cm.(*Mesh)
	if len(vertices) > m.VertCap || len(indices) > m.IndCap {
		return fmt.Errorf("mesh overflow: %d/%d verts, %d/%d inds", len(vertices), m.VertCap, len(indices), m.IndCap)
	}
	m.Vertices = append(m.Vertices[:0], vertices...)
	m.Indices = append(m.Indices[:0], indices...)
	return nil
}

func (r *Recorder) Draw(cmd core.DrawCmd) {
	m := cmd.Mesh.(*Mesh)
	c := Call{
		Vertices: append([]float32(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
		Uniforms: make(map[string]any, len(cmd.Uniforms)),
		Samplers: make(map[string]core.Texture, len(cmd.Samplers)),
	}
	for k, v := range cmd.Uniforms {
		c.Uniforms[k] = v
	}
	for k, v := range cmd.Samplers {
		c.Samplers[k] = v
	}
	r.Calls = append(r.Calls, c)
}
