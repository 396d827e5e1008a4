// Package render draws game entities with ebiten. Each entity is one
// DrawTriangles call: its vertex list translated by its position, colored
// by its RGBA color, sourced from a plain white image.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong/game"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type Renderer struct {
	background color.RGBA
}

func New(background color.RGBA) *Renderer {
	return &Renderer{background: background}
}

// BeginFrame resets the whole surface to the background color.
func (r *Renderer) BeginFrame(dst *ebiten.Image) {
	dst.Fill(r.background)
}

// DrawEntity renders one entity onto dst.
func (r *Renderer) DrawEntity(dst *ebiten.Image, e *game.Entity) {
	indices := primitiveIndices(e.Prim, len(e.Verts))
	if len(indices) == 0 {
		return
	}

	vertices := make([]ebiten.Vertex, len(e.Verts))
	for i, v := range e.Verts {
		vertices[i] = ebiten.Vertex{
			DstX:   v.X + e.Pos.X,
			DstY:   v.Y + e.Pos.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: e.Color.R,
			ColorG: e.Color.G,
			ColorB: e.Color.B,
			ColorA: e.Color.A,
		}
	}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vertices, indices, whiteSubImage, opts)
}

// primitiveIndices expands a primitive kind over n vertices into triangle
// indices. Trailing vertices that cannot form a full triangle are dropped.
func primitiveIndices(p game.Primitive, n int) []uint16 {
	if n < 3 {
		return nil
	}
	switch p {
	case game.Triangles:
		indices := make([]uint16, 0, n-n%3)
		for i := 0; i+2 < n; i += 3 {
			indices = append(indices, uint16(i), uint16(i+1), uint16(i+2))
		}
		return indices
	case game.TriangleStrip:
		indices := make([]uint16, 0, 3*(n-2))
		for i := 2; i < n; i++ {
			indices = append(indices, uint16(i-2), uint16(i-1), uint16(i))
		}
		return indices
	case game.TriangleFan:
		indices := make([]uint16, 0, 3*(n-2))
		for i := 2; i < n; i++ {
			indices = append(indices, 0, uint16(i-1), uint16(i))
		}
		return indices
	}
	return nil
}
