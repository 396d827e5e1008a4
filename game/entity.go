// Package game holds the simulation: entities, paddle and ball behavior,
// and the per-frame world step. It knows nothing about ebiten; the cmd
// layer feeds it input snapshots and delta times and the render package
// turns entities into triangles.
package game

import (
	"math"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/geometry"
	"github.com/wvoliveira/pong/input"
)

// Kind selects an entity's per-frame behavior.
type Kind int

const (
	KindDecoration Kind = iota
	KindPaddle
	KindBall
)

func (k Kind) String() string {
	switch k {
	case KindDecoration:
		return "decoration"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	}
	return "unknown"
}

// Primitive says how an entity's vertex list is assembled into triangles.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
)

// Color is a normalized RGBA color.
type Color struct {
	R, G, B, A float32
}

var white = Color{1, 1, 1, 1}

// Entity is a single flat record for everything on the field. Which of the
// tail fields are meaningful depends on Kind.
type Entity struct {
	Kind  Kind
	Pos   geometry.Vec2
	Vel   geometry.Vec2
	Color Color

	// Geometry in local coordinates; drawn translated by Pos.
	Verts []geometry.Vec2
	Prim  Primitive

	// Paddle fields. Pos is the top-left corner of the collision box.
	Keys input.Bindings
	Rate float32
	Size geometry.Vec2

	// Ball fields. Pos is the center of the disc.
	Speed    float32
	Diameter float32

	insideCollider bool
}

// NewPaddle builds a paddle at pos (top-left) moved by the given key pair.
func NewPaddle(cfg configs.Config, pos geometry.Vec2, keys input.Bindings) *Entity {
	return &Entity{
		Kind:  KindPaddle,
		Pos:   pos,
		Color: white,
		Verts: quadVerts(cfg.PaddleWidth, cfg.PaddleHeight),
		Prim:  TriangleStrip,
		Keys:  keys,
		Rate:  cfg.PaddleRate,
		Size:  geometry.Vec2{X: cfg.PaddleWidth, Y: cfg.PaddleHeight},
	}
}

// CenterLine builds the dashed line decorations down the middle of the
// field. Decorations are drawn but never updated.
func CenterLine(cfg configs.Config) []*Entity {
	const dash, gap, width = 14, 12, 4
	gray := Color{0.5, 0.5, 0.5, 1}
	var line []*Entity
	for y := float32(0); y < cfg.ScreenHeight; y += dash + gap {
		line = append(line, &Entity{
			Kind:  KindDecoration,
			Pos:   geometry.Vec2{X: cfg.ScreenWidth/2 - width/2, Y: y},
			Color: gray,
			Verts: quadVerts(width, dash),
			Prim:  TriangleStrip,
		})
	}
	return line
}

// quadVerts is a w×h rectangle as a two-triangle strip.
func quadVerts(w, h float32) []geometry.Vec2 {
	return []geometry.Vec2{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: 0, Y: h},
		{X: w, Y: h},
	}
}

// discVerts is a circle of the given radius as a triangle fan around the
// origin.
func discVerts(radius float32, segments int) []geometry.Vec2 {
	verts := make([]geometry.Vec2, 0, segments+2)
	verts = append(verts, geometry.Vec2{})
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts, geometry.Vec2{
			X: radius * float32(math.Cos(a)),
			Y: radius * float32(math.Sin(a)),
		})
	}
	return verts
}
