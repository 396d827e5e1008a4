package game

import (
	"fmt"
	"math/rand"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/geometry"
	"github.com/wvoliveira/pong/input"
)

// World owns the entity list and the registered colliders and advances the
// whole simulation one frame at a time. It is not safe for concurrent use;
// the frame driver calls Step from a single goroutine.
type World struct {
	cfg    configs.Config
	width  float32
	height float32
	accel  float32

	rng       *rand.Rand
	entities  []*Entity
	colliders []*Entity
}

func NewWorld(cfg configs.Config, rng *rand.Rand) *World {
	return &World{
		cfg:    cfg,
		width:  cfg.ScreenWidth,
		height: cfg.ScreenHeight,
		accel:  cfg.Acceleration,
		rng:    rng,
	}
}

// Add registers an entity for per-frame update and draw.
func (w *World) Add(e *Entity) {
	w.entities = append(w.entities, e)
}

// AddCollider registers an entity for ball collision tests. Only paddles
// carry a collision box.
func (w *World) AddCollider(e *Entity) error {
	if e.Kind != KindPaddle {
		return fmt.Errorf("collider must be a paddle, got %s", e.Kind)
	}
	w.colliders = append(w.colliders, e)
	return nil
}

// SpawnBall adds a ball at field center with a random velocity and color
// and returns it.
func (w *World) SpawnBall() *Entity {
	b := &Entity{
		Kind:     KindBall,
		Pos:      geometry.Vec2{X: w.width / 2, Y: w.height / 2},
		Vel:      w.randomVelocity(),
		Color:    w.randomColor(),
		Verts:    discVerts(w.cfg.BallDiameter/2, 24),
		Prim:     TriangleFan,
		Speed:    w.cfg.BallSpeed,
		Diameter: w.cfg.BallDiameter,
	}
	w.Add(b)
	return b
}

// Step advances every entity by dt seconds using this frame's input
// snapshot. The spawn key adds one more ball per press.
func (w *World) Step(dt float32, in input.State) {
	if in.JustPressed(w.cfg.SpawnKey) {
		w.SpawnBall()
	}
	for _, e := range w.entities {
		switch e.Kind {
		case KindPaddle:
			updatePaddle(e, dt, in)
		case KindBall:
			w.updateBall(e, dt)
		}
	}
}

// Entities returns the draw list in registration order.
func (w *World) Entities() []*Entity {
	return w.entities
}
