package game

import (
	"github.com/wvoliveira/pong/geometry"
	"github.com/wvoliveira/pong/input"
)

// updatePaddle moves the paddle at its fixed rate while a bound key is
// held. The paddle is not clamped to the field; holding a key long enough
// moves it off-screen.
func updatePaddle(p *Entity, dt float32, in input.State) {
	if in.Pressed(p.Keys.Up) {
		p.Pos.Y -= p.Rate * dt
	}
	if in.Pressed(p.Keys.Down) {
		p.Pos.Y += p.Rate * dt
	}
}

// collisionRect is the paddle's box, anchored at Pos.
func (p *Entity) collisionRect() geometry.Rect {
	return geometry.RectAt(p.Pos, p.Size.X, p.Size.Y)
}
