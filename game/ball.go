package game

import "github.com/wvoliveira/pong/geometry"

// updateBall runs one frame of ball physics: resolve at most one collision
// outcome, apply its velocity modifier, then integrate position.
func (w *World) updateBall(b *Entity, dt float32) {
	mx, my := w.collide(b)
	b.Vel.X *= mx
	b.Vel.Y *= my
	b.Pos = b.Pos.Add(b.Vel.Scale(b.Speed * dt))
}

// collide evaluates the collision chain and returns the velocity modifier
// for this frame. First match wins:
//
//  1. ball center inside a paddle box grown by the ball's radius, and not
//     already flagged inside a collider: reverse X, set the flag;
//  2. top or bottom edge: reverse Y, no debounce;
//  3. left or right edge: recenter with fresh random velocity and color;
//  4. nothing hit: clear the flag.
//
// Reversed modifiers carry the acceleration factor, so every bounce speeds
// the ball up a little. The flag is only cleared by the final branch, so a
// ball that slides from a paddle straight into a wall keeps it set; while
// overlap persists the chain alternates between branches 1 and 4, flipping
// and accelerating every other frame.
func (w *World) collide(b *Entity) (mx, my float32) {
	half := b.Diameter / 2
	for _, p := range w.colliders {
		if p.collisionRect().Expand(half).Contains(b.Pos) && !b.insideCollider {
			b.insideCollider = true
			return -w.accel, w.accel
		}
	}

	switch {
	case b.Pos.Y <= 0 || b.Pos.Y >= w.height:
		return w.accel, -w.accel

	case b.Pos.X <= 0 || b.Pos.X >= w.width:
		b.Pos = geometry.Vec2{X: w.width / 2, Y: w.height / 2}
		b.Vel = w.randomVelocity()
		b.Color = w.randomColor()
		return 1, 1

	default:
		b.insideCollider = false
		return 1, 1
	}
}

// randomVelocity launches left or right with equal probability and a mild
// vertical component.
func (w *World) randomVelocity() geometry.Vec2 {
	x := float32(1)
	if w.rng.Intn(2) == 0 {
		x = -1
	}
	return geometry.Vec2{X: x, Y: w.rng.Float32() - 0.5}
}

func (w *World) randomColor() Color {
	return Color{
		R: w.rng.Float32(),
		G: w.rng.Float32(),
		B: w.rng.Float32(),
		A: 1,
	}
}
