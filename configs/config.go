package configs

import "github.com/wvoliveira/pong/input"

// Game tuning. Everything is in pixels and seconds.
type Config struct {
	ScreenWidth  float32
	ScreenHeight float32

	PaddleWidth  float32
	PaddleHeight float32
	PaddleInset  float32
	PaddleRate   float32

	BallDiameter float32
	BallSpeed    float32

	// Velocity multiplier applied on every bounce.
	Acceleration float32

	LeftKeys  input.Bindings
	RightKeys input.Bindings
	SpawnKey  input.Key
}

func New() Config {
	return Config{
		ScreenWidth:  960,
		ScreenHeight: 540,

		PaddleWidth:  10,
		PaddleHeight: 100,
		PaddleInset:  10,
		PaddleRate:   480,

		BallDiameter: 10,
		BallSpeed:    320,

		Acceleration: 1.01,

		LeftKeys:  input.Bindings{Up: "w", Down: "s"},
		RightKeys: input.Bindings{Up: "o", Down: "l"},
		SpawnKey:  "`",
	}
}
