package main

import (
	"image/color"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/geometry"
	"github.com/wvoliveira/pong/input"
	"github.com/wvoliveira/pong/render"
)

// keymap translates the configurable key identifiers to ebiten keys.
var keymap = map[input.Key]ebiten.Key{
	"w": ebiten.KeyW,
	"s": ebiten.KeyS,
	"o": ebiten.KeyO,
	"l": ebiten.KeyL,
	"`": ebiten.KeyBackquote,
}

type Game struct {
	cfg      configs.Config
	world    *game.World
	renderer *render.Renderer
	face     text.Face

	// Wall-clock time of the previous frame; zero on the first one.
	last time.Time
}

func (g *Game) Update() error {
	var pressed, justPressed []input.Key
	for id, key := range keymap {
		if ebiten.IsKeyPressed(key) {
			pressed = append(pressed, id)
		}
		if inpututil.IsKeyJustPressed(key) {
			justPressed = append(justPressed, id)
		}
	}

	now := time.Now()
	var dt float32
	if !g.last.IsZero() {
		dt = float32(now.Sub(g.last).Seconds())
	}
	g.last = now

	g.world.Step(dt, input.Capture(pressed, justPressed))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.BeginFrame(screen)
	for _, e := range g.world.Entities() {
		g.renderer.DrawEntity(screen, e)
	}

	msg := "Left: W/S  |  Right: O/L  |  `: extra ball"
	text.Draw(screen, msg, g.face, &text.DrawOptions{})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

func main() {
	cfg := configs.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world := game.NewWorld(cfg, rng)

	left := game.NewPaddle(cfg, paddlePos(cfg, cfg.PaddleInset), cfg.LeftKeys)
	right := game.NewPaddle(cfg, paddlePos(cfg, cfg.ScreenWidth-cfg.PaddleInset-cfg.PaddleWidth), cfg.RightKeys)
	for _, p := range []*game.Entity{left, right} {
		world.Add(p)
		if err := world.AddCollider(p); err != nil {
			slog.Error("error to register collider", "error", err)
			os.Exit(1)
		}
	}
	for _, d := range game.CenterLine(cfg) {
		world.Add(d)
	}
	world.SpawnBall()

	g := &Game{
		cfg:      cfg,
		world:    world,
		renderer: render.New(color.RGBA{0x20, 0x20, 0x30, 0xff}),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Pong")

	if err := ebiten.RunGame(g); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}

// paddlePos vertically centers a paddle at the given x.
func paddlePos(cfg configs.Config, x float32) geometry.Vec2 {
	return geometry.Vec2{X: x, Y: (cfg.ScreenHeight - cfg.PaddleHeight) / 2}
}
