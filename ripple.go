package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	rippleGrowth = 2.4
	rippleFade   = 0.02
)

// Ripple is the expanding ring left behind by a click.
type Ripple struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

func NewRipple(x, y float64) *Ripple {
	return &Ripple{X: x, Y: y, Radius: 4, Alpha: 1}
}

func (r *Ripple) Step() {
	r.Radius += rippleGrowth
	r.Alpha -= rippleFade
}

func (r *Ripple) Dead() bool { return r.Alpha <= 0 }

func (r *Ripple) Draw(screen *ebiten.Image) {
	a := r.Alpha
	if a < 0 {
		a = 0
	}
	col := color.NRGBA{220, 220, 220, uint8(a * 160)}
	vector.StrokeCircle(screen, float32(r.X), float32(r.Y), float32(r.Radius), 1, col, true)
}
