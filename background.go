package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Background gradient endpoints, black fading into a dark gray floor.
var (
	gradientTop    = colorful.Color{R: 0, G: 0, B: 0}
	gradientBottom = colorful.Color{R: 0.125, G: 0.125, B: 0.125}
)

// gradientStrip renders the vertical background gradient into a 1px-wide
// strip; the field stretches it across the screen each frame, so the strip
// is only rebuilt on resize.
func gradientStrip(height int) *ebiten.Image {
	if height < 1 {
		height = 1
	}
	img := ebiten.NewImage(1, height)
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		img.Set(0, y, gradientTop.BlendRgb(gradientBottom, t))
	}
	return img
}
