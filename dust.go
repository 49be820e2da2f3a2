package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dustScale = 0.003 // noise sample spacing
	dustSpeed = 0.25
	dustDrift = 0.002 // time axis step per tick
)

// DustLayer is the faint texture behind the main population: slow specks
// pushed around by a perlin flow field, wrapping at the edges instead of
// bouncing.
type DustLayer struct {
	width, height float64
	specks        []*speck
	noise         *perlin.Perlin
}

type speck struct {
	x, y float64
	gray uint8
}

func NewDustLayer(width, height, count int, rng *rand.Rand) *DustLayer {
	d := &DustLayer{
		width:  float64(width),
		height: float64(height),
		noise:  perlin.NewPerlin(2, 2, 2, rng.Int63()),
	}
	for i := 0; i < count; i++ {
		d.specks = append(d.specks, &speck{
			x:    rng.Float64() * d.width,
			y:    rng.Float64() * d.height,
			gray: uint8(40 + rng.Intn(60)),
		})
	}
	return d
}

// Step pushes every speck along the flow field. The tick number is the
// field's time axis, so the flow slowly changes shape.
func (d *DustLayer) Step(tick int) {
	if d.width <= 0 || d.height <= 0 {
		return
	}
	z := float64(tick) * dustDrift
	for _, s := range d.specks {
		angle := (d.noise.Noise3D(s.x*dustScale, s.y*dustScale, z) + 1) * math.Pi
		s.x += math.Cos(angle) * dustSpeed
		s.y += math.Sin(angle) * dustSpeed
		s.x = math.Mod(s.x+d.width, d.width)
		s.y = math.Mod(s.y+d.height, d.height)
	}
}

func (d *DustLayer) Draw(screen *ebiten.Image) {
	for _, s := range d.specks {
		col := color.NRGBA{s.gray, s.gray, s.gray, 255}
		vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), 1, col, true)
	}
}
