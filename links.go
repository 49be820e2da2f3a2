package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	linkRadius  = 100.0
	linkRadius2 = linkRadius * linkRadius
	cellSize    = 120.0
)

// Bin holds the indices of the particles inside one grid cell.
type Bin []int

// buildBins buckets particles into cellSize grid cells. The cell size
// exceeds linkRadius, so any linkable neighbor of a particle sits in the
// 3x3 block around its own cell.
func buildBins(particles []*Particle) map[int]Bin {
	bins := make(map[int]Bin, len(particles))
	for i, p := range particles {
		cx := int(math.Floor(p.X / cellSize))
		cy := int(math.Floor(p.Y / cellSize))
		key := cx*10000 + cy
		bins[key] = append(bins[key], i)
	}
	return bins
}

// forEachLink calls fn exactly once per unordered pair of particles closer
// than linkRadius, passing their separation. The grid is rebuilt on every
// call; particles move every frame, so there is nothing to maintain
// incrementally.
func forEachLink(particles []*Particle, fn func(a, b *Particle, dist float64)) {
	bins := buildBins(particles)
	for i, p := range particles {
		cx := int(math.Floor(p.X / cellSize))
		cy := int(math.Floor(p.Y / cellSize))
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				bin, ok := bins[(cx+dx)*10000+(cy+dy)]
				if !ok {
					continue
				}
				for _, j := range bin {
					if j <= i {
						continue
					}
					q := particles[j]
					ddx := p.X - q.X
					ddy := p.Y - q.Y
					d2 := ddx*ddx + ddy*ddy
					if d2 < linkRadius2 {
						fn(p, q, math.Sqrt(d2))
					}
				}
			}
		}
	}
}

// drawLinks strokes a line between near neighbors, fading with distance
// and fully transparent at linkRadius. Returns the number of links for the
// HUD.
func drawLinks(screen *ebiten.Image, particles []*Particle) int {
	n := 0
	forEachLink(particles, func(a, b *Particle, dist float64) {
		alpha := 1 - dist/linkRadius
		col := color.NRGBA{200, 200, 200, uint8(alpha * 255)}
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, col, true)
		n++
	})
	return n
}
