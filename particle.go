package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Physics constants
const (
	attractRadius  = 150.0
	attractRadius2 = attractRadius * attractRadius
	attractGain    = 0.1
	dampTracked    = 0.99  // damping while the pointer is on the canvas
	dampIdle       = 0.998 // gentler decay while it is away
	driftJitter    = 0.015
	bounceLoss     = -0.9
	pulseStep      = 0.1
	minSize        = 1.0
	maxSize        = 4.0
	burstFade      = 0.02
)

type particleKind int

const (
	kindAmbient particleKind = iota
	kindBurst
)

// Cursor is the pointer position as seen by the simulation. Present
// distinguishes a real position from no pointer at all; an absent cursor
// carries no coordinates, it is never (0,0).
type Cursor struct {
	X, Y    float64
	Present bool
}

// Particle is one self-propelled point. Ambient particles live forever and
// chase the pointer; burst particles are click debris that fades out.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Gray    uint8
	Alpha   float64
	kind    particleKind
	sizeDir float64
}

func newAmbientParticle(x, y float64, rng *rand.Rand) *Particle {
	speed := 0.3 + rng.Float64()*0.5
	angle := rng.Float64() * 2 * math.Pi
	return &Particle{
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Size:    minSize + rng.Float64()*3,
		Gray:    uint8(rng.Intn(255)),
		Alpha:   1,
		kind:    kindAmbient,
		sizeDir: 1,
	}
}

func newBurstParticle(x, y float64, rng *rand.Rand) *Particle {
	speed := 1 + rng.Float64()*2
	angle := rng.Float64() * 2 * math.Pi
	return &Particle{
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Size:    2 + rng.Float64()*2,
		Gray:    uint8(rng.Intn(255)),
		Alpha:   1,
		kind:    kindBurst,
		sizeDir: 1,
	}
}

// Step advances the particle one tick inside a width x height field:
// kind-specific steering, then Euler integration, edge bounce, and the
// size pulse.
func (p *Particle) Step(cur Cursor, width, height float64, drift bool, rng *rand.Rand) {
	p.steer(cur, drift, rng)

	p.X += p.VX
	p.Y += p.VY

	// Reflective bounce with 10% energy loss, per axis. Position may
	// overshoot by one step; only the velocity is corrected.
	if p.X <= 0 || p.X >= width-1 {
		p.VX *= bounceLoss
	}
	if p.Y <= 0 || p.Y >= height-1 {
		p.VY *= bounceLoss
	}

	p.Size += p.sizeDir * pulseStep
	if p.Size > maxSize {
		p.Size = maxSize
		p.sizeDir = -1
	} else if p.Size < minSize {
		p.Size = minSize
		p.sizeDir = 1
	}
}

// steer applies the kind-specific part of the step: pointer attraction,
// idle drift and damping for ambient particles, opacity fade for burst
// debris. Burst particles coast on their launch momentum alone.
func (p *Particle) steer(cur Cursor, drift bool, rng *rand.Rand) {
	if p.kind == kindBurst {
		p.Alpha -= burstFade
		return
	}

	var dist2 float64
	if cur.Present {
		dx := cur.X - p.X
		dy := cur.Y - p.Y
		dist2 = dx*dx + dy*dy
	}

	if !cur.Present && drift {
		p.VX += (rng.Float64()*2 - 1) * driftJitter
		p.VY += (rng.Float64()*2 - 1) * driftJitter
	}

	// Attraction scales linearly from the rim of the radius to the
	// pointer itself. dist2 == 0 means the particle sits exactly on the
	// pointer; there is no direction to pull in, so skip it.
	if cur.Present && dist2 > 0 && dist2 < attractRadius2 {
		force := (attractRadius2 - dist2) / attractRadius2
		dist := math.Sqrt(dist2)
		p.VX += (cur.X - p.X) / dist * force * attractGain
		p.VY += (cur.Y - p.Y) / dist * force * attractGain
	}

	if cur.Present {
		p.VX *= dampTracked
		p.VY *= dampTracked
	} else {
		p.VX *= dampIdle
		p.VY *= dampIdle
	}
}

// Draw paints the particle as a filled grayscale circle. Alpha is clamped
// at zero so a faded burst never requests a negative paint.
func (p *Particle) Draw(screen *ebiten.Image) {
	a := p.Alpha
	if a < 0 {
		a = 0
	}
	col := color.NRGBA{p.Gray, p.Gray, p.Gray, uint8(a * 255)}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), col, true)
}

// Dead reports whether a burst particle has fully faded. Ambient particles
// never die.
func (p *Particle) Dead() bool {
	return p.kind == kindBurst && p.Alpha <= 0
}
