package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sizeStep is one row of the viewport-to-population tables.
type sizeStep struct {
	below int
	count int
}

// The height table picks a candidate count, the width table caps it. The
// first row the dimension is strictly below wins.
var (
	heightSteps = []sizeStep{{200, 40}, {300, 60}, {400, 70}, {500, 90}, {600, 110}}
	widthSteps  = []sizeStep{{450, 40}, {600, 50}, {900, 70}, {1200, 90}, {1600, 110}}
)

const defaultCount = 130

// countForSize returns how many ambient particles a width x height viewport
// gets. Small viewports get fewer so the link pass stays cheap.
func countForSize(width, height int) int {
	count := defaultCount
	for _, s := range heightSteps {
		if height < s.below {
			count = s.count
			break
		}
	}
	for _, s := range widthSteps {
		if width < s.below {
			if s.count < count {
				count = s.count
			}
			break
		}
	}
	return count
}

// Field is the whole effect: the ambient population, click debris, the dust
// and ripple layers, and the pointer state they react to. It implements
// ebiten.Game.
type Field struct {
	width, height int
	newW, newH    int // written by Layout, consumed by applyResize

	particles []*Particle
	bursts    []*Particle
	ripples   []*Ripple
	dust      *DustLayer

	cursor Cursor
	tick   int
	paused bool

	background *ebiten.Image
	store      *SettingsStore
	pop        *popPlayer
	linkCount  int

	rng *rand.Rand
}

func NewField(width, height int, store *SettingsStore, pop *popPlayer) *Field {
	f := &Field{
		width:  width,
		height: height,
		newW:   width,
		newH:   height,
		store:  store,
		pop:    pop,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	f.createParticles()
	f.dust = NewDustLayer(width, height, store.Settings().DustCount, f.rng)
	return f
}

// createParticles throws away the current population and builds a fresh
// one sized for the current viewport, scattered uniformly.
func (f *Field) createParticles() {
	count := countForSize(f.width, f.height)
	f.particles = make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		x := f.rng.Float64() * float64(f.width)
		y := f.rng.Float64() * float64(f.height)
		f.particles = append(f.particles, newAmbientParticle(x, y, f.rng))
	}
}

// Update is called once per tick by ebiten.
func (f *Field) Update() error {
	f.handleInput()
	f.applyResize()

	if f.paused {
		return nil
	}

	f.cursor = f.readCursor()
	f.advance(f.cursor)
	return nil
}

// advance runs one simulation tick against the given pointer state.
func (f *Field) advance(cur Cursor) {
	w, h := float64(f.width), float64(f.height)
	drift := f.store.Settings().Drift

	for _, p := range f.particles {
		p.Step(cur, w, h, drift, f.rng)
	}

	alive := f.bursts[:0]
	for _, p := range f.bursts {
		p.Step(cur, w, h, false, f.rng)
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	f.bursts = alive

	f.dust.Step(f.tick)

	live := f.ripples[:0]
	for _, r := range f.ripples {
		r.Step()
		if !r.Dead() {
			live = append(live, r)
		}
	}
	f.ripples = live

	f.tick++
}

func (f *Field) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		f.paused = !f.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.createParticles()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		f.store.Settings().Drift = !f.store.Settings().Drift
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		f.store.Settings().ShowHUD = !f.store.Settings().ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := f.store.Save(); err != nil {
			log.Printf("settings: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := f.store.Load(); err != nil {
			log.Printf("settings: %v", err)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		f.explode(float64(x), float64(y))
	}
}

// explode scatters burst debris from a click point, starts a ripple, and
// fires the click pop.
func (f *Field) explode(x, y float64) {
	s := f.store.Settings()
	for i := 0; i < s.BurstCount; i++ {
		f.bursts = append(f.bursts, newBurstParticle(x, y, f.rng))
	}
	if s.Ripples {
		f.ripples = append(f.ripples, NewRipple(x, y))
	}
	if s.Sound && f.pop != nil {
		f.pop.Play()
	}
}

// readCursor rebuilds the whole cursor value for this tick. Outside the
// logical screen there is no pointer as far as the simulation is concerned.
func (f *Field) readCursor() Cursor {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return Cursor{}
	}
	return Cursor{X: float64(x), Y: float64(y), Present: true}
}

// applyResize regenerates viewport-dependent state after Layout reports a
// new window size. Resizing always rebuilds the population from scratch.
func (f *Field) applyResize() {
	if f.newW == f.width && f.newH == f.height {
		return
	}
	f.width, f.height = f.newW, f.newH
	f.createParticles()
	f.dust = NewDustLayer(f.width, f.height, f.store.Settings().DustCount, f.rng)
	f.background = nil
}

// Draw is called once per frame by ebiten.
func (f *Field) Draw(screen *ebiten.Image) {
	f.drawBackground(screen)
	f.dust.Draw(screen)
	for _, p := range f.particles {
		p.Draw(screen)
	}
	for _, p := range f.bursts {
		p.Draw(screen)
	}
	f.linkCount = drawLinks(screen, f.particles)
	for _, r := range f.ripples {
		r.Draw(screen)
	}
	if f.store.Settings().ShowHUD {
		f.drawHUD(screen)
	}
}

func (f *Field) drawBackground(screen *ebiten.Image) {
	if f.background == nil || f.background.Bounds().Dy() != f.height {
		f.background = gradientStrip(f.height)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(f.width), 1)
	screen.DrawImage(f.background, op)
}

func (f *Field) drawHUD(screen *ebiten.Image) {
	pointer := "away"
	if f.cursor.Present {
		pointer = fmt.Sprintf("(%.0f, %.0f)", f.cursor.X, f.cursor.Y)
	}
	status := fmt.Sprintf("particles: %d  bursts: %d  links: %d  tick: %d  pointer: %s",
		len(f.particles), len(f.bursts), f.linkCount, f.tick, pointer)
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
	ebitenutil.DebugPrintAt(screen,
		"Click = burst  Space = pause  R = reseed  D = drift  H = hud  S/L = save/load settings", 10, 30)
}

// Layout reports the window size back as the logical screen size, one
// logical unit per pixel, and records it for resize detection.
func (f *Field) Layout(outsideWidth, outsideHeight int) (int, int) {
	f.newW, f.newH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
