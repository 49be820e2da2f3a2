package main

import (
	"testing"
)

func TestCountForSize(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{800, 250, 60},    // height picks 60, width cap 70 does not bite
		{400, 700, 40},    // height picks default, width caps to 40
		{300, 150, 40},    // both tables bottom out
		{500, 350, 50},    // height picks 70, width caps to 50
		{2000, 1000, 130}, // both dimensions above every threshold
		{1700, 599, 110},  // last height row, no width cap
		{449, 1000, 40},   // just under the first width threshold
		{450, 199, 40},    // first height row wins either way
	}
	for _, tt := range tests {
		if got := countForSize(tt.width, tt.height); got != tt.want {
			t.Errorf("countForSize(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
}

func newTestField(width, height int) *Field {
	return NewField(width, height, NewSettingsStore(nil), nil)
}

func TestCreateParticlesCount(t *testing.T) {
	f := newTestField(800, 600)
	want := countForSize(800, 600)
	if len(f.particles) != want {
		t.Fatalf("population = %d, want %d", len(f.particles), want)
	}
	for _, p := range f.particles {
		if p.Dead() {
			t.Fatal("fresh population contains a dead particle")
		}
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Fatalf("particle spawned out of bounds at (%v, %v)", p.X, p.Y)
		}
	}
}

func TestCreateParticlesIdempotentCount(t *testing.T) {
	f := newTestField(800, 600)
	first := len(f.particles)
	f.createParticles()
	if len(f.particles) != first {
		t.Fatalf("repopulation changed count from %d to %d", first, len(f.particles))
	}
}

func TestResizeRegeneratesPopulation(t *testing.T) {
	f := newTestField(800, 600)
	f.Layout(400, 250)
	f.applyResize()

	if f.width != 400 || f.height != 250 {
		t.Fatalf("field size = %dx%d after resize, want 400x250", f.width, f.height)
	}
	if want := countForSize(400, 250); len(f.particles) != want {
		t.Fatalf("population = %d after resize, want %d", len(f.particles), want)
	}
}

func TestResizeIsNoopForSameSize(t *testing.T) {
	f := newTestField(800, 600)
	before := f.particles
	f.Layout(800, 600)
	f.applyResize()
	for i := range before {
		if f.particles[i] != before[i] {
			t.Fatal("unchanged size still regenerated the population")
		}
	}
}

func TestExplodeSpawnsBurstsAndRipple(t *testing.T) {
	f := newTestField(800, 600)
	f.explode(100, 100)

	if want := f.store.Settings().BurstCount; len(f.bursts) != want {
		t.Fatalf("bursts = %d, want %d", len(f.bursts), want)
	}
	if len(f.ripples) != 1 {
		t.Fatalf("ripples = %d, want 1", len(f.ripples))
	}
	for _, p := range f.bursts {
		if p.X != 100 || p.Y != 100 {
			t.Fatalf("burst spawned at (%v, %v), want click point", p.X, p.Y)
		}
	}
}

func TestBurstsAndRipplesExpire(t *testing.T) {
	f := newTestField(800, 600)
	f.explode(400, 300)

	for i := 0; i < 60; i++ {
		f.advance(Cursor{})
	}
	if len(f.bursts) != 0 {
		t.Fatalf("%d bursts alive after 60 ticks", len(f.bursts))
	}
	if len(f.ripples) != 0 {
		t.Fatalf("%d ripples alive after 60 ticks", len(f.ripples))
	}
}

func TestAdvanceCountsTicks(t *testing.T) {
	f := newTestField(800, 600)
	for i := 0; i < 10; i++ {
		f.advance(Cursor{})
	}
	if f.tick != 10 {
		t.Fatalf("tick = %d after 10 advances, want 10", f.tick)
	}
}

func TestAmbientPopulationSurvivesTicks(t *testing.T) {
	f := newTestField(800, 600)
	want := len(f.particles)
	cur := Cursor{X: 400, Y: 300, Present: true}
	for i := 0; i < 300; i++ {
		f.advance(cur)
	}
	if len(f.particles) != want {
		t.Fatalf("ambient population changed from %d to %d", want, len(f.particles))
	}
}
