package main

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.Drift {
		t.Error("Drift: got false, want true")
	}
	if s.BurstCount <= 0 {
		t.Errorf("BurstCount = %d, want positive", s.BurstCount)
	}
	if s.DustCount <= 0 {
		t.Errorf("DustCount = %d, want positive", s.DustCount)
	}
}

func TestSettingsStoreWithoutStorage(t *testing.T) {
	st := NewSettingsStore(nil)
	if st.Settings() == nil {
		t.Fatal("nil settings from degraded store")
	}
	if err := st.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if err := st.Load(); err != nil {
		t.Errorf("Load() in degraded mode: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	manager, err := gdata.Open(gdata.Config{AppName: "grek_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}

	st := NewSettingsStore(manager)
	st.Settings().BurstCount = 99
	st.Settings().Drift = false
	st.Settings().Sound = false
	if err := st.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	st2 := NewSettingsStore(manager)
	if err := st2.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := st2.Settings()
	if got.BurstCount != 99 {
		t.Errorf("BurstCount = %d after round trip, want 99", got.BurstCount)
	}
	if got.Drift {
		t.Error("Drift survived as true, want false")
	}
	if got.Sound {
		t.Error("Sound survived as true, want false")
	}
}

func TestLoadWithoutSaveKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	manager, err := gdata.Open(gdata.Config{AppName: "grek_test_fresh"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}

	st := NewSettingsStore(manager)
	if err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Settings().BurstCount != DefaultSettings().BurstCount {
		t.Errorf("BurstCount = %d with no save present, want default %d",
			st.Settings().BurstCount, DefaultSettings().BurstCount)
	}
}
