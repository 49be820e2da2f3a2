package main

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user-facing knobs of the effect. Everything here is a
// preference; the simulation constants live next to the code they drive.
type Settings struct {
	Drift      bool `yaml:"drift"`      // idle wander while the pointer is away
	BurstCount int  `yaml:"burstCount"` // debris particles per click
	DustCount  int  `yaml:"dustCount"`  // background specks
	Ripples    bool `yaml:"ripples"`
	Sound      bool `yaml:"sound"`
	ShowHUD    bool `yaml:"showHUD"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Drift:      true,
		BurstCount: 28,
		DustCount:  60,
		Ripples:    true,
		Sound:      true,
		ShowHUD:    false,
	}
}

const (
	settingsObject = "settings"
	settingsProp   = "global"
)

// SettingsStore loads and saves Settings through gdata. A nil manager is a
// degraded mode: settings stay in memory only and Save/Load are no-ops.
type SettingsStore struct {
	manager  *gdata.Manager
	settings *Settings
}

func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	return &SettingsStore{
		manager:  manager,
		settings: DefaultSettings(),
	}
}

func (st *SettingsStore) Settings() *Settings { return st.settings }

// Load replaces the current settings with the saved ones. Missing storage
// or a missing save leaves the defaults in place without error.
func (st *SettingsStore) Load() error {
	if st.manager == nil {
		return nil
	}
	if !st.manager.ObjectPropExists(settingsObject, settingsProp) {
		return nil
	}
	data, err := st.manager.LoadObjectProp(settingsObject, settingsProp)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	st.settings = &s
	return nil
}

func (st *SettingsStore) Save() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := st.manager.SaveObjectProp(settingsObject, settingsProp, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
