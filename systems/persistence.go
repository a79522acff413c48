package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/quasilyte/gdata"
)

// Preferences represents the menu choices remembered between runs
type Preferences struct {
	UseSTUN         bool   `json:"useStun"`
	LastPeerAddress string `json:"lastPeerAddress"`
	LastLevel       string `json:"lastLevel"`
}

// ItemStore is the subset of gdata.Manager used for preferences
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var prefStore ItemStore

// InitPersistence opens the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	prefStore = m
	return nil
}

// SetPreferenceStore replaces the backing store; nil disables persistence
func SetPreferenceStore(s ItemStore) {
	prefStore = s
}

// DefaultPreferences returns the preferences used when nothing is saved
func DefaultPreferences() Preferences {
	return Preferences{UseSTUN: cfg.Network.UseSTUN}
}

// LoadPreferences loads preferences from disk, falling back to defaults
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if prefStore == nil {
		return prefs
	}

	data, err := prefStore.LoadItem(cfg.Persistence.ItemKey)
	if err != nil {
		log.Printf("[prefs] could not load preferences: %v", err)
		return prefs
	}
	if data == nil {
		// No saved preferences yet
		return prefs
	}

	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("[prefs] could not parse saved preferences: %v", err)
		return DefaultPreferences()
	}
	return prefs
}

// SavePreferences saves preferences to disk
func SavePreferences(p Preferences) error {
	if prefStore == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := prefStore.SaveItem(cfg.Persistence.ItemKey, data); err != nil {
		log.Printf("[prefs] could not save preferences: %v", err)
		return err
	}
	return nil
}

// UpdatePreferences loads, modifies and saves preferences in one go
func UpdatePreferences(modify func(*Preferences)) {
	p := LoadPreferences()
	modify(&p)
	_ = SavePreferences(p)
}
