package systems

import (
	"encoding/json"

	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/logger"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// SavedHangar is the on-disk form of a hangar: one config node per part id.
type SavedHangar struct {
	Hangar string                        `json:"hangar"`
	Parts  map[string]*deploy.ConfigNode `json:"parts"`
}

// itemStore is the subset of *gdata.Manager used for saving.
type itemStore interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

var gdataManager itemStore
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and hangar storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-hangar",
	})
	if err != nil {
		logger.Logger().Warnf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logger.Logger().Warnf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Logger().Warnf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logger.Logger().Warnf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		logger.Logger().Warnf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies settings before any scene exists; the
// first scene picks the globals up.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
}

// SerializeParts writes every part's state into a fresh config node.
func SerializeParts(ecs *ecs.ECS) map[string]*deploy.ConfigNode {
	nodes := make(map[string]*deploy.ConfigNode)
	components.Part.Each(ecs.World, func(e *donburi.Entry) {
		part := components.Part.Get(e)
		node := deploy.NewConfigNode()
		part.Controller.Serialize(node)
		nodes[part.ID] = node
	})
	return nodes
}

func hangarItemKey(name string) string {
	return cfg.Hangar.SaveItem + "_" + name
}

// SaveHangar serializes every part of the named hangar to disk.
func SaveHangar(ecs *ecs.ECS, name string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedHangar{Hangar: name, Parts: SerializeParts(ecs)})
	if err != nil {
		logger.Logger().Warnf("Warning: Could not serialize hangar: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(hangarItemKey(name), data); err != nil {
		logger.Logger().Warnf("Warning: Could not save hangar: %v", err)
		return err
	}
	return nil
}

// LoadHangarNodes returns the saved part nodes of the named hangar, or nil
// when nothing has been saved yet.
func LoadHangarNodes(name string) (map[string]*deploy.ConfigNode, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(hangarItemKey(name))
	if err != nil {
		logger.Logger().Warnf("Warning: Could not load hangar: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedHangar
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.Logger().Warnf("Warning: Could not parse saved hangar: %v", err)
		return nil, err
	}
	return saved.Parts, nil
}

// HasSavedHangar returns true if the named hangar has been saved
func HasSavedHangar(name string) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(hangarItemKey(name))
	return err == nil && len(data) > 0
}
