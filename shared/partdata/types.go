// Package partdata parses part definitions (YAML) and hangar layouts (TMX).
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package partdata

import "github.com/automoto/doomerang-hangar/deploy"

// Definition is the reusable description of a part model.
type Definition struct {
	Name   string
	Title  string
	Width  float64
	Height float64
	Clips  []ClipDef
	Deploy deploy.Config
}

// ClipDef describes one animation track of the model.
type ClipDef struct {
	Name   string  `yaml:"name"`
	Length float64 `yaml:"length"`
	Layer  int     `yaml:"layer"`
}

// PartSpawn is one part placed in the hangar. Override fields are nil when
// the TMX object does not set the property.
type PartSpawn struct {
	ID         string
	Definition string
	X, Y       float64
	W, H       float64

	AnimationName     *string
	StartEventGUIName *string
	EndEventGUIName   *string
	GUIVisible        *bool
}

// Hangar is the parsed layout of a hangar map.
type Hangar struct {
	Name      string
	MapWidth  int
	MapHeight int
	Parts     []PartSpawn
}

// Resolve merges a spawn's overrides into the definition's deploy config.
func (d Definition) Resolve(spawn PartSpawn) deploy.Config {
	cfg := d.Deploy
	if spawn.AnimationName != nil {
		cfg.AnimationName = *spawn.AnimationName
	}
	if spawn.StartEventGUIName != nil {
		cfg.StartEventGUIName = *spawn.StartEventGUIName
	}
	if spawn.EndEventGUIName != nil {
		cfg.EndEventGUIName = *spawn.EndEventGUIName
	}
	if spawn.GUIVisible != nil {
		cfg.GUIVisible = *spawn.GUIVisible
	}
	return cfg
}

// Size returns the spawn's bounds, falling back to the definition's size for
// point objects.
func (d Definition) Size(spawn PartSpawn) (float64, float64) {
	w, h := spawn.W, spawn.H
	if w <= 0 {
		w = d.Width
	}
	if h <= 0 {
		h = d.Height
	}
	return w, h
}
