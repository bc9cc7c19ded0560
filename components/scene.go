package components

import "github.com/yohamta/donburi"

// SceneModeData is the hangar's execution context (singleton component).
type SceneModeData struct {
	Live bool
}

// IsLiveSimulation reports whether the hangar is running live rather than
// in the editor.
func (s *SceneModeData) IsLiveSimulation() bool {
	return s != nil && s.Live
}

var SceneMode = donburi.NewComponentType[SceneModeData]()

// FocusData tracks the focused part (singleton component).
type FocusData struct {
	Entity donburi.Entity
	Valid  bool
}

func (f *FocusData) Set(e donburi.Entity) {
	f.Entity = e
	f.Valid = true
}

func (f *FocusData) Clear() {
	f.Entity = donburi.Null
	f.Valid = false
}

var Focus = donburi.NewComponentType[FocusData]()

// HUDData stores transient HUD state (singleton component).
type HUDData struct {
	ShowDebug bool
	Notice    string
	NoticeTTL int // frames the notice stays visible
}

var HUD = donburi.NewComponentType[HUDData]()
