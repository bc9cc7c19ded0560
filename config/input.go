package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical hangar action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleFocused
	ActionFocusNext
	ActionFocusPrev
	ActionGroupDeploy
	ActionGroupRetract
	ActionQuickSave
	ActionQuickLoad
	ActionSwitchContext
	ActionToggleGUI
	ActionVolumeDown
	ActionVolumeUp
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleFocused: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionFocusNext: {
				Keys: []ebiten.Key{ebiten.KeyTab, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionFocusPrev: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionGroupDeploy: {
				Keys: []ebiten.Key{ebiten.KeyG},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionGroupRetract: {
				Keys: []ebiten.Key{ebiten.KeyH},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionQuickSave: {
				Keys: []ebiten.Key{ebiten.KeyF5},
			},
			ActionQuickLoad: {
				Keys: []ebiten.Key{ebiten.KeyF9},
			},
			ActionSwitchContext: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// Select / Back button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleGUI: {
				Keys: []ebiten.Key{ebiten.KeyV},
			},
			ActionVolumeDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus},
			},
			ActionVolumeUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
