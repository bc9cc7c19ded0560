package config

import "image/color"

// Render layers
const (
	Default = iota
	LayerHUD
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// HangarConfig contains hangar scene configuration values
type HangarConfig struct {
	// Map loaded when --hangar is not given
	DefaultMap string
	// Spatial hash cell size for part picking
	CellSize int
	// Distance in pixels within which an unfocused part's control stays reachable
	UnfocusedRange float64
	// gdata item holding saved part nodes
	SaveItem string
}

// PartStyle contains part rendering configuration
type PartStyle struct {
	RetractedColor  color.RGBA
	DeployedColor   color.RGBA
	MovingColor     color.RGBA
	OutlineColor    color.RGBA
	FocusColor      color.RGBA
	HighlightAmount float32
	// Fraction of a part's height covered by the moving section when fully deployed
	ExtendRatio float64
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize    float64
	DebugFontSize  float64
	ButtonFontSize float64
	HUDMargin      float64
	HUDTextColor   color.RGBA
	HUDTextBgColor color.RGBA
	EditorTint     color.RGBA

	ButtonWidth  int
	ButtonHeight int
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonPress  color.RGBA
	ButtonText   color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartInEditor bool // Start in the editor context instead of live simulation
	ShowOverlay   bool
}

// Global configuration instances
var C *Config
var Hangar HangarConfig
var Part PartStyle
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Steel        = color.RGBA{R: 90, G: 100, B: 115, A: 255}
	DarkSteel    = color.RGBA{R: 40, G: 46, B: 56, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "Doomerang Hangar",
	}

	Hangar = HangarConfig{
		DefaultMap:     "levels/hangar.tmx",
		CellSize:       16,
		UnfocusedRange: 48,
		SaveItem:       "hangar",
	}

	Part = PartStyle{
		RetractedColor:  Steel,
		DeployedColor:   color.RGBA{R: 80, G: 170, B: 90, A: 255},
		MovingColor:     Orange,
		OutlineColor:    DarkSteel,
		FocusColor:      LightBlue,
		HighlightAmount: 0.35,
		ExtendRatio:     0.6,
	}

	UI = UIConfig{
		HUDFontSize:    10,
		DebugFontSize:  8,
		ButtonFontSize: 12,
		HUDMargin:      6,
		HUDTextColor:   White,
		HUDTextBgColor: BlackOverlay,
		EditorTint:     color.RGBA{R: 40, G: 60, B: 120, A: 60},

		ButtonWidth:  150,
		ButtonHeight: 24,
		ButtonIdle:   DarkBlue,
		ButtonHover:  LightBlue,
		ButtonPress:  DarkSteel,
		ButtonText:   White,
	}
}
