package systems

import (
	"fmt"

	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const noticeFrames = 120

// UpdateHUD ages the notice and toggles the debug overlay.
func UpdateHUD(ecs *ecs.ECS) {
	hud := GetOrCreateHUD(ecs)
	if hud.NoticeTTL > 0 {
		hud.NoticeTTL--
		if hud.NoticeTTL == 0 {
			hud.Notice = ""
		}
	}

	if GetAction(GetOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		hud.ShowDebug = !hud.ShowDebug
	}
}

// notify shows a short message in the HUD.
func notify(ecs *ecs.ECS, msg string) {
	hud := GetOrCreateHUD(ecs)
	hud.Notice = msg
	hud.NoticeTTL = noticeFrames
}

// Notify is notify for callers outside the systems package.
func Notify(ecs *ecs.ECS, msg string) {
	notify(ecs, msg)
}

// DrawHUD renders the context banner, the focused part's status and the
// current notice.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) || !fonts.Loaded(fonts.HUDBig) {
		return
	}
	face := fonts.HUD.Get()
	banner := fonts.HUDBig.Get()
	margin := cfg.UI.HUDMargin

	context := "LIVE"
	if !GetOrCreateSceneMode(ecs).IsLiveSimulation() {
		context = "EDITOR"
	}
	drawBoxedText(screen, banner, context, margin, margin)

	if part, ok := FocusedPart(ecs); ok {
		data := components.Part.Get(part)
		status := fmt.Sprintf("%s [%s] %s", data.Title, data.ID, data.Controller.State())
		drawBoxedText(screen, face, status, margin, margin+float64(banner.Metrics().Height.Ceil())+margin)
	}

	hud := GetOrCreateHUD(ecs)
	if hud.Notice != "" {
		bounds := text.BoundString(face, hud.Notice) //nolint:staticcheck // TODO: migrate to text/v2
		x := (float64(screen.Bounds().Dx()) - float64(bounds.Dx())) / 2
		drawBoxedText(screen, face, hud.Notice, x, margin)
	}
}

func drawBoxedText(screen *ebiten.Image, face font.Face, s string, x, y float64) {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	pad := float32(3)
	vector.FillRect(screen,
		float32(x)-pad, float32(y)-pad,
		float32(bounds.Dx())+pad*2, float32(bounds.Dy())+pad*2,
		cfg.UI.HUDTextBgColor, false)
	text.Draw(screen, s, face, int(x)-bounds.Min.X, int(y)-bounds.Min.Y, cfg.UI.HUDTextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.HUD))
		components.HUD.SetValue(entry, components.HUDData{ShowDebug: cfg.Debug.ShowOverlay})
	}
	return components.HUD.Get(entry)
}
