package systems

import (
	"image"
	"image/color"

	"github.com/automoto/doomerang-hangar/assets"
	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Offscreen canvas reused across frames for the focus highlight pass
var partCanvas *ebiten.Image

// DrawParts renders every part with its deploy progress, then tints the
// focused part with the highlight shader.
func DrawParts(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if partCanvas == nil || partCanvas.Bounds().Dx() != w || partCanvas.Bounds().Dy() != h {
		if partCanvas != nil {
			partCanvas.Deallocate()
		}
		partCanvas = ebiten.NewImage(w, h)
	}
	partCanvas.Clear()

	components.Part.Each(ecs.World, func(e *donburi.Entry) {
		drawPart(partCanvas, e)
	})
	screen.DrawImage(partCanvas, nil)

	if focused, ok := FocusedPart(ecs); ok {
		drawFocus(screen, focused)
	}

	if !GetOrCreateSceneMode(ecs).IsLiveSimulation() {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.UI.EditorTint, false)
	}
}

func drawPart(dst *ebiten.Image, e *donburi.Entry) {
	obj := components.Object.Get(e)
	part := components.Part.Get(e)
	x, y := float32(obj.X), float32(obj.Y)
	pw, ph := float32(obj.W), float32(obj.H)

	// Housing
	vector.FillRect(dst, x, y, pw, ph, cfg.Part.OutlineColor, false)

	// Moving section grows with the clip's normalized time
	progress := float32(deployProgress(e))
	extend := float32(cfg.Part.ExtendRatio) * ph * progress
	vector.FillRect(dst, x+2, y+2, pw-4, ph*float32(1-cfg.Part.ExtendRatio)-4+extend, partColor(part.Controller.State()), false)

	if part.Reachable && part.Control.Label != "" {
		drawLabel(dst, part.Control.Label, int(x), int(y+ph)+12)
	}
}

func drawFocus(screen *ebiten.Image, e *donburi.Entry) {
	obj := components.Object.Get(e)
	rect := image.Rect(int(obj.X), int(obj.Y), int(obj.X+obj.W), int(obj.Y+obj.H)).Intersect(partCanvas.Bounds())
	if rect.Empty() {
		return
	}

	if assets.HighlightShader != nil {
		c := cfg.Part.FocusColor
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
		op.Images[0] = partCanvas.SubImage(rect).(*ebiten.Image)
		op.Uniforms = map[string]any{
			"Tint":     []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1},
			"Strength": cfg.Part.HighlightAmount,
		}
		screen.DrawRectShader(rect.Dx(), rect.Dy(), assets.HighlightShader, op)
	}

	// Outline
	c := cfg.Part.FocusColor
	x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
	vector.StrokeRect(screen, x-1, y-1, w+2, h+2, 1, c, false)
}

// deployProgress returns the bound clip's normalized time, falling back to
// the resting end when the part has no clip.
func deployProgress(e *donburi.Entry) float64 {
	part := components.Part.Get(e)
	anim := components.Animator.Get(e)
	if clip, ok := anim.Find(part.Controller.Config().AnimationName); ok {
		return clip.NormalizedTime()
	}
	if part.Controller.IsDeployed() {
		return 1
	}
	return 0
}

func partColor(s deploy.State) color.RGBA {
	switch s {
	case deploy.RestingDeployed:
		return cfg.Part.DeployedColor
	case deploy.TransitioningToDeployed, deploy.TransitioningToRetracted:
		return cfg.Part.MovingColor
	default:
		return cfg.Part.RetractedColor
	}
}

func drawLabel(dst *ebiten.Image, label string, x, y int) {
	if !fonts.Loaded(fonts.Debug) {
		return
	}
	text.Draw(dst, label, fonts.Debug.Get(), x, y, cfg.UI.HUDTextColor) //nolint:staticcheck // TODO: migrate to text/v2
}
