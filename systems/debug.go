package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-hangar/components"
	"github.com/automoto/doomerang-hangar/fonts"
	"github.com/automoto/doomerang-hangar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the part space and lists each
// controller's flags.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateHUD(ecs).ShowDebug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPart) {
				c = color.RGBA{255, 0, 255, 255}
			}
			x, y := float32(obj.X), float32(obj.Y)
			vector.FillRect(screen, x, y, float32(obj.W), 1, c, false)                  // Top
			vector.FillRect(screen, x, y+float32(obj.H)-1, float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, float32(obj.H), c, false)                  // Left
			vector.FillRect(screen, x+float32(obj.W)-1, y, 1, float32(obj.H), c, false) // Right
		}
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	face := fonts.Debug.Get()
	lineH := face.Metrics().Height.Ceil()
	y := screen.Bounds().Dy() - lineH/2

	for _, e := range orderedParts(ecs) {
		text.Draw(screen, debugLine(e), face, 4, y, color.White) //nolint:staticcheck // TODO: migrate to text/v2
		y -= lineH
	}
}

func debugLine(e *donburi.Entry) string {
	part := components.Part.Get(e)
	ctrl := part.Controller
	return fmt.Sprintf("%-16s deployed=%-5t moving=%-5t bound=%-5t reach=%-5t t=%.2f",
		part.ID, ctrl.IsDeployed(), ctrl.IsTransitioning(), ctrl.Bound(), part.Reachable, deployProgress(e))
}
