package systems

import (
	"sort"

	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFocus moves focus to the part under a mouse click, or cycles it with
// the focus actions. Clicking empty space keeps the current focus.
func UpdateFocus(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	focus := getOrCreateFocus(ecs)

	if focus.Valid && !ecs.World.Valid(focus.Entity) {
		focus.Clear()
	}

	if input.Clicked {
		if part, ok := PartAt(ecs, float64(input.CursorX), float64(input.CursorY)); ok {
			focus.Set(part.Entity())
		}
	}

	step := 0
	if GetAction(input, cfg.ActionFocusNext).JustPressed {
		step++
	}
	if GetAction(input, cfg.ActionFocusPrev).JustPressed {
		step--
	}
	if step != 0 {
		cycleFocus(ecs, focus, step)
	}
}

// FocusedPart returns the focused part entry, if any.
func FocusedPart(ecs *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := components.Focus.First(ecs.World)
	if !ok {
		return nil, false
	}
	focus := components.Focus.Get(entry)
	if !focus.Valid || !ecs.World.Valid(focus.Entity) {
		return nil, false
	}
	part := ecs.World.Entry(focus.Entity)
	if !part.HasComponent(components.Part) {
		return nil, false
	}
	return part, true
}

// FocusPart focuses the part with the given id.
func FocusPart(ecs *ecs.ECS, id string) bool {
	for _, e := range orderedParts(ecs) {
		if components.Part.Get(e).ID == id {
			getOrCreateFocus(ecs).Set(e.Entity())
			return true
		}
	}
	return false
}

// PartAt returns the part whose bounds contain the world point.
func PartAt(ecs *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvPart)
	if collision == nil {
		return nil, false
	}
	for _, obj := range collision.Objects {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry, true
		}
	}
	return nil, false
}

func cycleFocus(ecs *ecs.ECS, focus *components.FocusData, step int) {
	parts := orderedParts(ecs)
	if len(parts) == 0 {
		focus.Clear()
		return
	}

	idx := -1
	if focus.Valid {
		for i, e := range parts {
			if e.Entity() == focus.Entity {
				idx = i
				break
			}
		}
	}

	if idx < 0 {
		if step > 0 {
			idx = 0
		} else {
			idx = len(parts) - 1
		}
	} else {
		idx = (idx + step + len(parts)) % len(parts)
	}
	focus.Set(parts[idx].Entity())
}

// orderedParts lists parts top-to-bottom, left-to-right.
func orderedParts(ecs *ecs.ECS) []*donburi.Entry {
	var parts []*donburi.Entry
	components.Part.Each(ecs.World, func(e *donburi.Entry) {
		parts = append(parts, e)
	})
	sort.SliceStable(parts, func(i, j int) bool {
		a, b := components.Object.Get(parts[i]), components.Object.Get(parts[j])
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return parts
}

// getOrCreateFocus returns the singleton Focus component, creating if needed
func getOrCreateFocus(ecs *ecs.ECS) *components.FocusData {
	entry, ok := components.Focus.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Focus))
	}
	return components.Focus.Get(entry)
}
