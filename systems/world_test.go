package systems

import (
	"testing"

	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/shared/partdata"
	"github.com/automoto/doomerang-hangar/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testGear = partdata.Definition{
	Name:   "gear",
	Title:  "Landing Gear",
	Width:  16,
	Height: 16,
	Clips:  []partdata.ClipDef{{Name: "Deploy", Length: 1, Layer: deploy.DefaultLayer}},
	Deploy: deploy.Config{
		AnimationName:     "Deploy",
		Layer:             deploy.DefaultLayer,
		StartEventGUIName: "Extend",
		EndEventGUIName:   "Retract",
		GUIVisible:        true,
	},
}

// newTestHangar builds a world with three gear parts: "a" and "b" side by
// side, "c" far to the right.
func newTestHangar(t *testing.T, live bool, nodes map[string]*deploy.ConfigNode) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateSceneMode(e).Live = live
	factory.CreateSpace(e, 320, 240, 16, 16)

	spawns := []partdata.PartSpawn{
		{ID: "a", Definition: "gear", X: 0, Y: 0},
		{ID: "b", Definition: "gear", X: 20, Y: 0},
		{ID: "c", Definition: "gear", X: 200, Y: 0},
	}
	for _, s := range spawns {
		var node deploy.Node
		if n, ok := nodes[s.ID]; ok {
			node = n
		}
		factory.CreatePart(e, s, testGear, node, nil)
	}
	return e
}

func partByID(t *testing.T, e *ecs.ECS, id string) *components.PartData {
	t.Helper()

	var found *components.PartData
	components.Part.Each(e.World, func(entry *donburi.Entry) {
		if p := components.Part.Get(entry); p.ID == id {
			found = p
		}
	})
	require.NotNil(t, found, "part %s", id)
	return found
}

// press marks an action as pressed this frame and released last frame.
func press(e *ecs.ECS, id cfg.ActionID) {
	input := GetOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

// tick runs the clip and poll systems n times.
func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateClips(e)
		UpdateDeployables(e)
	}
}
