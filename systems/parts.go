package systems

import (
	"strconv"

	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSceneMode returns the SceneMode singleton, creating it in the
// editor context if needed.
func GetOrCreateSceneMode(ecs *ecs.ECS) *components.SceneModeData {
	entry, ok := components.SceneMode.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.SceneMode))
	}
	return components.SceneMode.Get(entry)
}

// UpdateClips advances every part's clips by one tick.
func UpdateClips(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		components.Animator.Get(e).Update(dt)
	})
}

// UpdateDeployables runs the poll tick of every part controller. Controllers
// ignore the tick outside live simulation.
func UpdateDeployables(ecs *ecs.ECS) {
	components.Part.Each(ecs.World, func(e *donburi.Entry) {
		components.Part.Get(e).Controller.OnPollTick()
	})
}

// UpdateDeployInput routes toggle and action-group input onto part controls.
// Must run after UpdateFocus and UpdateControlVisibility.
func UpdateDeployInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleFocused).JustPressed {
		if part, ok := FocusedPart(ecs); ok {
			data := components.Part.Get(part)
			if data.Reachable {
				data.Control.Press()
			}
		}
	}

	if GetAction(input, cfg.ActionToggleGUI).JustPressed {
		if part, ok := FocusedPart(ecs); ok {
			data := components.Part.Get(part)
			visible := !data.Control.Visible
			data.Controller.ShowGUI(visible)
			logger.Logger().Debugw("toggle control visibility", "part", data.ID, "visible", visible)
		}
	}

	deploy := GetAction(input, cfg.ActionGroupDeploy).JustPressed
	retract := GetAction(input, cfg.ActionGroupRetract).JustPressed
	if deploy != retract {
		n := TriggerActionGroup(ecs, deploy)
		if deploy {
			notify(ecs, plural(n, "part")+" deploying")
		} else {
			notify(ecs, plural(n, "part")+" retracting")
		}
	}
}

// TriggerActionGroup fires the action-group entry point of every part whose
// deployed flag differs from target and returns how many were fired. Parts
// already resting at or moving toward target are skipped. The payload is the
// state being left, so the part ends in target.
func TriggerActionGroup(ecs *ecs.ECS, target bool) int {
	n := 0
	components.Part.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Part.Get(e)
		if data.Controller.IsDeployed() == target {
			return
		}
		data.Control.Trigger(!target)
		n++
	})
	return n
}

// UpdateControlVisibility decides whether each part's toggle control can be
// used this tick. The focused part's control is reachable when visible in the
// current context; an unfocused part's control is reachable when it is
// visible unfocused and within range of the focused part.
func UpdateControlVisibility(ecs *ecs.ECS) {
	live := GetOrCreateSceneMode(ecs).IsLiveSimulation()
	focused, hasFocus := FocusedPart(ecs)

	var fx, fy float64
	if hasFocus {
		fx, fy = partCenter(focused)
	}

	components.Part.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Part.Get(e)
		ctl := data.Control

		visible := ctl.Visible
		if !live {
			visible = ctl.VisibleInEditor
		}

		switch {
		case !visible:
			data.Reachable = false
		case hasFocus && e.Entity() == focused.Entity():
			data.Reachable = true
		case hasFocus && ctl.VisibleWhenUnfocused:
			x, y := partCenter(e)
			dx, dy := x-fx, y-fy
			r := ctl.UnfocusedRange
			data.Reachable = dx*dx+dy*dy <= r*r
		default:
			data.Reachable = false
		}
	})
}

func partCenter(e *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(e)
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
