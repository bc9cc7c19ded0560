package factory

import (
	"github.com/automoto/doomerang-hangar/archetypes"
	"github.com/automoto/doomerang-hangar/assets/animations"
	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/logger"
	"github.com/automoto/doomerang-hangar/shared/partdata"
	"github.com/automoto/doomerang-hangar/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePart spawns a placed part, restores its saved node (if any) and
// starts its controller. audio may be nil for a silent part.
func CreatePart(ecs *ecs.ECS, spawn partdata.PartSpawn, def partdata.Definition, node deploy.Node, audio deploy.AudioRegistry) *donburi.Entry {
	part := archetypes.Part.Spawn(ecs)

	anim := animations.NewAnimator()
	for _, c := range def.Clips {
		clip := animations.NewClip(c.Name, c.Length)
		clip.SetLayer(c.Layer)
		anim.Add(clip)
	}
	components.Animator.SetValue(part, components.AnimatorData{Animator: anim})

	w, h := def.Size(spawn)
	obj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvPart)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = part // Link for O(1) lookup
	components.Object.SetValue(part, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	control := &deploy.ToggleControl{UnfocusedRange: cfg.Hangar.UnfocusedRange}
	svc := deploy.Services{
		Clips: animatorClips{anim: anim},
		Scene: worldScene{world: ecs.World},
		Audio: audio,
	}
	ctrl := deploy.NewController(def.Resolve(spawn), svc, control, logger.Named(spawn.ID))

	if node != nil {
		ctrl.Deserialize(node)
	}
	ctrl.Start()

	components.Part.SetValue(part, components.PartData{
		ID:         spawn.ID,
		Definition: def.Name,
		Title:      def.Title,
		Controller: ctrl,
		Control:    control,
	})

	return part
}

// DestroyPart releases the controller's emitters and removes the part.
func DestroyPart(ecs *ecs.ECS, part *donburi.Entry) {
	if !part.Valid() {
		return
	}
	if part.HasComponent(components.Part) {
		if err := components.Part.Get(part).Controller.Close(); err != nil {
			logger.Logger().Warnw("could not release part audio", "part", components.Part.Get(part).ID, "error", err)
		}
	}
	if part.HasComponent(components.Object) {
		obj := components.Object.Get(part)
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(part.Entity())
}

// animatorClips resolves clip names against a part's own animator.
type animatorClips struct {
	anim *animations.Animator
}

func (a animatorClips) FindAnimation(name string) (deploy.Clip, bool) {
	clip, ok := a.anim.Find(name)
	if !ok {
		return nil, false
	}
	return layeredClip{Clip: clip, anim: a.anim}, true
}

// layeredClip starts playback through the animator so other clips on the
// same layer stop.
type layeredClip struct {
	*animations.Clip
	anim *animations.Animator
}

func (c layeredClip) Play() {
	c.anim.Play(c.Name)
}

// worldScene reads the execution context from the SceneMode singleton.
type worldScene struct {
	world donburi.World
}

func (s worldScene) IsLiveSimulation() bool {
	entry, ok := components.SceneMode.First(s.world)
	if !ok {
		return false
	}
	return components.SceneMode.Get(entry).IsLiveSimulation()
}
