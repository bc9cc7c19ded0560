package factory

import (
	"testing"

	"github.com/automoto/doomerang-hangar/assets/animations"
	"github.com/automoto/doomerang-hangar/components"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/shared/partdata"
	"github.com/automoto/doomerang-hangar/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type countingEmitter struct {
	closed *int
}

func (e countingEmitter) SetVolume(float64) {}
func (e countingEmitter) Play() {}
func (e countingEmitter) Stop() {}
func (e countingEmitter) IsPlaying() bool { return false }
func (e countingEmitter) Close() error {
	*e.closed++
	return nil
}

type countingClip struct {
	closed *int
}

func (c countingClip) NewEmitter(bool, float64) (deploy.Emitter, error) {
	return countingEmitter{closed: c.closed}, nil
}

type countingRegistry struct {
	closed int
}

func (r *countingRegistry) LoadAudioClip(url string) (deploy.AudioClip, bool) {
	return countingClip{closed: &r.closed}, true
}

func (r *countingRegistry) GlobalOutputVolume() float64 { return 1 }

func bayDefinition() partdata.Definition {
	return partdata.Definition{
		Name:   "bay",
		Width:  32,
		Height: 24,
		Clips: []partdata.ClipDef{
			{Name: "Open", Length: 2, Layer: deploy.DefaultLayer},
			{Name: "Lights", Length: 1, Layer: deploy.DefaultLayer},
		},
		Deploy: deploy.Config{
			AnimationName:     "Open",
			Layer:             deploy.DefaultLayer,
			StartEventGUIName: "Open Bay",
			EndEventGUIName:   "Close Bay",
			GUIVisible:        true,
			Cues: deploy.CueSet{
				Start: deploy.Cue{URL: "start.wav", Pitch: 1, Volume: 0.5},
				Loop:  deploy.Cue{URL: "loop.wav", Pitch: 1, Volume: 0.5},
				Stop:  deploy.Cue{URL: "stop.wav", Pitch: 1, Volume: 0.5},
			},
		},
	}
}

func TestCreatePart(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 320, 240, 16, 16)

	node := deploy.NewConfigNode()
	node.SetValue(deploy.DeployedKey, "True")

	entry := CreatePart(e, partdata.PartSpawn{ID: "bay-1", Definition: "bay", X: 40, Y: 60}, bayDefinition(), node, nil)

	require.True(t, entry.HasComponent(tags.Part))
	part := components.Part.Get(entry)
	require.Equal(t, "bay-1", part.ID)
	require.Equal(t, "bay", part.Definition)
	require.True(t, part.Controller.Bound())
	require.Equal(t, deploy.RestingDeployed, part.Controller.State())
	require.Equal(t, "Close Bay", part.Control.Label)

	obj := components.Object.Get(entry)
	require.Equal(t, 40.0, obj.X)
	require.Equal(t, 32.0, obj.W)
	require.Equal(t, 24.0, obj.H)
	require.True(t, obj.HasTags(tags.ResolvPart))

	clip, ok := components.Animator.Get(entry).Find("Open")
	require.True(t, ok)
	require.Equal(t, 1.0, clip.NormalizedTime())
}

func TestCreatePartMissingClip(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	name := "Unfold"
	entry := CreatePart(e, partdata.PartSpawn{ID: "bay-2", AnimationName: &name}, bayDefinition(), nil, nil)

	part := components.Part.Get(entry)
	require.False(t, part.Controller.Bound())

	// Flag-only mode still toggles
	part.Control.Press()
	require.True(t, part.Controller.IsDeployed())
	require.False(t, part.Controller.IsTransitioning())
}

func TestLayeredClipStopsSiblings(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := CreatePart(e, partdata.PartSpawn{ID: "bay-3"}, bayDefinition(), nil, nil)

	anim := components.Animator.Get(entry).Animator
	lights, ok := anim.Find("Lights")
	require.True(t, ok)
	lights.Play()

	clip, ok := animatorClips{anim: anim}.FindAnimation("Open")
	require.True(t, ok)
	clip.Play()

	require.False(t, lights.IsPlaying())
	require.True(t, clip.IsPlaying())

	_, ok = animatorClips{anim: animations.NewAnimator()}.FindAnimation("Open")
	require.False(t, ok)
}

func TestDestroyPartReleasesAudio(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := CreateSpace(e, 320, 240, 16, 16)
	registry := &countingRegistry{}

	entry := CreatePart(e, partdata.PartSpawn{ID: "bay-4", X: 16, Y: 16}, bayDefinition(), nil, registry)
	space := components.Space.Get(spaceEntry)
	require.Len(t, space.Objects(), 1)

	DestroyPart(e, entry)

	require.Equal(t, 3, registry.closed)
	require.False(t, entry.Valid())
	require.Empty(t, space.Objects())

	// Destroying twice is a no-op
	DestroyPart(e, entry)
	require.Equal(t, 3, registry.closed)
}

func TestWorldScene(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	scene := worldScene{world: e.World}
	require.False(t, scene.IsLiveSimulation())

	entry := e.World.Entry(e.World.Create(components.SceneMode))
	components.SceneMode.Get(entry).Live = true
	require.True(t, scene.IsLiveSimulation())
}
