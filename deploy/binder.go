package deploy

import "fmt"

const (
	// DefaultLayer is the compositing layer used when a part does not set one.
	DefaultLayer = 2
	// SnapSpeed rests a clip at an end without a visible transition.
	SnapSpeed = 10000.0
	// PreviewSpeedMultiplier makes editor-preview transitions near-instant.
	PreviewSpeedMultiplier = 100.0
)

// PlaybackBinder resolves one named clip and issues directional play commands
// on it. The resolved handle lives only for the current activation.
type PlaybackBinder struct {
	clips ClipFinder
	scene SceneContext
	layer int

	name string
	clip Clip
}

// NewPlaybackBinder creates an unbound binder.
func NewPlaybackBinder(clips ClipFinder, scene SceneContext, layer int) *PlaybackBinder {
	return &PlaybackBinder{
		clips: clips,
		scene: scene,
		layer: layer,
	}
}

// Bind resolves name on the owning model and sets its layer. Calling it again
// drops the previous handle and resolves afresh.
func (b *PlaybackBinder) Bind(name string) error {
	b.name = name
	b.clip = nil

	if name == "" || b.clips == nil {
		return fmt.Errorf("%w: %q", ErrClipNotFound, name)
	}

	clip, ok := b.clips.FindAnimation(name)
	if !ok || clip == nil {
		return fmt.Errorf("%w: %q", ErrClipNotFound, name)
	}

	clip.SetLayer(b.layer)
	b.clip = clip
	return nil
}

// Unbind forgets the resolved handle.
func (b *PlaybackBinder) Unbind() {
	b.clip = nil
}

// Bound reports whether a clip is resolved.
func (b *PlaybackBinder) Bound() bool {
	return b.clip != nil
}

// Name returns the clip name passed to the last Bind.
func (b *PlaybackBinder) Name() string {
	return b.name
}

// Layer returns the layer clips are played on.
func (b *PlaybackBinder) Layer() int {
	return b.layer
}

// PlayForward plays the clip from its start toward its end.
func (b *PlaybackBinder) PlayForward() {
	if b.clip == nil {
		return
	}
	b.clip.SetTime(0)
	b.clip.SetSpeed(b.speed())
	b.clip.Play()
}

// PlayReverse plays the clip from its end back toward its start.
func (b *PlaybackBinder) PlayReverse() {
	if b.clip == nil {
		return
	}
	b.clip.SetTime(b.clip.Length())
	b.clip.SetSpeed(-b.speed())
	b.clip.Play()
}

// Rest parks the clip at the end matching deployed using the snap speed.
func (b *PlaybackBinder) Rest(deployed bool) {
	if b.clip == nil {
		return
	}
	if deployed {
		b.clip.SetNormalizedTime(1)
		b.clip.SetSpeed(SnapSpeed)
	} else {
		b.clip.SetNormalizedTime(0)
		b.clip.SetSpeed(-SnapSpeed)
	}
	b.clip.Play()
}

// IsPlaying reports whether the bound clip is still advancing.
func (b *PlaybackBinder) IsPlaying() bool {
	return b.clip != nil && b.clip.IsPlaying()
}

func (b *PlaybackBinder) speed() float64 {
	if b.scene != nil && b.scene.IsLiveSimulation() {
		return 1
	}
	return PreviewSpeedMultiplier
}
