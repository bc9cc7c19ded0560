package deploy

// Clip is a resolved handle to a named animation track on the part's model.
type Clip interface {
	Length() float64
	SetTime(t float64)
	SetNormalizedTime(t float64)
	SetSpeed(speed float64)
	SetLayer(layer int)
	Play()
	IsPlaying() bool
}

// ClipFinder looks up clips on the model of the part that owns the controller.
type ClipFinder interface {
	FindAnimation(name string) (Clip, bool)
}

// SceneContext reports whether the part lives in a running simulation or
// in an editor preview.
type SceneContext interface {
	IsLiveSimulation() bool
}

// Node is a persistent key/value save block.
type Node interface {
	GetValue(key string) (string, bool)
	SetValue(key, value string)
}

// AudioClip is a decoded sound that emitters can be created from.
type AudioClip interface {
	NewEmitter(loop bool, pitch float64) (Emitter, error)
}

// Emitter plays one audio clip. Looping emitters repeat until stopped.
type Emitter interface {
	SetVolume(volume float64)
	Play()
	Stop()
	IsPlaying() bool
	Close() error
}

// AudioRegistry resolves audio clips by URL and exposes the global output
// volume. The controller never mutates registry entries.
type AudioRegistry interface {
	LoadAudioClip(url string) (AudioClip, bool)
	GlobalOutputVolume() float64
}

// Services bundles the host collaborators a Controller needs.
type Services struct {
	Clips ClipFinder
	Scene SceneContext
	Audio AudioRegistry
}

// ToggleControl is the user-facing toggle button of a part. The controller
// owns its Label and visibility; the host reads them to render the control.
type ToggleControl struct {
	Label                string
	Visible              bool
	VisibleInEditor      bool
	VisibleWhenUnfocused bool
	UnfocusedRange       float64

	// OnToggle is the user event bound by the controller.
	OnToggle func()
	// OnAction is the scripted action-group entry point.
	OnAction func(deployed bool)
}

// Press invokes the bound toggle event, if any.
func (t *ToggleControl) Press() {
	if t.OnToggle != nil {
		t.OnToggle()
	}
}

// Trigger invokes the bound action-group entry point, if any.
func (t *ToggleControl) Trigger(deployed bool) {
	if t.OnAction != nil {
		t.OnAction(deployed)
	}
}
