// Package deploy drives a part's single animation clip between its retracted
// and deployed ends, keeps the start/loop/stop audio cues in step with
// playback, and persists the deployed flag.
package deploy

import (
	"go.uber.org/zap"
)

// Config describes one deployable part.
type Config struct {
	AnimationName     string `yaml:"animationName"`
	Layer             int    `yaml:"layer"`
	StartEventGUIName string `yaml:"startEventGUIName"`
	EndEventGUIName   string `yaml:"endEventGUIName"`
	GUIVisible        bool   `yaml:"guiVisible"`
	Cues              CueSet `yaml:"cues"`
}

// DefaultConfig returns a Config with the default layer and a visible control.
func DefaultConfig() Config {
	return Config{
		Layer:      DefaultLayer,
		GUIVisible: true,
	}
}

// State is the observable state of a Controller.
type State int

const (
	RestingRetracted State = iota
	RestingDeployed
	TransitioningToRetracted
	TransitioningToDeployed
)

func (s State) String() string {
	switch s {
	case RestingRetracted:
		return "Retracted"
	case RestingDeployed:
		return "Deployed"
	case TransitioningToRetracted:
		return "Retracting"
	case TransitioningToDeployed:
		return "Deploying"
	}
	return "Unknown"
}

// Controller is the transition state machine of one part.
type Controller struct {
	cfg     Config
	scene   SceneContext
	audio   AudioRegistry
	binder  *PlaybackBinder
	cues    *CueSynchronizer
	control *ToggleControl
	log     *zap.SugaredLogger

	deployed      bool
	transitioning bool
	guiVisible    bool
}

// NewController attaches a controller to a part. The control's toggle event
// and action-group entry point are bound to the controller.
func NewController(cfg Config, svc Services, control *ToggleControl, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if control == nil {
		control = &ToggleControl{}
	}

	c := &Controller{
		cfg:        cfg,
		scene:      svc.Scene,
		audio:      svc.Audio,
		binder:     NewPlaybackBinder(svc.Clips, svc.Scene, cfg.Layer),
		control:    control,
		log:        log,
		guiVisible: cfg.GUIVisible,
	}
	control.OnToggle = c.Toggle
	control.OnAction = c.ActionGroup
	c.refreshControl()

	return c
}

// Initialize rests the clip at the end matching deployed and refreshes the
// control. It never fires a cue. A missing clip leaves the controller in
// flag-only mode and is returned for the caller to log.
func (c *Controller) Initialize(deployed bool) error {
	c.deployed = deployed
	c.transitioning = false
	c.cues.Silence()
	c.refreshControl()

	if c.cfg.AnimationName == "" {
		c.binder.Unbind()
		return nil
	}

	if err := c.binder.Bind(c.cfg.AnimationName); err != nil {
		return err
	}
	c.binder.Rest(deployed)
	return nil
}

// Start completes activation: resyncs the clip and creates the cue emitters.
// Errors are logged, never returned, so a broken part still toggles.
func (c *Controller) Start() {
	if err := c.Initialize(c.deployed); err != nil {
		c.log.Warnw("Could not set up animation", "animation", c.cfg.AnimationName, "error", err)
	}

	if c.cues != nil {
		return
	}
	cues, err := NewCueSynchronizer(c.audio, c.cfg.Cues)
	if err != nil {
		c.log.Warnw("Could not set up sounds", "error", err)
	}
	c.cues = cues
}

// Toggle plays the clip toward the opposite end and flips the deployed flag.
// Calling it mid-transition reverses the transition.
func (c *Controller) Toggle() {
	c.play(c.deployed)

	c.deployed = !c.deployed
	c.refreshControl()

	c.log.Debugw("Animation toggled", "label", c.control.Label, "deployed", c.deployed)
}

// ActionGroup is the scripted entry point. The payload is taken as the state
// the part is in before the toggle runs.
func (c *Controller) ActionGroup(deployed bool) {
	c.deployed = deployed
	c.Toggle()
}

func (c *Controller) play(reverse bool) {
	if c.cfg.AnimationName == "" || !c.binder.Bound() {
		return
	}

	if reverse {
		c.binder.PlayReverse()
	} else {
		c.binder.PlayForward()
	}

	c.transitioning = true
	c.cues.FireStart()
}

// OnPollTick observes playback once per frame and fires the stop cue on the
// first tick that finds the clip stopped after a toggle.
func (c *Controller) OnPollTick() {
	if c.scene == nil || !c.scene.IsLiveSimulation() {
		return
	}
	if !c.binder.Bound() {
		return
	}

	if c.transitioning && !c.binder.IsPlaying() {
		c.transitioning = false
		c.cues.FireStop()
	}
}

// Serialize writes the deployed flag into node.
func (c *Controller) Serialize(node Node) {
	node.SetValue(DeployedKey, FormatBool(c.deployed))
}

// Deserialize restores the deployed flag and silently resyncs the clip. An
// absent value keeps the current flag; a malformed one falls back to
// retracted.
func (c *Controller) Deserialize(node Node) {
	if node != nil {
		if value, ok := node.GetValue(DeployedKey); ok && value != "" {
			deployed, err := ParseBool(value)
			if err != nil {
				c.log.Warnw("Could not read saved state", "key", DeployedKey, "error", err)
			}
			c.deployed = deployed
		}
	}

	if err := c.Initialize(c.deployed); err != nil {
		c.log.Warnw("Could not set up animation", "animation", c.cfg.AnimationName, "error", err)
	}
}

// ShowGUI shows or hides the toggle control in every context.
func (c *Controller) ShowGUI(visible bool) {
	c.guiVisible = visible
	c.refreshControl()
}

// Close tears the controller down at deactivation.
func (c *Controller) Close() error {
	c.binder.Unbind()
	c.transitioning = false
	err := c.cues.Close()
	c.cues = nil
	return err
}

func (c *Controller) refreshControl() {
	if c.deployed {
		c.control.Label = c.cfg.EndEventGUIName
	} else {
		c.control.Label = c.cfg.StartEventGUIName
	}
	c.control.Visible = c.guiVisible
	c.control.VisibleInEditor = c.guiVisible
	c.control.VisibleWhenUnfocused = c.guiVisible
}

// IsDeployed reports the logical end state.
func (c *Controller) IsDeployed() bool { return c.deployed }

// IsTransitioning reports whether playback is believed to be running.
func (c *Controller) IsTransitioning() bool { return c.transitioning }

// Bound reports whether the clip was resolved.
func (c *Controller) Bound() bool { return c.binder.Bound() }

// Control returns the toggle control owned by this controller.
func (c *Controller) Control() *ToggleControl { return c.control }

// Config returns the part configuration.
func (c *Controller) Config() Config { return c.cfg }

// State folds both flags into one value.
func (c *Controller) State() State {
	switch {
	case c.transitioning && c.deployed:
		return TransitioningToDeployed
	case c.transitioning:
		return TransitioningToRetracted
	case c.deployed:
		return RestingDeployed
	}
	return RestingRetracted
}
