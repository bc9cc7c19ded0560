package deploy

import "errors"

type fakeClip struct {
	length  float64
	time    float64
	speed   float64
	layer   int
	playing bool
	plays   int
}

func (c *fakeClip) Length() float64 { return c.length }
func (c *fakeClip) SetTime(t float64) { c.time = t }
func (c *fakeClip) SetNormalizedTime(t float64) { c.time = t * c.length }
func (c *fakeClip) SetSpeed(speed float64) { c.speed = speed }
func (c *fakeClip) SetLayer(layer int) { c.layer = layer }
func (c *fakeClip) IsPlaying() bool { return c.playing }
func (c *fakeClip) NormalizedTime() float64 { return c.time / c.length }
func (c *fakeClip) Play() {
	c.playing = true
	c.plays++
}

type fakeFinder struct {
	clips   map[string]*fakeClip
	lookups int
}

func (f *fakeFinder) FindAnimation(name string) (Clip, bool) {
	f.lookups++
	clip, ok := f.clips[name]
	if !ok {
		return nil, false
	}
	return clip, true
}

type fakeScene struct {
	live bool
}

func (s *fakeScene) IsLiveSimulation() bool { return s.live }

type fakeEmitter struct {
	url     string
	loop    bool
	pitch   float64
	volume  float64
	playing bool
	plays   int
	stops   int
	closed  bool
}

func (e *fakeEmitter) SetVolume(volume float64) { e.volume = volume }
func (e *fakeEmitter) Play() {
	e.playing = true
	e.plays++
}
func (e *fakeEmitter) Stop() {
	e.playing = false
	e.stops++
}
func (e *fakeEmitter) IsPlaying() bool { return e.playing }
func (e *fakeEmitter) Close() error {
	e.closed = true
	return nil
}

type fakeAudioClip struct {
	registry *fakeRegistry
	url      string
	err      error
}

func (c *fakeAudioClip) NewEmitter(loop bool, pitch float64) (Emitter, error) {
	if c.err != nil {
		return nil, c.err
	}
	e := &fakeEmitter{url: c.url, loop: loop, pitch: pitch}
	c.registry.emitters[c.url] = e
	return e, nil
}

type fakeRegistry struct {
	known    map[string]bool
	broken   map[string]bool
	volume   float64
	loads    int
	emitters map[string]*fakeEmitter
}

func newFakeRegistry(urls ...string) *fakeRegistry {
	r := &fakeRegistry{
		known:    make(map[string]bool),
		broken:   make(map[string]bool),
		volume:   1,
		emitters: make(map[string]*fakeEmitter),
	}
	for _, u := range urls {
		r.known[u] = true
	}
	return r
}

func (r *fakeRegistry) LoadAudioClip(url string) (AudioClip, bool) {
	r.loads++
	if !r.known[url] {
		return nil, false
	}
	clip := &fakeAudioClip{registry: r, url: url}
	if r.broken[url] {
		clip.err = errors.New("decoder failed")
	}
	return clip, true
}

func (r *fakeRegistry) GlobalOutputVolume() float64 { return r.volume }

const (
	testStartURL = "sfx/gear_start.wav"
	testLoopURL  = "sfx/gear_loop.wav"
	testStopURL  = "sfx/gear_stop.wav"
)

func testCues() CueSet {
	return CueSet{
		Start: Cue{URL: testStartURL, Pitch: 1, Volume: 0.5},
		Loop:  Cue{URL: testLoopURL, Pitch: 0.9, Volume: 0.5},
		Stop:  Cue{URL: testStopURL, Pitch: 1, Volume: 0.5},
	}
}

type harness struct {
	clip     *fakeClip
	finder   *fakeFinder
	scene    *fakeScene
	registry *fakeRegistry
	control  *ToggleControl
	ctrl     *Controller
}

func (h *harness) start() *fakeEmitter { return h.registry.emitters[testStartURL] }
func (h *harness) loop() *fakeEmitter { return h.registry.emitters[testLoopURL] }
func (h *harness) stop() *fakeEmitter { return h.registry.emitters[testStopURL] }

func (h *harness) cuePlays() int {
	n := 0
	for _, e := range h.registry.emitters {
		n += e.plays
	}
	return n
}

func newHarness(mutate ...func(*Config)) *harness {
	cfg := DefaultConfig()
	cfg.AnimationName = "Deploy"
	cfg.StartEventGUIName = "Extend Gear"
	cfg.EndEventGUIName = "Retract Gear"
	cfg.Cues = testCues()
	for _, m := range mutate {
		m(&cfg)
	}

	h := &harness{
		clip:     &fakeClip{length: 2.5},
		scene:    &fakeScene{live: true},
		registry: newFakeRegistry(testStartURL, testLoopURL, testStopURL),
		control:  &ToggleControl{},
	}
	h.finder = &fakeFinder{clips: map[string]*fakeClip{"Deploy": h.clip}}
	h.ctrl = NewController(cfg, Services{Clips: h.finder, Scene: h.scene, Audio: h.registry}, h.control, nil)
	return h
}
