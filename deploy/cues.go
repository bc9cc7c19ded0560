package deploy

import (
	"errors"
	"fmt"
)

// Cue configures one audio slot. An empty URL disables the slot.
type Cue struct {
	URL    string  `yaml:"url"`
	Pitch  float64 `yaml:"pitch"`
	Volume float64 `yaml:"volume"`
}

// CueSet holds the three transition cues of a part.
type CueSet struct {
	Start Cue `yaml:"start"`
	Loop  Cue `yaml:"loop"`
	Stop  Cue `yaml:"stop"`
}

// CueSynchronizer owns the start, loop and stop emitters of one part.
type CueSynchronizer struct {
	start Emitter
	loop  Emitter
	stop  Emitter
}

// NewCueSynchronizer creates the emitters for every configured slot. Volume is
// the registry's global output volume scaled by the slot volume, read once.
// The returned synchronizer is always usable: slots whose clip could not be
// loaded stay disabled and their errors are joined into err.
func NewCueSynchronizer(registry AudioRegistry, cues CueSet) (*CueSynchronizer, error) {
	s := &CueSynchronizer{}
	if registry == nil {
		return s, nil
	}

	master := registry.GlobalOutputVolume()
	var errs []error
	var err error

	if s.start, err = newEmitter(registry, cues.Start, false, master); err != nil {
		errs = append(errs, fmt.Errorf("start cue: %w", err))
	}
	if s.loop, err = newEmitter(registry, cues.Loop, true, master); err != nil {
		errs = append(errs, fmt.Errorf("loop cue: %w", err))
	}
	if s.stop, err = newEmitter(registry, cues.Stop, false, master); err != nil {
		errs = append(errs, fmt.Errorf("stop cue: %w", err))
	}

	return s, errors.Join(errs...)
}

func newEmitter(registry AudioRegistry, cue Cue, loop bool, master float64) (Emitter, error) {
	if cue.URL == "" {
		return nil, nil
	}

	clip, ok := registry.LoadAudioClip(cue.URL)
	if !ok || clip == nil {
		return nil, fmt.Errorf("%w: %s", ErrAudioClipNotFound, cue.URL)
	}

	e, err := clip.NewEmitter(loop, cue.Pitch)
	if err != nil {
		return nil, fmt.Errorf("create emitter for %s: %w", cue.URL, err)
	}
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrAudioClipNotFound, cue.URL)
	}

	e.SetVolume(master * cue.Volume)
	return e, nil
}

// FireStart plays the start cue and starts the loop cue. Emitters that are
// already playing are left alone.
func (s *CueSynchronizer) FireStart() {
	if s == nil {
		return
	}
	playIfIdle(s.start)
	playIfIdle(s.loop)
}

// FireStop plays the stop cue and always stops the loop cue.
func (s *CueSynchronizer) FireStop() {
	if s == nil {
		return
	}
	if s.stop != nil {
		s.stop.Play()
	}
	if s.loop != nil {
		s.loop.Stop()
	}
}

// Silence stops the loop cue without playing the stop cue.
func (s *CueSynchronizer) Silence() {
	if s == nil || s.loop == nil {
		return
	}
	s.loop.Stop()
}

// Enabled reports how many slots have an emitter.
func (s *CueSynchronizer) Enabled() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, e := range []Emitter{s.start, s.loop, s.stop} {
		if e != nil {
			n++
		}
	}
	return n
}

// Close stops and releases every emitter.
func (s *CueSynchronizer) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, e := range []Emitter{s.start, s.loop, s.stop} {
		if e == nil {
			continue
		}
		e.Stop()
		if err := e.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.start, s.loop, s.stop = nil, nil, nil
	return errors.Join(errs...)
}

func playIfIdle(e Emitter) {
	if e != nil && !e.IsPlaying() {
		e.Play()
	}
}
