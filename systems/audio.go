package systems

import (
	"fmt"
	"sync"

	"github.com/automoto/doomerang-hangar/assets"
	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scene rebuilds
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadCues decodes every cue referenced by the given configs so the first
// transition does not stall on decoding.
func PreloadCues(configs ...deploy.Config) {
	initGlobalAudio()

	for _, c := range configs {
		for _, cue := range []deploy.Cue{c.Cues.Start, c.Cues.Loop, c.Cues.Stop} {
			if cue.URL == "" {
				continue
			}
			if err := globalAudioLoader.PreloadSFX(cue.URL); err != nil {
				logger.Logger().Warnw("could not preload cue", "url", cue.URL, "error", err)
			}
		}
	}
}

// UpdateAudio applies volume changes from input and keeps the audio singleton
// in sync with the global volume.
func UpdateAudio(e *ecs.ECS) {
	audioData := getOrCreateAudio(e)
	input := GetOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionVolumeUp).JustPressed {
		audioData.SFXVolume = stepVolume(audioData.SFXVolume, 1)
		changed = true
	}
	if GetAction(input, cfg.ActionVolumeDown).JustPressed {
		audioData.SFXVolume = stepVolume(audioData.SFXVolume, -1)
		changed = true
	}

	globalSFXVolume = audioData.SFXVolume
	globalMuted = audioData.Muted

	if changed {
		notify(e, "Volume "+volumeLabel(audioData.SFXVolume))
		SaveSettings(&SavedSettings{SFXVolume: audioData.SFXVolume, Muted: audioData.Muted})
	}
}

// stepVolume moves to the next configured volume step in the given direction.
func stepVolume(current float64, dir int) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	idx := 0
	for i, s := range steps {
		if s <= current+1e-9 {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

func volumeLabel(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}

// getOrCreateAudio returns the singleton Audio component, creating if needed
func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:   globalAudioContext,
			SFXVolume: globalSFXVolume,
			Muted:     globalMuted,
		})
	}
	return components.Audio.Get(entry)
}

// SFXRegistry resolves cue URLs against the embedded audio assets.
type SFXRegistry struct {
	loader *assets.AudioLoader
}

// NewSFXRegistry returns a registry backed by the global audio context.
func NewSFXRegistry() *SFXRegistry {
	initGlobalAudio()
	return &SFXRegistry{loader: globalAudioLoader}
}

func (r *SFXRegistry) LoadAudioClip(url string) (deploy.AudioClip, bool) {
	if r == nil || r.loader == nil || !r.loader.Exists(url) {
		return nil, false
	}
	return &sfxClip{url: url, loader: r.loader}, true
}

// GlobalOutputVolume is the SFX volume, or zero when muted.
func (r *SFXRegistry) GlobalOutputVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalSFXVolume
}

type sfxClip struct {
	url    string
	loader *assets.AudioLoader
}

func (c *sfxClip) NewEmitter(loop bool, pitch float64) (deploy.Emitter, error) {
	player, err := c.loader.NewPlayer(c.url, loop, pitch)
	if err != nil {
		return nil, err
	}
	return &sfxEmitter{player: player}, nil
}

// sfxEmitter adapts an audio player to a cue emitter. Stop rewinds so the
// next Play starts from the beginning.
type sfxEmitter struct {
	player *audio.Player
}

func (s *sfxEmitter) SetVolume(v float64) { s.player.SetVolume(v) }
func (s *sfxEmitter) IsPlaying() bool { return s.player.IsPlaying() }
func (s *sfxEmitter) Close() error { return s.player.Close() }

func (s *sfxEmitter) Play() {
	if !s.player.IsPlaying() {
		_ = s.player.Rewind()
	}
	s.player.Play()
}

func (s *sfxEmitter) Stop() {
	s.player.Pause()
	_ = s.player.Rewind()
}
