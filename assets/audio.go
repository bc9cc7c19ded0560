package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioPath maps a cue URL to its path in the embedded audio tree.
func AudioPath(url string) string {
	return path.Join("audio", url)
}

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// Exists reports whether a cue URL names an embedded audio file.
func (l *AudioLoader) Exists(url string) bool {
	_, err := fs.Stat(audioFS, AudioPath(url))
	return err == nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(url string) error {
	_, err := l.decoded(url)
	return err
}

// NewPlayer creates a player for a cue. Pitch scales playback rate by
// resampling the decoded stream; loop wraps it in an infinite loop.
func (l *AudioLoader) NewPlayer(url string, loop bool, pitch float64) (*audio.Player, error) {
	data, err := l.decoded(url)
	if err != nil {
		return nil, err
	}

	var src io.ReadSeeker = bytes.NewReader(data)
	length := int64(len(data))

	if pitch > 0 && pitch != 1 {
		sr := l.context.SampleRate()
		from := int(float64(sr) * pitch)
		if from != sr {
			r := audio.Resample(src, length, from, sr)
			src, length = r, r.Length()
		}
	}

	if loop {
		src = audio.NewInfiniteLoop(src, length)
	}

	return l.context.NewPlayer(src)
}

func (l *AudioLoader) decoded(url string) ([]byte, error) {
	p := AudioPath(url)
	if cached, ok := l.sfxCache[p]; ok {
		return cached, nil
	}

	data, err := audioFS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}

	l.sfxCache[p] = decoded
	return decoded, nil
}
