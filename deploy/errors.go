package deploy

import "errors"

var (
	// ErrClipNotFound is returned when the named clip is not on the model.
	ErrClipNotFound = errors.New("animation clip not found")
	// ErrAudioClipNotFound is returned when a cue URL has no registered clip.
	ErrAudioClipNotFound = errors.New("audio clip not found")
	// ErrMalformedValue is returned when a persisted value cannot be parsed.
	ErrMalformedValue = errors.New("malformed persisted value")
)
