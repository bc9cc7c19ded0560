package deploy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBinder(live bool) (*PlaybackBinder, *fakeClip, *fakeFinder) {
	clip := &fakeClip{length: 4}
	finder := &fakeFinder{clips: map[string]*fakeClip{"Deploy": clip}}
	return NewPlaybackBinder(finder, &fakeScene{live: live}, 5), clip, finder
}

// TestBindResolvesAndSetsLayer verifies the clip handle is resolved and layered.
func TestBindResolvesAndSetsLayer(t *testing.T) {
	t.Parallel()

	b, clip, finder := newTestBinder(true)
	require.NoError(t, b.Bind("Deploy"))
	require.True(t, b.Bound())
	require.Equal(t, 5, clip.layer)
	require.Equal(t, "Deploy", b.Name())

	// binding again resolves afresh
	require.NoError(t, b.Bind("Deploy"))
	require.Equal(t, 2, finder.lookups)
}

// TestBindMissingClip verifies missing and empty names report ErrClipNotFound.
func TestBindMissingClip(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBinder(true)
	require.NoError(t, b.Bind("Deploy"))

	require.ErrorIs(t, b.Bind("Nope"), ErrClipNotFound)
	require.False(t, b.Bound())
	require.ErrorIs(t, b.Bind(""), ErrClipNotFound)
	require.False(t, b.IsPlaying())

	unbound := NewPlaybackBinder(nil, nil, DefaultLayer)
	require.ErrorIs(t, unbound.Bind("Deploy"), ErrClipNotFound)
	require.NotPanics(t, unbound.PlayForward)
	require.NotPanics(t, unbound.PlayReverse)
	require.NotPanics(t, func() { unbound.Rest(true) })
}

// TestPlayDirections verifies start time and signed speed for live and preview playback.
func TestPlayDirections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		live    bool
		reverse bool
		time    float64
		speed   float64
	}{
		{name: "live forward", live: true, reverse: false, time: 0, speed: 1},
		{name: "live reverse", live: true, reverse: true, time: 4, speed: -1},
		{name: "preview forward", live: false, reverse: false, time: 0, speed: PreviewSpeedMultiplier},
		{name: "preview reverse", live: false, reverse: true, time: 4, speed: -PreviewSpeedMultiplier},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b, clip, _ := newTestBinder(tc.live)
			require.NoError(t, b.Bind("Deploy"))
			clip.time = 1.7

			if tc.reverse {
				b.PlayReverse()
			} else {
				b.PlayForward()
			}

			require.InDelta(t, tc.time, clip.time, 1e-9)
			require.InDelta(t, tc.speed, clip.speed, 1e-9)
			require.Equal(t, 1, clip.plays)
			require.True(t, b.IsPlaying())
		})
	}
}

// TestRestSnapsToEnds verifies resting uses the snap speed toward the matching end.
func TestRestSnapsToEnds(t *testing.T) {
	t.Parallel()

	b, clip, _ := newTestBinder(true)
	require.NoError(t, b.Bind("Deploy"))

	b.Rest(true)
	require.InDelta(t, 1, clip.NormalizedTime(), 1e-9)
	require.InDelta(t, SnapSpeed, clip.speed, 1e-9)

	b.Rest(false)
	require.InDelta(t, 0, clip.NormalizedTime(), 1e-9)
	require.InDelta(t, -SnapSpeed, clip.speed, 1e-9)
}
