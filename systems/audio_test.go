package systems

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepVolume(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		current float64
		dir     int
		want    float64
	}{
		"up from half":      {current: 0.5, dir: 1, want: 0.75},
		"down from half":    {current: 0.5, dir: -1, want: 0.25},
		"clamped at top":    {current: 1, dir: 1, want: 1},
		"clamped at bottom": {current: 0, dir: -1, want: 0},
		"between steps":     {current: 0.6, dir: 1, want: 0.75},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, stepVolume(tc.current, tc.dir), 1e-9)
		})
	}
}

func TestVolumeLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "75%", volumeLabel(0.75))
	require.Equal(t, "0%", volumeLabel(0))
}

func TestSFXRegistryVolume(t *testing.T) {
	prevVolume, prevMuted := globalSFXVolume, globalMuted
	t.Cleanup(func() {
		globalSFXVolume, globalMuted = prevVolume, prevMuted
	})

	r := &SFXRegistry{}
	globalSFXVolume, globalMuted = 0.5, false
	require.Equal(t, 0.5, r.GlobalOutputVolume())

	globalMuted = true
	require.Equal(t, 0.0, r.GlobalOutputVolume())

	_, ok := r.LoadAudioClip("sfx/servo_start.wav")
	require.False(t, ok)
}
