package partdata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const gearYAML = `
title: Landing Gear
width: 48
height: 32
clips:
  - name: Deploy
    length: 2.5
  - name: Lights
    length: 1
    layer: 1
deploy:
  animationName: Deploy
  startEventGUIName: Extend Gear
  endEventGUIName: Retract Gear
  cues:
    start:
      url: sfx/gear_start.wav
    loop:
      url: sfx/gear_loop.wav
      pitch: 0.9
    stop:
      url: sfx/gear_stop.wav
      volume: 0.8
`

const bayYAML = `
name: cargo-bay
title: Cargo Bay
deploy:
  animationName: Open
  layer: 4
  guiVisible: false
`

const hangarTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="15" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="2" name="Parts">
  <object id="1" name="gear-right" x="200" y="100" width="48" height="32">
   <properties>
    <property name="definition" value="landing-gear"/>
   </properties>
  </object>
  <object id="2" name="gear-left" x="40" y="100">
   <properties>
    <property name="definition" value="landing-gear"/>
    <property name="endEventGUIName" value=""/>
    <property name="guiVisible" type="bool" value="false"/>
   </properties>
  </object>
  <object id="3" x="120" y="20" width="64" height="40">
   <properties>
    <property name="definition" value="cargo-bay"/>
    <property name="animationName" value="OpenWide"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"parts/landing-gear.yaml": {Data: []byte(gearYAML)},
		"parts/bay.yaml":          {Data: []byte(bayYAML)},
		"levels/hangar.tmx":       {Data: []byte(hangarTMX)},
	}
}

// TestLoadDefinitions verifies yaml decoding, naming and defaults.
func TestLoadDefinitions(t *testing.T) {
	t.Parallel()

	defs, err := LoadDefinitions(testFS(), "parts")
	require.NoError(t, err)
	require.Len(t, defs, 2)

	gear := defs["landing-gear"]
	require.Equal(t, "Landing Gear", gear.Title)
	require.Len(t, gear.Clips, 2)
	require.Equal(t, 1, gear.Clips[1].Layer)
	require.Equal(t, "Deploy", gear.Deploy.AnimationName)
	require.Equal(t, 2, gear.Deploy.Layer)
	require.True(t, gear.Deploy.GUIVisible)

	require.Equal(t, "sfx/gear_start.wav", gear.Deploy.Cues.Start.URL)
	require.InDelta(t, DefaultCuePitch, gear.Deploy.Cues.Start.Pitch, 1e-9)
	require.InDelta(t, DefaultCueVolume, gear.Deploy.Cues.Start.Volume, 1e-9)
	require.InDelta(t, 0.9, gear.Deploy.Cues.Loop.Pitch, 1e-9)
	require.InDelta(t, 0.8, gear.Deploy.Cues.Stop.Volume, 1e-9)

	bay := defs["cargo-bay"]
	require.Equal(t, 4, bay.Deploy.Layer)
	require.False(t, bay.Deploy.GUIVisible)
	require.Empty(t, bay.Deploy.Cues.Start.URL)
}

func TestLoadDefinitionsErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadDefinitions(fstest.MapFS{}, "parts")
	require.Error(t, err)

	_, err = LoadDefinitions(fstest.MapFS{"parts/a.yaml": {Data: []byte("deploy: [")}}, "parts")
	require.Error(t, err)

	dup := fstest.MapFS{
		"parts/a.yaml": {Data: []byte("name: same")},
		"parts/b.yaml": {Data: []byte("name: same")},
	}
	_, err = LoadDefinitions(dup, "parts")
	require.ErrorIs(t, err, ErrDuplicateDefinition)
}

// TestLoadHangar verifies part placement, id fallback, ordering and overrides.
func TestLoadHangar(t *testing.T) {
	t.Parallel()

	h, err := LoadHangar(testFS(), "levels/hangar.tmx")
	require.NoError(t, err)
	require.Equal(t, "hangar", h.Name)
	require.Equal(t, 320, h.MapWidth)
	require.Equal(t, 240, h.MapHeight)
	require.Len(t, h.Parts, 3)

	ids := []string{h.Parts[0].ID, h.Parts[1].ID, h.Parts[2].ID}
	require.Equal(t, []string{"part-3", "gear-left", "gear-right"}, ids)

	bay := h.Parts[0]
	require.NotNil(t, bay.AnimationName)
	require.Equal(t, "OpenWide", *bay.AnimationName)
	require.Nil(t, bay.GUIVisible)

	left := h.Parts[1]
	require.NotNil(t, left.EndEventGUIName)
	require.Empty(t, *left.EndEventGUIName)
	require.Nil(t, left.StartEventGUIName)
	require.NotNil(t, left.GUIVisible)
	require.False(t, *left.GUIVisible)

	defs, err := LoadDefinitions(testFS(), "parts")
	require.NoError(t, err)
	require.NoError(t, h.Validate(defs))

	delete(defs, "cargo-bay")
	require.Error(t, h.Validate(defs))
}

// TestResolve verifies spawn overrides win over definition values, including empty strings.
func TestResolve(t *testing.T) {
	t.Parallel()

	defs, err := LoadDefinitions(testFS(), "parts")
	require.NoError(t, err)
	h, err := LoadHangar(testFS(), "levels/hangar.tmx")
	require.NoError(t, err)

	gear := defs["landing-gear"]

	left := gear.Resolve(h.Parts[1])
	require.Equal(t, "Deploy", left.AnimationName)
	require.Equal(t, "Extend Gear", left.StartEventGUIName)
	require.Empty(t, left.EndEventGUIName)
	require.False(t, left.GUIVisible)
	require.Equal(t, gear.Deploy.Cues, left.Cues)

	w, hgt := gear.Size(h.Parts[1])
	require.InDelta(t, 48, w, 1e-9)
	require.InDelta(t, 32, hgt, 1e-9)

	right := gear.Resolve(h.Parts[2])
	require.Equal(t, gear.Deploy, right)

	bay := defs["cargo-bay"].Resolve(h.Parts[0])
	require.Equal(t, "OpenWide", bay.AnimationName)
}
