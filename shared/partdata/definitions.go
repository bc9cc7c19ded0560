package partdata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/doomerang-hangar/deploy"
	"gopkg.in/yaml.v3"
)

// Cue defaults applied when a definition leaves pitch or volume unset.
const (
	DefaultCuePitch  = 1.0
	DefaultCueVolume = 0.5
)

var ErrDuplicateDefinition = errors.New("duplicate part definition")

type definitionFile struct {
	Name   string    `yaml:"name"`
	Title  string    `yaml:"title"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Clips  []ClipDef `yaml:"clips"`
	Deploy struct {
		AnimationName     string `yaml:"animationName"`
		Layer             *int   `yaml:"layer"`
		StartEventGUIName string `yaml:"startEventGUIName"`
		EndEventGUIName   string `yaml:"endEventGUIName"`
		GUIVisible        *bool  `yaml:"guiVisible"`
		Cues              cueSet `yaml:"cues"`
	} `yaml:"deploy"`
}

type cueSet struct {
	Start cueFile `yaml:"start"`
	Loop  cueFile `yaml:"loop"`
	Stop  cueFile `yaml:"stop"`
}

type cueFile struct {
	URL    string   `yaml:"url"`
	Pitch  *float64 `yaml:"pitch"`
	Volume *float64 `yaml:"volume"`
}

func (c cueFile) cue() deploy.Cue {
	cue := deploy.Cue{URL: c.URL, Pitch: DefaultCuePitch, Volume: DefaultCueVolume}
	if c.Pitch != nil {
		cue.Pitch = *c.Pitch
	}
	if c.Volume != nil {
		cue.Volume = *c.Volume
	}
	return cue
}

// ParseDefinition decodes one YAML part definition. name is used when the
// file does not declare one.
func ParseDefinition(data []byte, name string) (Definition, error) {
	var f definitionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Definition{}, fmt.Errorf("decode definition %s: %w", name, err)
	}
	if f.Name == "" {
		f.Name = name
	}

	cfg := deploy.DefaultConfig()
	cfg.AnimationName = f.Deploy.AnimationName
	cfg.StartEventGUIName = f.Deploy.StartEventGUIName
	cfg.EndEventGUIName = f.Deploy.EndEventGUIName
	if f.Deploy.Layer != nil {
		cfg.Layer = *f.Deploy.Layer
	}
	if f.Deploy.GUIVisible != nil {
		cfg.GUIVisible = *f.Deploy.GUIVisible
	}
	cfg.Cues = deploy.CueSet{
		Start: f.Deploy.Cues.Start.cue(),
		Loop:  f.Deploy.Cues.Loop.cue(),
		Stop:  f.Deploy.Cues.Stop.cue(),
	}

	return Definition{
		Name:   f.Name,
		Title:  f.Title,
		Width:  f.Width,
		Height: f.Height,
		Clips:  f.Clips,
		Deploy: cfg,
	}, nil
}

// LoadDefinitions reads every .yaml file in dir and returns the definitions
// keyed by name.
func LoadDefinitions(fsys fs.FS, dir string) (map[string]Definition, error) {
	matches, err := fs.Glob(fsys, dir+"/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .yaml files found in %s", dir)
	}
	sort.Strings(matches)

	defs := make(map[string]Definition, len(matches))
	for _, p := range matches {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		stem := strings.TrimSuffix(path.Base(p), ".yaml")
		def, err := ParseDefinition(data, stem)
		if err != nil {
			return nil, err
		}
		if _, ok := defs[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDefinition, def.Name)
		}
		defs[def.Name] = def
	}
	return defs, nil
}
