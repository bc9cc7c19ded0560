package partdata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// PartsGroup is the TMX object group holding part placements.
const PartsGroup = "Parts"

// LoadHangar parses a TMX file and returns the placed parts. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadHangar(fsys fs.FS, tmxPath string) (*Hangar, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	h := &Hangar{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  m.Width * m.TileWidth,
		MapHeight: m.Height * m.TileHeight,
	}

	seen := make(map[string]bool)
	for _, og := range m.ObjectGroups {
		if og.Name != PartsGroup {
			continue
		}
		for _, o := range og.Objects {
			id := o.Name
			if id == "" {
				id = "part-" + strconv.FormatUint(uint64(o.ID), 10)
			}
			if seen[id] {
				return nil, fmt.Errorf("%s: duplicate part id %q", tmxPath, id)
			}
			seen[id] = true

			spawn := PartSpawn{
				ID:         id,
				Definition: o.Properties.GetString("definition"),
				X:          o.X,
				Y:          o.Y,
				W:          o.Width,
				H:          o.Height,
			}
			if spawn.Definition == "" {
				return nil, fmt.Errorf("%s: part %q has no definition", tmxPath, id)
			}
			spawn.AnimationName = stringProp(o.Properties, "animationName")
			spawn.StartEventGUIName = stringProp(o.Properties, "startEventGUIName")
			spawn.EndEventGUIName = stringProp(o.Properties, "endEventGUIName")
			if v := stringProp(o.Properties, "guiVisible"); v != nil {
				b, err := strconv.ParseBool(*v)
				if err != nil {
					return nil, fmt.Errorf("%s: part %q guiVisible: %w", tmxPath, id, err)
				}
				spawn.GUIVisible = &b
			}
			h.Parts = append(h.Parts, spawn)
		}
	}

	// Sort parts top-to-bottom, left-to-right for a stable focus order
	sort.SliceStable(h.Parts, func(i, j int) bool {
		if h.Parts[i].Y != h.Parts[j].Y {
			return h.Parts[i].Y < h.Parts[j].Y
		}
		return h.Parts[i].X < h.Parts[j].X
	})

	return h, nil
}

func stringProp(props tiled.Properties, name string) *string {
	for _, p := range props {
		if p.Name == name {
			v := p.Value
			return &v
		}
	}
	return nil
}

// Validate reports parts whose definition is unknown.
func (h *Hangar) Validate(defs map[string]Definition) error {
	for _, p := range h.Parts {
		if _, ok := defs[p.Definition]; !ok {
			return fmt.Errorf("part %q: unknown definition %q", p.ID, p.Definition)
		}
	}
	return nil
}
