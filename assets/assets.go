package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/doomerang-hangar/shared/partdata"
)

const (
	PartsDir      = "parts"
	DefaultHangar = "levels/hangar.tmx"
)

var (
	//go:embed all:levels all:parts
	assetFS embed.FS
)

// MustLoadDefinitions parses every embedded part definition.
func MustLoadDefinitions() map[string]partdata.Definition {
	defs, err := partdata.LoadDefinitions(assetFS, PartsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load part definitions: %v", err))
	}
	return defs
}

// LoadHangar parses a hangar map and checks every part has a definition.
func LoadHangar(path string, defs map[string]partdata.Definition) (*partdata.Hangar, error) {
	h, err := partdata.LoadHangar(assetFS, path)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(defs); err != nil {
		return nil, fmt.Errorf("hangar %s: %w", path, err)
	}
	return h, nil
}

// ListHangars returns the embedded hangar map paths.
func ListHangars() []string {
	matches, err := fs.Glob(assetFS, "levels/*.tmx")
	if err != nil {
		return nil
	}
	return matches
}
