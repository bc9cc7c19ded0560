package main

import (
	"fmt"
	"image"
	"os"
	"slices"
	"strings"

	"github.com/automoto/doomerang-hangar/assets"
	"github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/fonts"
	"github.com/automoto/doomerang-hangar/logger"
	"github.com/automoto/doomerang-hangar/scenes"
	"github.com/automoto/doomerang-hangar/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(data *scenes.HangarData) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	nodes := loadSavedNodes(data.Hangar.Name)
	g.scene = scenes.NewHangarScene(g, data, !config.Debug.StartInEditor, nodes)

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	// hangarPath is the embedded TMX map to open.
	hangarPath string
	// logLevel is the minimum level written to stderr.
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "doomerang-hangar",
		Short: "Deploy and retract animated parts in a hangar.",
		Long: `Opens a hangar map and lets you toggle its landing gear, cargo bays,
solar panels and antennas. Parts keep their deployed state across quick
save and load, and across switches between the live and editor contexts.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}
)

func run() error {
	level, ok := logger.ParseLogLevel(logLevel)
	if !ok {
		logger.Logger().Warnf("Warning: Unknown log level %q, using %s", logLevel, level)
	}
	logger.SetLevel(level)

	if !slices.Contains(assets.ListHangars(), hangarPath) {
		return fmt.Errorf("unknown hangar %q, available: %s", hangarPath, strings.Join(assets.ListHangars(), ", "))
	}

	data, err := scenes.LoadHangarData(hangarPath)
	if err != nil {
		return fmt.Errorf("load hangar %s: %w", hangarPath, err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Logger().Warnf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	game, err := NewGame(data)
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}
	return ebiten.RunGame(game)
}

func loadSavedNodes(name string) map[string]*deploy.ConfigNode {
	nodes, err := systems.LoadHangarNodes(name)
	if err != nil {
		return nil
	}
	if nodes != nil {
		logger.Logger().Infow("restoring saved hangar", "hangar", name, "parts", len(nodes))
	}
	return nodes
}

func init() {
	rootCmd.Flags().BoolVarP(&config.Debug.StartInEditor, "editor", "e", false, "start in the editor context")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&hangarPath, "hangar", config.Hangar.DefaultMap, "embedded hangar map to open")
	rootCmd.Flags().BoolVar(&config.Debug.ShowOverlay, "debug", false, "show the debug overlay")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
