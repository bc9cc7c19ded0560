package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/doomerang-hangar/assets"
	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/automoto/doomerang-hangar/logger"
	"github.com/automoto/doomerang-hangar/shared/partdata"
	"github.com/automoto/doomerang-hangar/systems"
	"github.com/automoto/doomerang-hangar/systems/factory"
	"github.com/automoto/doomerang-hangar/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HangarData is the static content a hangar scene is built from.
type HangarData struct {
	Path        string
	Definitions map[string]partdata.Definition
	Hangar      *partdata.Hangar
}

// LoadHangarData reads the embedded part definitions and the hangar map.
func LoadHangarData(path string) (*HangarData, error) {
	defs := assets.MustLoadDefinitions()
	h, err := assets.LoadHangar(path, defs)
	if err != nil {
		return nil, err
	}
	return &HangarData{Path: path, Definitions: defs, Hangar: h}, nil
}

type sceneRequest int

const (
	requestNone sceneRequest = iota
	requestSave
	requestLoad
	requestSwitchContext
)

// HangarScene owns one build of the hangar world. Quick load and context
// switches replace it with a fresh scene, so every part goes through
// Deserialize and Start again.
type HangarScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	data         *HangarData
	live         bool
	nodes        map[string]*deploy.ConfigNode
	focusID      string
	audio        deploy.AudioRegistry
	panel        *ui.ControlPanel
	pending      sceneRequest
	once         sync.Once
}

// NewHangarScene creates a scene in the live or editor context. nodes holds
// saved part state keyed by part id and may be nil.
func NewHangarScene(sc SceneChanger, data *HangarData, live bool, nodes map[string]*deploy.ConfigNode) *HangarScene {
	return &HangarScene{
		sceneChanger: sc,
		data:         data,
		live:         live,
		nodes:        nodes,
	}
}

func (hs *HangarScene) Update() {
	hs.once.Do(hs.configure)

	hs.panel.Update()
	hs.ecs.Update()

	input := systems.GetOrCreateInput(hs.ecs)
	switch {
	case systems.GetAction(input, cfg.ActionQuickSave).JustPressed:
		hs.pending = requestSave
	case systems.GetAction(input, cfg.ActionQuickLoad).JustPressed:
		hs.pending = requestLoad
	case systems.GetAction(input, cfg.ActionSwitchContext).JustPressed:
		hs.pending = requestSwitchContext
	}
	if hs.handleRequest() {
		return
	}

	var focused *components.PartData
	if e, ok := systems.FocusedPart(hs.ecs); ok {
		focused = components.Part.Get(e)
	}
	hs.panel.Refresh(focused, hs.live)
}

func (hs *HangarScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
	hs.panel.Draw(screen)
}

// handleRequest runs the pending panel or keyboard request and reports
// whether the scene was replaced.
func (hs *HangarScene) handleRequest() bool {
	req := hs.pending
	hs.pending = requestNone

	switch req {
	case requestSave:
		if err := systems.SaveHangar(hs.ecs, hs.data.Hangar.Name); err != nil {
			systems.Notify(hs.ecs, "Save failed")
			return false
		}
		systems.Notify(hs.ecs, "Hangar saved")
	case requestLoad:
		if !systems.HasSavedHangar(hs.data.Hangar.Name) {
			systems.Notify(hs.ecs, "No saved hangar")
			return false
		}
		nodes, err := systems.LoadHangarNodes(hs.data.Hangar.Name)
		if err != nil || nodes == nil {
			systems.Notify(hs.ecs, "Load failed")
			return false
		}
		hs.rebuild(hs.live, nodes)
		return true
	case requestSwitchContext:
		hs.rebuild(!hs.live, systems.SerializeParts(hs.ecs))
		return true
	}
	return false
}

// rebuild tears the world down and hands over to a new scene restored from
// nodes.
func (hs *HangarScene) rebuild(live bool, nodes map[string]*deploy.ConfigNode) {
	next := NewHangarScene(hs.sceneChanger, hs.data, live, nodes)
	if e, ok := systems.FocusedPart(hs.ecs); ok {
		next.focusID = components.Part.Get(e).ID
	}
	hs.teardown()

	logger.Logger().Infow("rebuilding hangar", "hangar", hs.data.Hangar.Name, "live", live, "parts", len(nodes))
	hs.sceneChanger.ChangeScene(next)
}

func (hs *HangarScene) teardown() {
	var parts []*donburi.Entry
	components.Part.Each(hs.ecs.World, func(e *donburi.Entry) {
		parts = append(parts, e)
	})
	for _, e := range parts {
		factory.DestroyPart(hs.ecs, e)
	}
}

func (hs *HangarScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		logger.Logger().Warnf("Warning: Could not load shaders: %v", err)
	}

	h := hs.data.Hangar
	configs := make([]deploy.Config, 0, len(h.Parts))
	for _, spawn := range h.Parts {
		configs = append(configs, hs.data.Definitions[spawn.Definition].Resolve(spawn))
	}
	systems.PreloadCues(configs...)
	hs.audio = systems.NewSFXRegistry()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateFocus)
	ecs.AddSystem(systems.UpdateControlVisibility) // Must run before UpdateDeployInput
	ecs.AddSystem(systems.UpdateDeployInput)
	ecs.AddSystem(systems.UpdateClips)
	ecs.AddSystem(systems.UpdateDeployables) // Must run after UpdateClips
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateHUD)

	ecs.AddRenderer(cfg.Default, systems.DrawParts)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)

	hs.ecs = ecs

	systems.GetOrCreateSceneMode(hs.ecs).Live = hs.live
	factory.CreateSpace(hs.ecs, h.MapWidth, h.MapHeight, cfg.Hangar.CellSize, cfg.Hangar.CellSize)

	for _, spawn := range h.Parts {
		var node deploy.Node
		if n, ok := hs.nodes[spawn.ID]; ok && n != nil {
			node = n
		}
		factory.CreatePart(hs.ecs, spawn, hs.data.Definitions[spawn.Definition], node, hs.audio)
	}

	if hs.focusID == "" || !systems.FocusPart(hs.ecs, hs.focusID) {
		if len(h.Parts) > 0 {
			systems.FocusPart(hs.ecs, h.Parts[0].ID)
		}
	}

	hs.panel = ui.NewControlPanel()
	hs.panel.OnDeployAll = func() { hs.triggerGroup(true) }
	hs.panel.OnRetractAll = func() { hs.triggerGroup(false) }
	hs.panel.OnSave = func() { hs.pending = requestSave }
	hs.panel.OnLoad = func() { hs.pending = requestLoad }
	hs.panel.OnSwitchContext = func() { hs.pending = requestSwitchContext }
}

func (hs *HangarScene) triggerGroup(deployed bool) {
	n := systems.TriggerActionGroup(hs.ecs, deployed)
	logger.Logger().Debugw("action group", "deployed", deployed, "parts", n)
}
