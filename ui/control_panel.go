package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/doomerang-hangar/components"
	cfg "github.com/automoto/doomerang-hangar/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlPanel holds the ebitenui toggle button of the focused part and the
// hangar-wide buttons.
type ControlPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnDeployAll     func()
	OnRetractAll    func()
	OnSwitchContext func()
	OnSave          func()
	OnLoad          func()

	toggleButton  *widget.Button
	contextButton *widget.Button
	current       *components.PartData

	normalFace text.Face
	smallFace  text.Face
}

// NewControlPanel creates the panel. Callbacks may be set afterwards.
func NewControlPanel() *ControlPanel {
	p := &ControlPanel{}
	p.loadFonts()
	p.buildUI()
	return p
}

func (p *ControlPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	p.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.ButtonFontSize,
	}
	p.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.ButtonFontSize - 2,
	}
}

func (p *ControlPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	p.toggleButton = p.newButton("", p.normalFace, cfg.UI.ButtonWidth, func() {
		if p.current != nil && p.current.Reachable {
			p.current.Control.Press()
		}
	})
	column.AddChild(p.toggleButton)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	half := (cfg.UI.ButtonWidth - 4) / 2
	row.AddChild(p.newButton("Deploy All", p.smallFace, half, func() { call(p.OnDeployAll) }))
	row.AddChild(p.newButton("Retract All", p.smallFace, half, func() { call(p.OnRetractAll) }))
	column.AddChild(row)

	files := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	files.AddChild(p.newButton("Save", p.smallFace, half, func() { call(p.OnSave) }))
	files.AddChild(p.newButton("Load", p.smallFace, half, func() { call(p.OnLoad) }))
	column.AddChild(files)

	p.contextButton = p.newButton("", p.smallFace, cfg.UI.ButtonWidth, func() { call(p.OnSwitchContext) })
	column.AddChild(p.contextButton)

	rootContainer.AddChild(column)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *ControlPanel) newButton(label string, face text.Face, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, cfg.UI.ButtonHeight)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{
			Idle:     cfg.UI.ButtonText,
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPress),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}

// Refresh mirrors the focused part's toggle control onto the button. part is
// nil when nothing is focused.
func (p *ControlPanel) Refresh(part *components.PartData, live bool) {
	p.current = part

	toggle := p.toggleButton.GetWidget()
	if part == nil || !part.Reachable {
		toggle.Visibility = widget.Visibility_Hide
		toggle.Disabled = true
	} else {
		toggle.Visibility = widget.Visibility_Show
		toggle.Disabled = false
		if t := p.toggleButton.Text(); t != nil {
			t.Label = part.Control.Label
		}
	}

	if t := p.contextButton.Text(); t != nil {
		if live {
			t.Label = "Switch to Editor"
		} else {
			t.Label = "Switch to Live"
		}
	}
}

// Update calls the UI's Update method
func (p *ControlPanel) Update() {
	p.UI.Update()
}

// Draw renders the panel on top of the hangar.
func (p *ControlPanel) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
