package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/bricker/ecs/system"
)

// Prompt is the modal yes/no question shown when a round ends. Y/Enter and
// N/Escape answer it from the keyboard.
type Prompt struct {
	ui       *ebitenui.UI
	message  string
	answered bool
	onYes    func()
	onNo     func()
}

func promptMessage(outcome system.Outcome) string {
	if outcome == system.OutcomeWin {
		return "You Win! Play Again?"
	}
	return "You Lose! Play Again?"
}

func NewPrompt(message string, width, height int, onYes, onNo func()) *Prompt {
	p := &Prompt{message: message, onYes: onYes, onNo: onNo}
	p.ui = newPromptUI(message, width, height, func() { p.answer(true) }, func() { p.answer(false) })
	return p
}

func (p *Prompt) Message() string {
	if p == nil {
		return ""
	}
	return p.message
}

func (p *Prompt) Update() {
	if p == nil || p.answered {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyY), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		p.answer(true)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.answer(false)
		return
	}
	p.ui.Update()
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if p == nil || p.ui == nil {
		return
	}
	p.ui.Draw(screen)
}

// answer runs the chosen callback at most once.
func (p *Prompt) answer(yes bool) {
	if p.answered {
		return
	}
	p.answered = true
	if yes && p.onYes != nil {
		p.onYes()
	}
	if !yes && p.onNo != nil {
		p.onNo()
	}
}

func newPromptUI(message string, width, height int, onYes, onNo func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	title := widget.NewText(
		widget.TextOpts.Text(message, &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	button := func(label string, clicked func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				clicked()
			}),
		)
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	buttons.AddChild(button("Yes", onYes))
	buttons.AddChild(button("No", onNo))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(buttons)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
