package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gravshift/common"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
	"github.com/milk9111/gravshift/scene"
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenuUI builds a centered panel with a title and a column of buttons.
// Buttons use colored nine-slices so no theme fonts need loading.
func newMenuUI(face ebtext.Face, titleText string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x55, A: 255})

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text(titleText, &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(200, 32)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func newMainMenuUI(g *Game) *ebitenui.UI {
	return newMenuUI(g.face, "GRAVSHIFT", []menuButton{
		{label: "Continue", onClick: func() { g.manager.StartLevel(g.manager.ContinueLevel()) }},
		{label: "New Game", onClick: func() { g.manager.StartLevel(levels.FirstLevel) }},
		{label: "Quit", onClick: g.manager.Quit},
	})
}

func newPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI(g.face, "Paused", []menuButton{
		{label: "Resume", onClick: func() {
			if w := g.currentWorld(); w != nil {
				w.SetPaused(false)
			}
		}},
		{label: "Restart", onClick: g.manager.Restart},
		{label: "Main Menu", onClick: g.manager.ToMainMenu},
	})
}

// newEndUI is rebuilt for every end screen since its title and buttons
// depend on how the level ended.
func newEndUI(g *Game, s *scene.End) *ebitenui.UI {
	var buttons []menuButton
	if s.State == obj.EndLose {
		buttons = append(buttons, menuButton{label: "Retry", onClick: g.manager.Restart})
	}
	buttons = append(buttons, menuButton{label: "Main Menu", onClick: g.manager.ToMainMenu})
	return newMenuUI(g.face, endTitle(s), buttons)
}
