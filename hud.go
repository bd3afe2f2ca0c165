package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gravshift/common"
	"github.com/milk9111/gravshift/obj"
	"github.com/milk9111/gravshift/scene"
	"github.com/milk9111/gravshift/system"
	"golang.org/x/image/colornames"
)

const (
	hudScale   = 2
	heartSize  = 18
	heartGap   = 6
	hudMargin  = 20
	lineHeight = 13 * hudScale
)

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, centered bool) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	if centered {
		op.PrimaryAlign = ebtext.AlignCenter
	}
	ebtext.Draw(screen, s, g.face, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, w *system.World) {
	if w == nil {
		return
	}
	for i := range common.MaxHearts {
		x := float32(hudMargin + i*(heartSize+heartGap))
		if w.HeartFull(i) {
			vector.FillRect(screen, x, hudMargin, heartSize, heartSize, colornames.Crimson, false)
		} else {
			vector.StrokeRect(screen, x, hudMargin, heartSize, heartSize, 2, colornames.Dimgray, false)
		}
	}

	y := float64(hudMargin + heartSize + 10)
	gun := w.Player.Gun()
	ammo := fmt.Sprintf("Ammo %d / %d", gun.Loaded(), gun.Reserve())
	if gun.Reloading() {
		ammo = "Reloading..."
	}
	g.drawText(screen, ammo, hudMargin, y, colornames.White, false)
	y += lineHeight

	grav := w.Gravity
	status := fmt.Sprintf("Gravity %s x%.0f", grav.Direction(), grav.Multiplier())
	if w.Player.Locked() {
		status += "  LOCKED"
	}
	if grav.BoostActive() {
		status += "  BOOST"
	}
	g.drawText(screen, status, hudMargin, y, colornames.Lightsteelblue, false)

	next, win := w.Player.TouchingExit()
	if next || win {
		hint := fmt.Sprintf("Press %s to continue", g.poller.Describe(obj.ActionInteract))
		g.drawText(screen, hint, common.BaseWidth/2, common.BaseHeight-2*hudMargin-lineHeight, colornames.Deepskyblue, true)
	}
}

func (g *Game) drawLoading(screen *ebiten.Image, s *scene.Loading) {
	clr := color.Color(colornames.White)
	if s.Err != nil {
		clr = colornames.Tomato
	}
	g.drawText(screen, s.Status, common.BaseWidth/2, common.BaseHeight/2, clr, true)
}

// endTitle is the heading of the end screen.
func endTitle(s *scene.End) string {
	switch {
	case s.State != obj.EndWin:
		return "You died"
	case s.Final:
		return "You escaped. Thanks for playing!"
	default:
		return "Level complete"
	}
}

// drawFade covers the screen in black at the given opacity.
func drawFade(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	a := uint8(common.Clamp(alpha, 0, 1) * 255)
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: a}, false)
}
