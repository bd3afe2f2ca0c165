package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravshift/common"
	"github.com/milk9111/gravshift/component"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
	"github.com/milk9111/gravshift/system"
	"golang.org/x/image/colornames"
)

var backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var tagColors = map[component.Tag]color.Color{
	component.TagNone:          colornames.Slategray,
	component.TagPlayer:        colornames.Crimson,
	component.TagEnemy:         colornames.Darkorange,
	component.TagBullet:        colornames.Yellow,
	component.TagCrate:         colornames.Saddlebrown,
	component.TagPressurePlate: colornames.Gold,
	component.TagPickup:        colornames.Limegreen,
	component.TagNextObject:    colornames.Deepskyblue,
	component.TagWinObject:     colornames.Violet,
	component.TagDoor:          colornames.Steelblue,
}

// drawBox fills a rotated rectangle given in world units.
func drawBox(screen *ebiten.Image, cam *obj.Camera, cx, cy, hw, hh, angle float64, clr color.Color) {
	r, g, b, a := clr.RGBA()
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	vs := make([]ebiten.Vertex, 0, 4)
	for _, c := range corners {
		wx := cx + c[0]*cos - c[1]*sin
		wy := cy + c[0]*sin + c[1]*cos
		sx, sy := cam.WorldToScreen(wx, wy)
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		})
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, whiteSubImage, nil)
}

func drawBody(screen *ebiten.Image, cam *obj.Camera, pb *obj.PhysicsBody, clr color.Color) {
	if pb == nil || pb.Removed() {
		return
	}
	pos := pb.Position()
	hw, hh := pb.HalfExtents()
	drawBox(screen, cam, pos.X, pos.Y, hw, hh, pb.Angle(), clr)
}

func drawWorld(screen *ebiten.Image, w *system.World) {
	if w == nil {
		return
	}
	cam := w.Camera
	for _, o := range w.Background() {
		clr := colornames.Darkslategray
		if o.Type == levels.TypeWindow {
			clr = colornames.Midnightblue
		}
		drawBox(screen, cam, o.CenterX, o.CenterY, o.HalfW, o.HalfH, common.DegToRad(o.Angle), clr)
	}
	for _, s := range w.Statics {
		drawBody(screen, cam, s.Body(), tagColors[s.Tag()])
	}
	for _, d := range w.Doors {
		drawBody(screen, cam, d.Body(), tagColors[component.TagDoor])
	}
	for _, pp := range w.Plates {
		clr := tagColors[component.TagPressurePlate]
		if pp.Active() {
			clr = colornames.Lime
		}
		drawBody(screen, cam, pp.Body(), clr)
	}
	for _, d := range w.Dynamics {
		if p, ok := d.(*obj.Pickup); ok && !p.Active() {
			continue
		}
		drawBody(screen, cam, d.Body(), tagColors[d.Tag()])
	}
	for _, e := range w.Enemies {
		clr := tagColors[component.TagEnemy]
		if e.StateName() == "idle" {
			clr = colornames.Orangered
		}
		drawBody(screen, cam, e.Body(), clr)
	}
	for _, b := range w.Bullets.Bullets() {
		drawBody(screen, cam, b.Body(), tagColors[component.TagBullet])
	}
	clr := tagColors[component.TagPlayer]
	if w.Player.Locked() {
		clr = colornames.Hotpink
	}
	drawBody(screen, cam, w.Player.Body(), clr)
	drawFacing(screen, cam, w.Player)
}

// drawFacing marks the side of the player it faces, in its own frame.
func drawFacing(screen *ebiten.Image, cam *obj.Camera, p *obj.Player) {
	pb := p.Body()
	if pb == nil || pb.Removed() {
		return
	}
	hw, hh := pb.HalfExtents()
	side := hw / 2
	if p.Flipped() {
		side = -side
	}
	angle := pb.Angle()
	sin, cos := math.Sincos(angle)
	pos := pb.Position()
	x := pos.X + side*cos - hh/2*sin
	y := pos.Y + side*sin + hh/2*cos
	drawBox(screen, cam, x, y, hw/4, hh/8, angle, colornames.White)
}
