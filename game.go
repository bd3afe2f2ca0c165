package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gravshift/assets"
	"github.com/milk9111/gravshift/common"
	"github.com/milk9111/gravshift/config"
	"github.com/milk9111/gravshift/input"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/scene"
	"github.com/milk9111/gravshift/system"
	"golang.org/x/image/font/basicfont"
)

type gameOptions struct {
	Level    string
	Debug    bool
	Seed     uint64
	Tuning   config.Tuning
	Bindings *config.Bindings
	Store    *system.ProgressStore
	Sounds   *assets.Sounds
}

// rumbleFrame covers one update so the motors stop with the shake.
const rumbleFrame = time.Second / 60

type Game struct {
	frames int
	debug  bool

	cancel  context.CancelFunc
	loader  *system.Loader
	manager *scene.Manager
	poller  *input.Poller
	watcher *config.Watcher

	// pendingTuning waits for no load to be in flight before it is applied.
	pendingTuning *config.Tuning

	face    ebtext.Face
	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI
	endUI   *ebitenui.UI
	endFor  *scene.End
}

func NewGame(opts gameOptions) *Game {
	ctx, cancel := context.WithCancel(context.Background())

	loader := system.NewLoader(levels.LevelsFS, opts.Tuning, opts.Seed)
	loader.ScreenW, loader.ScreenH = common.BaseWidth, common.BaseHeight
	if opts.Sounds != nil {
		loader.Sounds = opts.Sounds
	}

	g := &Game{
		debug:   opts.Debug,
		cancel:  cancel,
		loader:  loader,
		manager: scene.NewManager(ctx, loader, opts.Store),
		poller:  input.NewPoller(opts.Bindings),
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.menuUI = newMainMenuUI(g)
	g.pauseUI = newPauseUI(g)

	if opts.Level != "" {
		g.manager.StartLevel(levelFileName(opts.Level))
	}

	if opts.Debug {
		if _, err := os.Stat("config"); err == nil {
			w, err := config.NewWatcher("config")
			if err != nil {
				log.Printf("game: config watcher: %v", err)
			} else {
				g.watcher = w
			}
		}
	}
	return g
}

// levelFileName accepts a level name with or without its extension.
func levelFileName(name string) string {
	name = filepath.Base(name)
	if !strings.HasSuffix(name, ".tmx") {
		name += ".tmx"
	}
	return name
}

// Close stops background work.
func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) currentWorld() *system.World {
	if lvl, ok := g.manager.Current().(*scene.Level); ok {
		return lvl.World
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	if g.manager.Quitting() {
		return ebiten.Termination
	}

	g.drainWatcher()
	if g.pendingTuning != nil {
		if cur := g.manager.Current(); cur == nil || cur.Kind() != scene.KindLoading {
			g.loader.Tuning = *g.pendingTuning
			g.pendingTuning = nil
			log.Printf("game: tuning applies from the next level load")
		}
	}

	in := g.poller.Poll()
	g.manager.Update(in, common.FrameTime)

	switch cur := g.manager.Current().(type) {
	case *scene.MainMenu:
		g.menuUI.Update()
	case *scene.Level:
		if cur.World.Paused() {
			g.pauseUI.Update()
		} else {
			strong, weak := cur.World.Camera.Rumble()
			g.poller.Rumble(strong, weak, rumbleFrame)
		}
	case *scene.End:
		if g.endFor != cur {
			g.endFor = cur
			g.endUI = newEndUI(g, cur)
		}
		g.endUI.Update()
	}
	return nil
}

// drainWatcher reloads edited config files without blocking.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(filepath.Base(path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: config watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch name {
	case config.TuningFile:
		t, err := config.LoadTuning()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.pendingTuning = &t
	case config.BindingsFile:
		b, err := config.LoadBindings(name)
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.poller.SetBindings(b)
		log.Printf("game: reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch cur := g.manager.Current().(type) {
	case *scene.MainMenu:
		screen.Fill(backgroundColor)
		g.menuUI.Draw(screen)
	case *scene.Loading:
		screen.Fill(backgroundColor)
		g.drawLoading(screen, cur)
	case *scene.Level:
		screen.Fill(backgroundColor)
		drawWorld(screen, cur.World)
		if g.debug {
			drawPhysicsDebug(screen, cur.World)
		}
		g.drawHUD(screen, cur.World)
		if cur.World.Paused() {
			g.pauseUI.Draw(screen)
		}
	case *scene.End:
		screen.Fill(backgroundColor)
		if g.endFor == cur {
			g.endUI.Draw(screen)
		}
	}
	drawFade(screen, g.manager.FadeAlpha())

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
