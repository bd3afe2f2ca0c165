package scene

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/gravshift/component"
	"github.com/milk9111/gravshift/config"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
	"github.com/milk9111/gravshift/system"
)

const sceneMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="1" tileheight="1" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="StaticLevelCollisions">
  <object id="1" x="0" y="8" width="20" height="2">
   <properties>
    <property name="type" value="level"/>
   </properties>
  </object>
  <object id="2" x="15" y="5" width="2" height="3">
   <properties>
    <property name="type" value="next"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="4" y="6"/>
 </objectgroup>
</map>
`

type memItems struct {
	data map[string][]byte
}

func (m *memItems) LoadItem(key string) ([]byte, error) { return m.data[key], nil }
func (m *memItems) SaveItem(key string, data []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = data
	return nil
}

func newTestManager(t *testing.T, items *memItems) *Manager {
	t.Helper()
	fsys := fstest.MapFS{
		"lvl_1.tmx": {Data: []byte(sceneMap)},
		"lvl_2.tmx": {Data: []byte(sceneMap)},
	}
	loader := system.NewLoader(fsys, config.DefaultTuning(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m := NewManager(ctx, loader, system.NewProgressStore(items))
	m.Update(obj.Input{}, frame)
	return m
}

const frame = 1.0 / 60.0

func pressed(a obj.Action) obj.Input {
	var in obj.Input
	in.SetPressed(a)
	return in
}

// runUntil updates the manager until the current scene has kind k.
func runUntil(t *testing.T, m *Manager, k Kind) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cur := m.Current(); cur != nil && cur.Kind() == k && m.Pending() == 0 {
			return
		}
		m.Update(obj.Input{}, frame)
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("never reached %s, at %s", k, m.Current().Kind())
}

func TestManagerStartsAtMainMenu(t *testing.T) {
	m := newTestManager(t, &memItems{})
	if m.Current().Kind() != KindMainMenu {
		t.Fatalf("current = %s, want main menu", m.Current().Kind())
	}
	if m.Pending() != 0 {
		t.Fatalf("pending = %d", m.Pending())
	}
}

func TestManagerSwitchesOneScenePerUpdate(t *testing.T) {
	m := newTestManager(t, &memItems{})
	m.Push(NewEnd(obj.EndLose, false, "lvl_1.tmx"))
	m.Push(NewMainMenu())

	m.Update(obj.Input{}, frame)
	if m.Current().Kind() != KindEnd || m.Pending() != 1 {
		t.Fatalf("after one update: %s, pending %d", m.Current().Kind(), m.Pending())
	}
	m.Update(obj.Input{}, frame)
	if m.Current().Kind() != KindMainMenu || m.Pending() != 0 {
		t.Fatalf("after two updates: %s, pending %d", m.Current().Kind(), m.Pending())
	}
}

func TestMainMenuQuit(t *testing.T) {
	m := newTestManager(t, &memItems{})
	m.Update(pressed(obj.ActionQuit), frame)
	if !m.Quitting() {
		t.Fatalf("expected quitting")
	}
}

func TestMainMenuStartsLevel(t *testing.T) {
	m := newTestManager(t, &memItems{})
	m.Update(pressed(obj.ActionInteract), frame)
	if m.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", m.Pending())
	}

	m.Update(obj.Input{}, frame)
	loading, ok := m.Current().(*Loading)
	if !ok || loading.Name != levels.FirstLevel {
		t.Fatalf("current = %#v, want loading %s", m.Current(), levels.FirstLevel)
	}

	runUntil(t, m, KindLevel)
	lvl := m.Current().(*Level)
	if lvl.World == nil || lvl.World.Name != levels.FirstLevel {
		t.Fatalf("level world = %+v", lvl.World)
	}
}

func TestLoadErrorReturnsToMenu(t *testing.T) {
	m := newTestManager(t, &memItems{})
	m.StartLevel("lvl_9.tmx")
	m.Update(obj.Input{}, frame)

	deadline := time.Now().Add(5 * time.Second)
	loading := m.Current().(*Loading)
	for loading.Err == nil && time.Now().Before(deadline) {
		m.Update(obj.Input{}, 0)
		time.Sleep(time.Millisecond)
	}
	if loading.Err == nil {
		t.Fatalf("load never failed")
	}

	m.Update(obj.Input{}, errorHold/2)
	if m.Current().Kind() != KindLoading || m.Pending() != 0 {
		t.Fatalf("left the error screen early")
	}
	m.Update(obj.Input{}, errorHold)
	runUntil(t, m, KindMainMenu)
}

func TestLevelLoseAndRestart(t *testing.T) {
	m := newTestManager(t, &memItems{})
	m.StartLevel("lvl_2.tmx")
	runUntil(t, m, KindLevel)

	lvl := m.Current().(*Level)
	lvl.World.Player.Health().ApplyDamage(100, component.DamageEvent{})
	runUntil(t, m, KindEnd)

	end := m.Current().(*End)
	if end.State != obj.EndLose || end.Level != "lvl_2.tmx" {
		t.Fatalf("end = %+v", end)
	}

	m.Update(pressed(obj.ActionInteract), frame)
	m.Update(obj.Input{}, frame)
	loading, ok := m.Current().(*Loading)
	if !ok || loading.Name != "lvl_2.tmx" {
		t.Fatalf("restart loaded %#v", m.Current())
	}
}

func TestLevelWinAdvancesAndSaves(t *testing.T) {
	items := &memItems{}
	m := newTestManager(t, items)
	m.StartLevel("lvl_1.tmx")
	runUntil(t, m, KindLevel)

	w := m.Current().(*Level).World
	for _, s := range w.Statics {
		if s.Tag() == component.TagNextObject {
			w.Player.BeginCollision(s)
		}
	}
	m.Update(pressed(obj.ActionInteract), frame)
	if m.Pending() != 1 {
		t.Fatalf("pending = %d, want the next level queued", m.Pending())
	}
	m.Update(obj.Input{}, frame)
	loading, ok := m.Current().(*Loading)
	if !ok || loading.Name != "lvl_2.tmx" {
		t.Fatalf("current = %#v, want loading lvl_2.tmx", m.Current())
	}

	if got := m.Progress(); got.Last != "lvl_1.tmx" {
		t.Fatalf("progress = %+v", got)
	}
	saved, err := system.NewProgressStore(items).Load()
	if err != nil || saved.Last != "lvl_1.tmx" {
		t.Fatalf("saved = %+v, %v", saved, err)
	}
}

func TestLevelQuitGoesToMenu(t *testing.T) {
	m := newTestManager(t, &memItems{})
	m.StartLevel("lvl_1.tmx")
	runUntil(t, m, KindLevel)

	m.Update(pressed(obj.ActionQuit), frame)
	m.Update(obj.Input{}, frame)
	if m.Current().Kind() != KindMainMenu {
		t.Fatalf("current = %s, want main menu", m.Current().Kind())
	}
}

func TestContinueLevel(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"fresh", "", levels.FirstLevel},
		{"next exists", "lvl_1.tmx", "lvl_2.tmx"},
		{"finished all", "lvl_2.tmx", levels.FirstLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t, &memItems{})
			m.progress.Last = tt.last
			if got := m.ContinueLevel(); got != tt.want {
				t.Fatalf("continue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	m.Update(obj.Input{}, 1)
	m.Push(NewMainMenu())
	m.Quit()
	if m.Current() != nil || m.Pending() != 0 || m.Quitting() {
		t.Fatalf("nil manager should be inert")
	}
	if m.ContinueLevel() != levels.FirstLevel {
		t.Fatalf("nil manager should continue from the first level")
	}
}

func TestFadeAfterSwitch(t *testing.T) {
	m := newTestManager(t, &memItems{})
	if got := m.FadeAlpha(); got != 1 {
		t.Fatalf("alpha right after switch = %v, want 1", got)
	}
	for range fadeFrames / 2 {
		m.Update(obj.Input{}, frame)
	}
	if got := m.FadeAlpha(); got <= 0 || got >= 1 {
		t.Fatalf("alpha midway = %v", got)
	}
	for range fadeFrames {
		m.Update(obj.Input{}, frame)
	}
	if got := m.FadeAlpha(); got != 0 {
		t.Fatalf("alpha after fade = %v, want 0", got)
	}

	m.Push(NewMainMenu())
	m.Update(obj.Input{}, frame)
	if got := m.FadeAlpha(); got != 1 {
		t.Fatalf("alpha after second switch = %v, want 1", got)
	}
}

func TestFadeDisabled(t *testing.T) {
	f := NewFade(0)
	f.Start()
	if f.Active || f.Alpha() != 0 {
		t.Fatalf("zero duration fade should stay off")
	}
	var nilFade *Fade
	nilFade.Update()
	if nilFade.Alpha() != 0 {
		t.Fatalf("nil fade alpha should be 0")
	}
}
