package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// GunConfig tunes a gun. A zero MagazineSize means unlimited ammo.
type GunConfig struct {
	Damage       int     `yaml:"damage"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	FireInterval float64 `yaml:"fire_interval"`
	MagazineSize int     `yaml:"magazine_size"`
	MaxReserve   int     `yaml:"max_reserve"`
	ReloadTime   float64 `yaml:"reload_time"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
}

func DefaultPlayerGunConfig() GunConfig {
	return GunConfig{
		Damage:       5,
		BulletSpeed:  20,
		FireInterval: 0.25,
		MagazineSize: 6,
		MaxReserve:   30,
		ReloadTime:   1.5,
		MuzzleOffset: 0.8,
	}
}

func DefaultEnemyGunConfig() GunConfig {
	return GunConfig{
		Damage:       1,
		BulletSpeed:  12,
		FireInterval: 1,
		MuzzleOffset: 1.4,
	}
}

// Gun fires bullets through a BulletManager, gated by a cooldown and ammo.
type Gun struct {
	cfg       GunConfig
	bullets   *BulletManager
	cooldown  *component.Cooldown
	reload    *component.Cooldown
	loaded    int
	reserve   int
	reloading bool
	infinite  bool
}

// NewGun creates a gun with a full magazine and a full reserve.
func NewGun(cfg GunConfig, bullets *BulletManager) *Gun {
	return &Gun{
		cfg:      cfg,
		bullets:  bullets,
		cooldown: component.NewCooldown(cfg.FireInterval),
		reload:   component.NewCooldown(cfg.ReloadTime),
		loaded:   cfg.MagazineSize,
		reserve:  cfg.MaxReserve,
		infinite: cfg.MagazineSize <= 0,
	}
}

// Update ticks the fire cooldown and finishes a pending reload.
func (g *Gun) Update(dt float64) {
	if g == nil {
		return
	}
	g.cooldown.Tick(dt)
	if !g.reloading {
		return
	}
	g.reload.Tick(dt)
	if g.reload.Ready() {
		g.finishReload()
	}
}

// Fire shoots along direction from origin, offset by the muzzle distance.
// It returns nil when the gun is cooling down, reloading or empty.
func (g *Gun) Fire(origin, direction cp.Vector, target component.Tag) *Bullet {
	if g == nil || g.bullets == nil || g.reloading || !g.cooldown.Ready() {
		return nil
	}
	if direction.LengthSq() == 0 {
		return nil
	}
	if !g.infinite && g.loaded <= 0 {
		g.Reload()
		return nil
	}
	dir := direction.Normalize()
	b := g.bullets.Fire(dir, origin.Add(dir.Mult(g.cfg.MuzzleOffset)), g.cfg.Damage, target, g.cfg.BulletSpeed)
	if b == nil {
		return nil
	}
	g.cooldown.Trigger()
	if !g.infinite {
		g.loaded--
	}
	return b
}

// Reload starts refilling the magazine from the reserve.
func (g *Gun) Reload() bool {
	if g == nil || g.infinite || g.reloading {
		return false
	}
	if g.loaded >= g.cfg.MagazineSize || g.reserve <= 0 {
		return false
	}
	g.reloading = true
	g.reload.Trigger()
	if g.reload.Ready() {
		g.finishReload()
	}
	return true
}

func (g *Gun) finishReload() {
	g.reloading = false
	need := g.cfg.MagazineSize - g.loaded
	if need > g.reserve {
		need = g.reserve
	}
	g.loaded += need
	g.reserve -= need
}

// RefillReserve tops the reserve up to its maximum.
func (g *Gun) RefillReserve() bool {
	if g == nil || g.infinite || g.reserve >= g.cfg.MaxReserve {
		return false
	}
	g.reserve = g.cfg.MaxReserve
	return true
}

func (g *Gun) Loaded() int {
	if g == nil {
		return 0
	}
	return g.loaded
}

func (g *Gun) Reserve() int {
	if g == nil {
		return 0
	}
	return g.reserve
}

func (g *Gun) Reloading() bool {
	return g != nil && g.reloading
}

func (g *Gun) Infinite() bool {
	return g != nil && g.infinite
}
