package config

import (
	"fmt"

	"github.com/milk9111/gravshift/obj"
	"gopkg.in/yaml.v3"
)

// TuningFile is the default tuning file name.
const TuningFile = "tuning.yaml"

// LevelTuning holds values the level runtime needs beyond the objects.
type LevelTuning struct {
	KillDistance   float64 `yaml:"kill_distance"`
	DebrisHalfSize float64 `yaml:"debris_half_size"`
	CrateDensity   float64 `yaml:"crate_density"`
}

// Tuning is every gameplay number, grouped by object.
type Tuning struct {
	Physics obj.PhysicsConfig `yaml:"physics"`
	Gravity obj.GravityConfig `yaml:"gravity"`
	Player  obj.PlayerConfig  `yaml:"player"`
	Enemy   obj.EnemyConfig   `yaml:"enemy"`
	Bullet  obj.BulletConfig  `yaml:"bullet"`
	Pickup  obj.PickupConfig  `yaml:"pickup"`
	Door    obj.DoorConfig    `yaml:"door"`
	Camera  obj.CameraConfig  `yaml:"camera"`
	Level   LevelTuning       `yaml:"level"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Physics: obj.DefaultPhysicsConfig(),
		Gravity: obj.DefaultGravityConfig(),
		Player:  obj.DefaultPlayerConfig(),
		Enemy:   obj.DefaultEnemyConfig(),
		Bullet:  obj.DefaultBulletConfig(),
		Pickup:  obj.DefaultPickupConfig(),
		Door:    obj.DefaultDoorConfig(),
		Camera:  obj.DefaultCameraConfig(),
		Level: LevelTuning{
			KillDistance:   500,
			DebrisHalfSize: 0.6,
			CrateDensity:   1,
		},
	}
}

// ParseTuning overlays YAML onto the defaults, so a file only needs the
// values it changes.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads tuning.yaml.
func LoadTuning() (Tuning, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("config: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}
