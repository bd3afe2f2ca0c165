package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names the loader understands.
const (
	GroupStatic      = "StaticLevelCollisions"
	GroupBackground  = "Background"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupDynamic     = "DynamicSpawns"
)

// Object type values.
const (
	TypeLevel   = "level"
	TypeNext    = "next"
	TypeWin     = "win"
	TypeDoor    = "door"
	TypeWall    = "wall"
	TypeWindow  = "window"
	TypeEnemy   = "enemy"
	TypePlate   = "plate"
	TypeCrate   = "crate"
	TypeDynamic = "other"
)

// Object is one placed box in world units. World y points up and the box is
// described by its centre. Angle is in degrees.
type Object struct {
	Type      string
	ID        int
	CenterX   float64
	CenterY   float64
	HalfW     float64
	HalfH     float64
	Angle     float64
	Threshold float64
	DoorID    int
	Fussy     bool
}

// Data is everything a level file contributes to a world.
type Data struct {
	Name       string
	Width      float64
	Height     float64
	Statics    []Object
	Background []Object
	Dynamics   []Object

	SpawnX   float64
	SpawnY   float64
	HasSpawn bool

	// GravityX and GravityY come from the map's gravity_x and gravity_y
	// properties. Both zero means the default downward start.
	GravityX float64
	GravityY float64
}

// Load parses a Tiled map from fsys.
func Load(fsys fs.FS, name string) (*Data, error) {
	if !Exists(fsys, name) {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
		}
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}

	data := &Data{
		Name:   name,
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if levelMap.Properties != nil {
		data.GravityX = levelMap.Properties.GetFloat("gravity_x")
		data.GravityY = levelMap.Properties.GetFloat("gravity_y")
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupStatic:
			for _, o := range og.Objects {
				data.Statics = append(data.Statics, toObject(o, TypeLevel))
			}
		case GroupBackground:
			for _, o := range og.Objects {
				data.Background = append(data.Background, toObject(o, TypeWall))
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.SpawnX = o.X
				data.SpawnY = -o.Y
				data.HasSpawn = true
			}
		case GroupDynamic:
			for _, o := range og.Objects {
				data.Dynamics = append(data.Dynamics, toObject(o, TypeDynamic))
			}
		}
	}
	return data, nil
}

// LoadEmbedded parses one of the levels shipped with the game.
func LoadEmbedded(name string) (*Data, error) {
	return Load(LevelsFS, name)
}

func toObject(o *tiled.Object, fallback string) Object {
	typ := strings.ToLower(strings.TrimSpace(o.Properties.GetString("type")))
	if typ == "" {
		typ = strings.ToLower(o.Class)
	}
	if typ == "" {
		typ = fallback
	}
	return Object{
		Type:      typ,
		ID:        o.Properties.GetInt("ID"),
		CenterX:   o.X + o.Width/2,
		CenterY:   -o.Y - o.Height/2,
		HalfW:     o.Width / 2,
		HalfH:     o.Height / 2,
		Angle:     o.Properties.GetFloat("angle"),
		Threshold: o.Properties.GetFloat("threshold"),
		DoorID:    o.Properties.GetInt("Door ID"),
		Fussy:     o.Properties.GetBool("fussy"),
	}
}
