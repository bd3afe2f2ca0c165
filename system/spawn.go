package system

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/common"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
)

// spawn creates every object described by data. Statics go first so the
// player and dynamics land on existing geometry; plates are linked to doors
// last.
func (w *World) spawn(data *levels.Data) error {
	for _, o := range data.Statics {
		w.spawnStatic(o)
	}

	if !data.HasSpawn {
		return fmt.Errorf("%w: %s", ErrNoPlayerSpawn, data.Name)
	}
	w.Player = obj.NewPlayer(w.Physics, w.Tuning.Player, cp.Vector{X: data.SpawnX, Y: data.SpawnY}, w.Gravity, w.Bullets, w.Camera, w.sounds)

	for _, o := range data.Dynamics {
		w.spawnDynamic(o)
	}
	w.linkPlates()
	return nil
}

func center(o levels.Object) cp.Vector {
	return cp.Vector{X: o.CenterX, Y: o.CenterY}
}

func (w *World) spawnStatic(o levels.Object) {
	def := obj.PropDef{
		Center:     center(o),
		HalfWidth:  o.HalfW,
		HalfHeight: o.HalfH,
		Angle:      common.DegToRad(o.Angle),
	}
	switch o.Type {
	case levels.TypeDoor:
		w.Doors = append(w.Doors, obj.NewDoor(w.Physics, w.Tuning.Door, o.ID, def.Center, o.HalfW, o.HalfH, def.Angle))
		return
	case levels.TypeNext:
		def.Kind = obj.PropNext
	case levels.TypeWin:
		def.Kind = obj.PropWin
	case levels.TypeLevel:
		def.Kind = obj.PropLevel
	default:
		log.Printf("system: %s: unknown static type %q, treating as level", w.Name, o.Type)
		def.Kind = obj.PropLevel
	}
	w.Statics = append(w.Statics, obj.NewProp(w.Physics, def, 0))
}

func (w *World) spawnDynamic(o levels.Object) {
	pos := center(o)
	angle := common.DegToRad(o.Angle)
	switch o.Type {
	case levels.TypeEnemy:
		e := obj.NewEnemy(w.Physics, w.Tuning.Enemy, w.Tuning.Pickup, pos, w.Bullets, w.rng, w.sounds)
		w.Enemies = append(w.Enemies, e)
		if p := e.Pickup(); p != nil {
			w.Dynamics = append(w.Dynamics, p)
		}
	case levels.TypePlate:
		pp := obj.NewPressurePlate(w.Physics, pos, o.HalfW, o.HalfH, angle, o.Threshold, o.DoorID, o.Fussy)
		w.Plates = append(w.Plates, pp)
	case levels.TypeCrate:
		w.Dynamics = append(w.Dynamics, obj.NewProp(w.Physics, obj.PropDef{
			Kind:       obj.PropCrate,
			Center:     pos,
			HalfWidth:  o.HalfW,
			HalfHeight: o.HalfH,
			Angle:      angle,
			Density:    w.Tuning.Level.CrateDensity,
		}, w.Tuning.Level.KillDistance))
	case levels.TypeDynamic:
		half := w.Tuning.Level.DebrisHalfSize
		w.Dynamics = append(w.Dynamics, obj.NewProp(w.Physics, obj.PropDef{
			Kind:       obj.PropDynamic,
			Center:     pos,
			HalfWidth:  half,
			HalfHeight: half,
			Angle:      angle,
			Density:    1,
		}, w.Tuning.Level.KillDistance))
	default:
		log.Printf("system: %s: unknown dynamic type %q, skipped", w.Name, o.Type)
	}
}

// linkPlates binds each plate to the door with its ID. A plate whose door
// is missing stays unlinked.
func (w *World) linkPlates() {
	for _, pp := range w.Plates {
		door := w.doorByID(pp.DoorID())
		if door == nil {
			log.Printf("system: %s: plate links to missing door %d", w.Name, pp.DoorID())
			continue
		}
		pp.OnActivate = door.Open
		pp.OnDeactivate = door.Close
	}
}

func (w *World) doorByID(id int) *obj.Door {
	for _, d := range w.Doors {
		if d.ID() == id {
			return d
		}
	}
	return nil
}
