package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// RaycastResult is the closest hit along a segment. Fraction is 1 when
// nothing was hit.
type RaycastResult struct {
	Shape    *cp.Shape
	Owner    Entity
	Fraction float64
	Point    cp.Vector
}

// Hit reports whether the ray struck anything.
func (r RaycastResult) Hit() bool {
	return r.Shape != nil
}

// RayCast returns the closest shape between start and end for which ignore
// returns false. The space is locked for the duration of the query, so any
// destroy requested from ignore is deferred.
func (pw *PhysicsWorld) RayCast(start, end cp.Vector, ignore func(shape *cp.Shape) bool) RaycastResult {
	res := RaycastResult{Fraction: 1, Point: end}
	if pw == nil {
		return res
	}
	pw.locked++
	pw.space.SegmentQuery(start, end, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		if ignore != nil && ignore(shape) {
			return
		}
		if res.Shape != nil && alpha >= res.Fraction {
			return
		}
		res.Shape = shape
		res.Fraction = alpha
		res.Point = point
	}, nil)
	pw.locked--
	if pw.locked == 0 && !pw.stepping {
		pw.flushPending()
	}
	res.Owner = ownerOf(res.Shape)
	return res
}

// Perception is what an observer learned from one look at its target.
type Perception struct {
	Ray     RaycastResult
	InRange bool
}

// Perceive casts from the observer's body toward target, clipped to
// maxRange. The observer's own shape, sensors, disabled shapes and bullets
// do not block sight. The target is in range only when it is the closest
// hit.
func Perceive(world *PhysicsWorld, self *PhysicsBody, target cp.Vector, maxRange float64, want component.Tag) Perception {
	if world == nil || self == nil || maxRange <= 0 {
		return Perception{Ray: RaycastResult{Fraction: 1}}
	}
	origin := self.Position()
	delta := target.Sub(origin)
	if delta.LengthSq() == 0 {
		return Perception{Ray: RaycastResult{Fraction: 1, Point: origin}}
	}
	end := origin.Add(delta.Normalize().Mult(maxRange))
	ray := world.RayCast(origin, end, func(shape *cp.Shape) bool {
		if shape == self.shape || shape.Sensor() {
			return true
		}
		pb, ok := shape.UserData.(*PhysicsBody)
		if ok && pb != nil {
			if !pb.enabled {
				return true
			}
			if pb.owner != nil && pb.owner.Tag() == component.TagBullet {
				return true
			}
		}
		return false
	})
	inRange := ray.Owner != nil && ray.Owner.Tag() == want && ray.Fraction <= 1
	return Perception{Ray: ray, InRange: inRange}
}
