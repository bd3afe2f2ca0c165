package system

import (
	"log"

	"github.com/milk9111/gravshift/component"
	"github.com/milk9111/gravshift/obj"
)

// wireCombat hooks the player's health to the camera: every hit shakes the
// view. Hits and heals are logged with their position.
func wireCombat(player *obj.Player, camera *obj.Camera) {
	if player == nil || player.Health() == nil {
		return
	}
	emitter := &component.DamageEventEmitter{}
	emitter.Subscribe(func(evt component.DamageEvent) {
		if evt.Type == component.EventDamageApplied && evt.Target == component.TagPlayer {
			camera.Shake()
		}
	})
	emitter.Subscribe(func(evt component.DamageEvent) {
		log.Printf("system: player %s: amount=%d pos=(%.2f, %.2f)", evt.Type, evt.Amount, evt.PosX, evt.PosY)
	})
	h := player.Health()
	h.OnDamage = func(hh *component.Health, evt component.DamageEvent) {
		emitter.Emit(evt)
	}
	h.OnDeath = func(hh *component.Health, evt component.DamageEvent) {
		emitter.Emit(evt)
	}
	h.OnHeal = func(hh *component.Health, amount int) {
		pos := player.Position()
		emitter.Emit(component.DamageEvent{
			Type:   component.EventHealed,
			Target: component.TagPlayer,
			Amount: amount,
			PosX:   pos.X,
			PosY:   pos.Y,
		})
	}
}
