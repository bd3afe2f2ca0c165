package component

// DamageEventType defines the kind of damage event.
type DamageEventType string

const (
	EventDamageApplied DamageEventType = "damage_applied"
	EventDeath         DamageEventType = "death"
	EventHealed        DamageEventType = "healed"
)

// DamageEvent is emitted when health changes because of combat.
type DamageEvent struct {
	Type   DamageEventType
	Source Tag
	Target Tag
	Amount int
	PosX   float64
	PosY   float64
}

// DamageEventHandler handles damage events.
type DamageEventHandler func(evt DamageEvent)

// DamageEventEmitter fans damage events out to handlers.
type DamageEventEmitter struct {
	Handlers []DamageEventHandler
}

// Subscribe adds a handler.
func (e *DamageEventEmitter) Subscribe(h DamageEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a damage event to all handlers.
func (e *DamageEventEmitter) Emit(evt DamageEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
