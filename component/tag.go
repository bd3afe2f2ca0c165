package component

// Tag identifies the kind of an entity for collision dispatch.
type Tag int

const (
	TagNone Tag = iota
	TagPlayer
	TagEnemy
	TagBullet
	TagCrate
	TagPressurePlate
	TagPickup
	TagNextObject
	TagWinObject
	TagDoor
)

var tagNames = [...]string{
	TagNone:          "none",
	TagPlayer:        "player",
	TagEnemy:         "enemy",
	TagBullet:        "bullet",
	TagCrate:         "crate",
	TagPressurePlate: "pressure_plate",
	TagPickup:        "pickup",
	TagNextObject:    "next",
	TagWinObject:     "win",
	TagDoor:          "door",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[t]
}

// IsCombatant reports whether the tag is one a bullet can be aimed at.
func (t Tag) IsCombatant() bool {
	return t == TagPlayer || t == TagEnemy
}
