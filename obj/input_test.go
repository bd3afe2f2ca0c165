package obj

import (
	"errors"
	"testing"
)

func TestParseActionRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Fatalf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if got, err := ParseAction("  Gravity_Lock "); err != nil || got != ActionGravityLock {
		t.Fatalf("case and space should be ignored, got %v, %v", got, err)
	}
	if _, err := ParseAction("dash"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestInputEdges(t *testing.T) {
	in := Press(ActionJump)
	if !in.Pressed(ActionJump) || !in.Held(ActionJump) {
		t.Fatalf("a press is also held")
	}
	in.SetReleased(ActionJump)
	if in.Held(ActionJump) || !in.Released(ActionJump) {
		t.Fatalf("release should clear held")
	}

	h := Hold(ActionMoveLeft, ActionFire)
	if h.Pressed(ActionFire) || !h.Held(ActionFire) || !h.Held(ActionMoveLeft) {
		t.Fatalf("hold should not press")
	}
	if (Input{}).Empty() != true || h.Empty() {
		t.Fatalf("Empty misreports")
	}
}
