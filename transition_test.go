package bramble

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionCompletes(t *testing.T) {
	tr := NewTransition(TransitionFadeOut, 0.5, ease.Linear)

	fired := 0
	tr.OnComplete = func() { fired++ }

	if tr.Done() {
		t.Fatal("fresh transition already done")
	}
	for i := 0; i < 60; i++ { // one second, twice the duration
		tr.Update(tick)
	}
	if !tr.Done() {
		t.Error("transition not done after its duration")
	}
	if fired != 1 {
		t.Errorf("OnComplete fired %d times, want 1", fired)
	}

	// Updating a finished transition is a no-op.
	tr.Update(tick)
	if fired != 1 {
		t.Errorf("OnComplete re-fired after completion: %d", fired)
	}
}

func TestTransitionProgress(t *testing.T) {
	tr := NewTransition(TransitionFadeIn, 1.0, ease.Linear)
	for i := 0; i < 30; i++ {
		tr.Update(tick)
	}
	if tr.Done() {
		t.Error("transition done at half time")
	}
	assertNearWithin(t, "half-time value", tr.value, 0.5, 0.02)
}
