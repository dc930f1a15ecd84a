package bramble

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionKind selects a scene transition effect.
type TransitionKind uint8

const (
	TransitionFadeOut TransitionKind = iota // fade to the transition color
	TransitionFadeIn                        // fade from the transition color
	TransitionSlide                         // slide the scene off horizontally
)

// Transition is a full-screen scene-change effect driven by a tween. The
// host starts one via Scene.StartTransition, swaps scenes in OnComplete,
// and typically starts a matching fade-in on the next scene.
type Transition struct {
	// Kind is the effect variant.
	Kind TransitionKind
	// Color is the cover color for fades. Defaults to black.
	Color Color

	// OnComplete fires once when the effect finishes.
	OnComplete func()

	tween *gween.Tween
	value float64
	done  bool
	fired bool
}

// NewTransition creates a transition of the given kind running for duration
// seconds.
func NewTransition(kind TransitionKind, duration float32, easeFn ease.TweenFunc) *Transition {
	return &Transition{
		Kind:  kind,
		Color: ColorBlack,
		tween: gween.New(0, 1, duration, easeFn),
	}
}

// Done reports whether the transition has finished.
func (t *Transition) Done() bool {
	return t.done
}

// Update advances the transition by dt seconds and fires OnComplete once
// when it finishes.
func (t *Transition) Update(dt float64) {
	if t.done {
		return
	}
	val, finished := t.tween.Update(float32(dt))
	t.value = float64(val)
	if finished {
		t.done = true
		if t.OnComplete != nil && !t.fired {
			t.fired = true
			t.OnComplete()
		}
	}
}

// Draw renders the transition cover over the screen.
func (t *Transition) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	var op ebiten.DrawImageOptions

	switch t.Kind {
	case TransitionFadeOut, TransitionFadeIn:
		alpha := t.value
		if t.Kind == TransitionFadeIn {
			alpha = 1 - t.value
		}
		if alpha <= 0 {
			return
		}
		op.GeoM.Scale(float64(w), float64(h))
		op.ColorScale.Scale(
			float32(t.Color.R), float32(t.Color.G), float32(t.Color.B), 1)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(WhitePixel, &op)
	case TransitionSlide:
		// Cover sweeps in from the left; the next scene draws beneath once
		// the host swaps in OnComplete.
		cover := t.value * float64(w)
		if cover <= 0 {
			return
		}
		op.GeoM.Scale(cover, float64(h))
		op.ColorScale.Scale(
			float32(t.Color.R), float32(t.Color.G), float32(t.Color.B), 1)
		screen.DrawImage(WhitePixel, &op)
	}
}
