package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"clickchess/internal/board"
)

// timeline clocks a transient effect.
type timeline struct {
	start time.Time
	span  time.Duration
}

func startTimeline(span time.Duration) timeline {
	return timeline{start: time.Now(), span: span}
}

// progress is the elapsed fraction of the span, 1 or more once done.
func (tl timeline) progress() float64 {
	return time.Since(tl.start).Seconds() / tl.span.Seconds()
}

func (tl timeline) expired() bool {
	return time.Since(tl.start) >= tl.span
}

// fade is 1 in the middle of the span and ramps linearly over the
// first and last edge seconds.
func (tl timeline) fade(edge float64) float64 {
	elapsed := time.Since(tl.start).Seconds()
	total := tl.span.Seconds()
	switch {
	case elapsed < edge:
		return elapsed / edge
	case elapsed > total-edge:
		return (total - elapsed) / edge
	}
	return 1
}

func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	c.A = uint8(float64(c.A) * alpha)
	return c
}

// ToastKind selects the palette of a toast.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastWarning
	ToastError
	ToastSuccess
)

var toastPalettes = [...]struct{ bg, fg color.RGBA }{
	ToastInfo:    {color.RGBA{50, 100, 150, 220}, color.RGBA{255, 255, 255, 255}},
	ToastWarning: {color.RGBA{180, 140, 20, 220}, color.RGBA{40, 30, 0, 255}},
	ToastError:   {color.RGBA{180, 50, 50, 220}, color.RGBA{255, 255, 255, 255}},
	ToastSuccess: {color.RGBA{50, 150, 50, 220}, color.RGBA{255, 255, 255, 255}},
}

type toast struct {
	timeline
	message string
	kind    ToastKind
}

// ToastManager stacks short notifications over the board.
type ToastManager struct {
	toasts []toast
}

const maxToasts = 3

// Show queues a toast, dropping the oldest past the stack limit.
func (tm *ToastManager) Show(message string, kind ToastKind, span time.Duration) {
	tm.toasts = append(tm.toasts, toast{
		timeline: startTimeline(span),
		message:  message,
		kind:     kind,
	})
	if len(tm.toasts) > maxToasts {
		tm.toasts = tm.toasts[len(tm.toasts)-maxToasts:]
	}
}

// Update drops expired toasts.
func (tm *ToastManager) Update() {
	live := tm.toasts[:0]
	for _, t := range tm.toasts {
		if !t.expired() {
			live = append(live, t)
		}
	}
	tm.toasts = live
}

// Draw renders the live toasts top to bottom, centered over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := pxf(50)
	for _, t := range tm.toasts {
		alpha := t.fade(0.2)
		style := toastPalettes[t.kind]

		w, h := MeasureText(t.message, face)
		pad := pxf(12)
		boxW := w + 2*pad
		boxH := h + 2*pad
		x := (pxf(BoardSize) - boxW) / 2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), scaleAlpha(style.bg, alpha), false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+pad, y+pad)
		op.ColorScale.ScaleWithColor(scaleAlpha(style.fg, alpha))
		text.Draw(screen, t.message, face, op)

		y += boxH + pxf(8)
	}
}

// shakeFX wiggles the piece on a square after a rejected move.
type shakeFX struct {
	timeline
	square    board.Square
	intensity float64
}

// flashFX pulses a colored overlay on a square.
type flashFX struct {
	timeline
	square board.Square
	tint   color.RGBA
}

// AnimationManager tracks the board effects in flight.
type AnimationManager struct {
	shakes  []shakeFX
	flashes []flashFX
}

// StartShake wiggles sq for a third of a second.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, shakeFX{
		timeline:  startTimeline(300 * time.Millisecond),
		square:    sq,
		intensity: 8,
	})
}

// StartFlash pulses c over sq.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, flashFX{
		timeline: startTimeline(400 * time.Millisecond),
		square:   sq,
		tint:     c,
	})
}

// Update drops finished effects.
func (am *AnimationManager) Update() {
	shakes := am.shakes[:0]
	for _, s := range am.shakes {
		if !s.expired() {
			shakes = append(shakes, s)
		}
	}
	am.shakes = shakes

	flashes := am.flashes[:0]
	for _, f := range am.flashes {
		if !f.expired() {
			flashes = append(flashes, f)
		}
	}
	am.flashes = flashes
}

// GetShakeOffset reports the current displacement of sq in logical
// pixels, zero when the square is not shaking.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	for _, s := range am.shakes {
		if s.square != sq {
			continue
		}
		p := s.progress()
		if p >= 1 {
			break
		}
		// Damped oscillation.
		amp := s.intensity * math.Exp(-5*p)
		return amp * math.Sin(40*p), 0
	}
	return 0, 0
}

// DrawFlashes paints the live flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	for _, f := range am.flashes {
		p := f.progress()
		if p >= 1 {
			continue
		}
		x, y := renderer.SquareToScreen(f.square)
		size := px(renderer.SquareSize())
		vector.DrawFilledRect(screen, px(x), px(y), size, size, scaleAlpha(f.tint, 1-p), false)
	}
}

// FeedbackManager fans one game event out to toasts, animations and
// sound.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager wires up the three feedback channels.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     &ToastManager{},
		animations: &AnimationManager{},
		audio:      NewAudioManager(),
	}
}

// Update advances toast and animation lifetimes.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw paints flashes under the toasts.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen)
}

// Animations exposes the animation manager to the renderer.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Audio exposes the audio manager for the sound toggle.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// OnInvalidMove shakes the selected piece, flashes the refused target
// and buzzes.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Square) {
	fm.toasts.Show("Illegal move", ToastWarning, 2*time.Second)
	fm.animations.StartShake(from)
	fm.animations.StartFlash(to, color.RGBA{255, 80, 80, 150})
	fm.audio.Play(SoundInvalid)
}

// OnMoveMade clicks, or thuds on a capture.
func (fm *FeedbackManager) OnMoveMade(isCapture bool) {
	if isCapture {
		fm.audio.Play(SoundCapture)
	} else {
		fm.audio.Play(SoundMove)
	}
}

// OnGameOver announces the winner.
func (fm *FeedbackManager) OnGameOver(winner board.Color) {
	fm.toasts.Show(winner.String()+" wins!", ToastSuccess, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}
