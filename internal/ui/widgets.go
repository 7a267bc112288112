package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget palette. Accent and text colors come from panel.go.
var (
	widgetBg        = color.RGBA{48, 52, 58, 255}
	widgetBorder    = color.RGBA{68, 72, 78, 255}
	widgetHoverBg   = color.RGBA{65, 70, 78, 255}
	hoverRowBg      = color.RGBA{55, 60, 68, 255}
	radioActive     = color.RGBA{76, 175, 120, 255}
	radioInactive   = color.RGBA{70, 75, 82, 255}
	checkboxCheck   = color.RGBA{76, 175, 120, 255}
	widgetTextLight = color.RGBA{240, 240, 245, 255}
)

// hitRow reports whether the logical point mx,my lies in the row
// anchored at x,y.
func hitRow(mx, my, x, y, w, h int) bool {
	return mx >= x && mx < x+w && my >= y && my < y+h
}

// drawWidgetLabel draws label vertically centered on centerY.
func drawWidgetLabel(screen *ebiten.Image, face *text.GoTextFace, label string, x, centerY int, c color.RGBA) {
	op := &text.DrawOptions{}
	_, h := MeasureText(label, face)
	op.GeoM.Translate(float64(px(x)), float64(px(centerY))-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, label, face, op)
}

// RadioOption is one labeled choice in a RadioGroup.
type RadioOption struct {
	Label string
	Value string
}

// RadioGroup renders a column of mutually exclusive options.
type RadioGroup struct {
	X, Y     int
	W        int
	Options  []RadioOption
	Selected int
	ItemH    int
	hovered  int
}

// NewRadioGroup builds a group at x,y spanning w logical pixels.
func NewRadioGroup(x, y, w int, options []RadioOption, selected int) *RadioGroup {
	return &RadioGroup{
		X: x, Y: y, W: w,
		Options:  options,
		Selected: selected,
		ItemH:    30,
		hovered:  -1,
	}
}

// Update tracks hover and clicks. It reports whether the selection
// changed this frame.
func (rg *RadioGroup) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	rg.hovered = -1
	for i := range rg.Options {
		if !hitRow(mx, my, rg.X, rg.Y+i*rg.ItemH, rg.W, rg.ItemH) {
			continue
		}
		rg.hovered = i
		if input.IsLeftJustPressed() && rg.Selected != i {
			rg.Selected = i
			return true
		}
	}
	return false
}

// SelectedValue is the value of the current selection, "" when the
// selection is out of range.
func (rg *RadioGroup) SelectedValue() string {
	if rg.Selected < 0 || rg.Selected >= len(rg.Options) {
		return ""
	}
	return rg.Options[rg.Selected].Value
}

// Select moves the selection to the option carrying value.
func (rg *RadioGroup) Select(value string) {
	for i, opt := range rg.Options {
		if opt.Value == value {
			rg.Selected = i
			return
		}
	}
}

// Height is the stacked height of all options in logical pixels.
func (rg *RadioGroup) Height() int {
	return len(rg.Options) * rg.ItemH
}

// Draw renders every option row.
func (rg *RadioGroup) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	for i := range rg.Options {
		rg.drawOption(screen, face, i)
	}
}

func (rg *RadioGroup) drawOption(screen *ebiten.Image, face *text.GoTextFace, i int) {
	rowY := rg.Y + i*rg.ItemH
	selected := i == rg.Selected
	hovered := i == rg.hovered

	if hovered && !selected {
		vector.DrawFilledRect(screen, px(rg.X-4), px(rowY), px(rg.W), px(rg.ItemH), hoverRowBg, false)
	}

	cx := px(rg.X + 10)
	cy := px(rowY) + px(rg.ItemH)/2
	ring := radioInactive
	switch {
	case selected:
		ring = radioActive
	case hovered:
		ring = accentColor
	}
	vector.DrawFilledCircle(screen, cx, cy, px(8), ring, false)
	if selected {
		vector.DrawFilledCircle(screen, cx, cy, px(8)-px(4), widgetTextLight, false)
	}

	label := textSecondary
	switch {
	case selected:
		label = textPrimary
	case hovered:
		label = widgetTextLight
	}
	drawWidgetLabel(screen, face, rg.Options[i].Label, rg.X+30, rowY+rg.ItemH/2, label)
}

// Checkbox toggles one boolean setting.
type Checkbox struct {
	X, Y    int
	W       int
	Label   string
	Checked bool
	hovered bool
}

// checkboxHitH is the clickable height of a checkbox row.
const checkboxHitH = 24

// NewCheckbox builds a checkbox at x,y spanning w logical pixels.
func NewCheckbox(x, y, w int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, W: w, Label: label, Checked: checked}
}

// Update tracks hover and clicks. It reports whether the box toggled
// this frame.
func (cb *Checkbox) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	cb.hovered = hitRow(mx, my, cb.X, cb.Y, cb.W, checkboxHitH)
	if cb.hovered && input.IsLeftJustPressed() {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the box, its checkmark and the label.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	x, y := px(cb.X), px(cb.Y)
	box := px(20)

	fill := widgetBg
	if cb.hovered {
		fill = widgetHoverBg
	}
	vector.DrawFilledRect(screen, x, y, box, box, fill, false)

	edge := widgetBorder
	switch {
	case cb.hovered:
		edge = accentColor
	case cb.Checked:
		edge = checkboxCheck
	}
	vector.StrokeRect(screen, x, y, box, box, px(2), edge, false)

	if cb.Checked {
		vector.StrokeLine(screen, x+px(4), y+px(10), x+px(8), y+px(14), px(2), checkboxCheck, false)
		vector.StrokeLine(screen, x+px(8), y+px(14), x+px(16), y+px(6), px(2), checkboxCheck, false)
	}

	label := textSecondary
	switch {
	case cb.Checked:
		label = textPrimary
	case cb.hovered:
		label = widgetTextLight
	}
	drawWidgetLabel(screen, face, cb.Label, cb.X+30, cb.Y+10, label)
}

// DrawDivider draws a 1px horizontal rule.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, px(x), px(y), px(w), px(1), dividerColor, false)
}
