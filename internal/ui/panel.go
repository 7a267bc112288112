package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"clickchess/internal/storage"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	SectionLabelH  = 20

	statusTextY = PanelPadding + 14
	movesTextY  = statusTextY + 26
	statRowH    = 22
)

// Panel colors
var (
	panelBg        = color.RGBA{38, 40, 45, 255}    // Dark background
	accentColor    = color.RGBA{76, 175, 120, 255}  // Green accent
	accentHover    = color.RGBA{96, 195, 140, 255}  // Lighter green on hover
	accentPressed  = color.RGBA{56, 155, 100, 255}  // Darker green on press
	textPrimary    = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary  = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted      = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor   = color.RGBA{60, 65, 72, 255}    // Divider line
	statusGameOver = color.RGBA{255, 200, 80, 255}  // Yellow for game over
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

// Panel represents the side panel with game status and controls.
type Panel struct {
	game *Game

	newGameBtn *Button
	themeRadio *RadioGroup
	soundCheck *Checkbox
	hintsCheck *Checkbox

	statsY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createWidgets()
	return p
}

// createWidgets initializes the panel controls from the current preferences.
func (p *Panel) createWidgets() {
	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	// New Game button (full width, prominent)
	newGameY := movesTextY + statRowH + SectionSpacing - 8
	p.newGameBtn = &Button{
		X: contentX, Y: newGameY,
		W: contentW, H: ButtonHeight,
		Label:   "New Game",
		OnClick: p.game.NewGameAction,
	}

	// Theme section: label + one radio option per theme
	themeY := newGameY + ButtonHeight + SectionSpacing + SectionLabelH
	names := ThemeNames()
	options := make([]RadioOption, 0, len(names))
	for _, name := range names {
		options = append(options, RadioOption{Label: titleCase(name), Value: name})
	}
	p.themeRadio = NewRadioGroup(contentX, themeY, contentW, options, 0)
	p.themeRadio.Select(p.game.prefs.Theme)

	// Options section: sound and move hints
	soundY := themeY + p.themeRadio.Height() + SectionSpacing - 8 + SectionLabelH
	p.soundCheck = NewCheckbox(contentX, soundY, contentW, "Sound effects", p.game.prefs.SoundEnabled)

	hintsY := soundY + 30
	p.hintsCheck = NewCheckbox(contentX, hintsY, contentW, "Show legal moves", p.game.prefs.ShowLegalMoves)

	p.statsY = hintsY + 30 + SectionSpacing
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	p.newGameBtn.hovered = p.isInside(mx, my, p.newGameBtn)
	p.newGameBtn.pressed = input.IsLeftPressed() && p.newGameBtn.hovered

	if input.IsLeftJustPressed() && p.newGameBtn.hovered {
		p.newGameBtn.OnClick()
		return true
	}

	if p.themeRadio.Update(input) {
		p.game.SetTheme(p.themeRadio.SelectedValue())
		return true
	}
	if p.soundCheck.Update(input) {
		p.game.SetSoundEnabled(p.soundCheck.Checked)
		return true
	}
	if p.hintsCheck.Update(input) {
		p.game.SetShowLegalMoves(p.hintsCheck.Checked)
		return true
	}

	// Swallow any other click that lands on the panel
	if input.IsLeftJustPressed() && mx >= BoardSize {
		return true
	}

	return false
}

// AnyButtonHovered returns true if any panel control is hovered.
func (p *Panel) AnyButtonHovered() bool {
	return p.newGameBtn.hovered ||
		p.themeRadio.hovered >= 0 ||
		p.soundCheck.hovered ||
		p.hintsCheck.hovered
}

func (p *Panel) isInside(mx, my int, btn *Button) bool {
	return mx >= btn.X && mx < btn.X+btn.W && my >= btn.Y && my < btn.Y+btn.H
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	// Panel background
	vector.DrawFilledRect(screen, px(BoardSize), 0, px(PanelWidth), px(ScreenHeight), panelBg, false)

	x := BoardSize + PanelPadding

	// Status: whose move it is, or the result once the game is over
	if p.game.Over() {
		p.drawTitle(screen, p.game.WinnerText(), x, statusTextY, statusGameOver)
	} else {
		p.drawTitle(screen, "Next move: "+p.game.TurnName(), x, statusTextY, textPrimary)
	}
	p.drawText(screen, fmt.Sprintf("Moves: %d", p.game.MoveCount()), x, movesTextY, textSecondary)

	p.drawPrimaryButton(screen, p.newGameBtn)

	p.drawSectionLabel(screen, "Board Theme", x, p.themeRadio.Y-SectionLabelH)
	p.themeRadio.Draw(screen)

	p.drawSectionLabel(screen, "Options", x, p.soundCheck.Y-SectionLabelH)
	p.soundCheck.Draw(screen)
	p.hintsCheck.Draw(screen)

	p.drawStats(screen)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.pressed {
		bgColor = accentPressed
	} else if btn.hovered {
		bgColor = accentHover
	}

	// Draw button background
	vector.DrawFilledRect(screen, px(btn.X), px(btn.Y), px(btn.W), px(btn.H), bgColor, false)

	// Draw border for depth
	borderC := color.RGBA{56, 155, 100, 255}
	if btn.hovered {
		borderC = color.RGBA{116, 215, 160, 255} // Lighter border on hover
	}
	vector.StrokeRect(screen, px(btn.X), px(btn.Y), px(btn.W), px(btn.H), px(1), borderC, false)

	// Draw label
	p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

func (p *Panel) drawStats(screen *ebiten.Image) {
	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2

	DrawDivider(screen, x, p.statsY-12, w)
	p.drawSectionLabel(screen, "Statistics", x, p.statsY)

	stats := p.game.Stats()
	y := p.statsY + SectionLabelH + 4

	p.drawStatRow(screen, "Games", fmt.Sprintf("%d", stats.GamesPlayed), y)
	y += statRowH

	whiteWins, blackWins := "-", "-"
	if stats.GamesPlayed > 0 {
		whiteWins = fmt.Sprintf("%d (%.0f%%)", stats.WhiteWins, stats.GetWinRate(storage.WinnerWhite))
		blackWins = fmt.Sprintf("%d (%.0f%%)", stats.BlackWins, stats.GetWinRate(storage.WinnerBlack))
	}
	p.drawStatRow(screen, "White wins", whiteWins, y)
	y += statRowH
	p.drawStatRow(screen, "Black wins", blackWins, y)
	y += statRowH

	longest := "-"
	if stats.LongestGame > 0 {
		longest = fmt.Sprintf("%d moves", stats.LongestGame)
	}
	p.drawStatRow(screen, "Longest game", longest, y)
}

func (p *Panel) drawStatRow(screen *ebiten.Image, label, value string, y int) {
	x := BoardSize + PanelPadding
	p.drawText(screen, label, x, y, textMuted)
	p.drawText(screen, value, x+110, y, textPrimary)
}

func (p *Panel) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	p.drawText(screen, label, x, y, textMuted)
}

// Text drawing helpers
func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px(x)), float64(px(y)))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (p *Panel) drawTitle(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetBoldFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px(x)), float64(px(y)))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (p *Panel) drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	x := float64(px(centerX)) - w/2
	y := float64(px(centerY)) - h/2
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
