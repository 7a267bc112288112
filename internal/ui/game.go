// Package ui implements the interactive chessboard using Ebitengine.
package ui

import (
	"image/color"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"clickchess/internal/board"
	"clickchess/internal/config"
	"clickchess/internal/game"
	"clickchess/internal/logx"
	"clickchess/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 880
	ScreenHeight = 640 // Match board height to eliminate unused space
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by the panel and widgets.
var UIScale float64 = 1.0

// px converts logical UI coordinates to screen pixels.
func px(v int) float32 {
	return float32(float64(v) * UIScale)
}

// pxf converts a logical float value to screen pixels.
func pxf(v float64) float64 {
	return v * UIScale
}

// Game implements ebiten.Game interface. It translates mouse and keyboard
// input into session events and renders the session state every frame.
type Game struct {
	// Core game state
	session   *game.Session
	hover     board.Square
	lastMove  *board.Move
	moveCount int
	gameStart time.Time
	winner    board.Color
	recorded  bool

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   *storage.GameStats

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	// Visual effects
	glass *GlassEffect

	cfg config.Config

	// HiDPI scaling
	scale float64
}

// NewGame creates a new interactive chessboard.
func NewGame(cfg config.Config) *Game {
	g := &Game{
		session:  game.NewSession(),
		hover:    board.NoSquare,
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		cfg:      cfg,
		scale:    1.0,
	}

	// Initialize storage
	var err error
	if cfg.DataDir != "" {
		g.storage, err = storage.NewStorageAt(filepath.Join(cfg.DataDir, "db"))
	} else {
		g.storage, err = storage.NewStorage()
	}
	if err != nil {
		logx.L().Warn("failed to initialize storage, preferences will not persist", zap.Error(err))
		g.storage = nil
	}

	g.loadPreferences()
	g.loadStats()

	g.feedback = NewFeedbackManager()
	g.glass = NewGlassEffect()
	g.panel = NewPanel(g)

	g.applyPreferences()

	g.gameStart = time.Now()
	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
	} else {
		var err error
		g.prefs, err = g.storage.LoadPreferences()
		if err != nil {
			logx.L().Warn("failed to load preferences", zap.Error(err))
			g.prefs = storage.DefaultPreferences()
		}
	}

	// The environment theme wins over the stored one for this run.
	if g.cfg.Theme != "" {
		if HasTheme(g.cfg.Theme) {
			g.prefs.Theme = g.cfg.Theme
		} else {
			logx.L().Warn("unknown theme in CHESS_THEME, keeping stored theme",
				zap.String("theme", g.cfg.Theme))
		}
	}
}

// loadStats loads game statistics from storage.
func (g *Game) loadStats() {
	if g.storage == nil {
		g.stats = storage.NewGameStats()
		return
	}

	var err error
	g.stats, err = g.storage.LoadStats()
	if err != nil {
		logx.L().Warn("failed to load stats", zap.Error(err))
		g.stats = storage.NewGameStats()
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		logx.L().Warn("failed to save preferences", zap.Error(err))
	}
}

// applyPreferences pushes the loaded preferences into the components.
func (g *Game) applyPreferences() {
	g.renderer.SetTheme(ThemeByName(g.prefs.Theme))
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled && g.cfg.Sound)
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Update input
	g.input.Update()

	// Update feedback animations
	g.feedback.Update()

	// Update glass effect animation
	g.glass.Update()

	// N starts a fresh game at any time
	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
	}

	// Handle panel interactions
	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil // Panel handled the input
	}

	// Handle board interactions
	g.handleBoardInput()

	// Update cursor based on hover state
	g.updateCursor()

	return nil
}

// handleBoardInput translates this frame's mouse and keyboard input into
// session events and applies them.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	// Track the hovered square for the highlight layer
	if g.input.IsInBounds(0, 0, BoardSize, BoardSize) && !g.session.Over() {
		g.hover = g.renderer.ScreenToSquare(mx, my)
	} else {
		g.hover = board.NoSquare
	}

	var events []game.Event

	if g.input.ClickedInBounds(0, 0, BoardSize, BoardSize) {
		if sq := g.renderer.ScreenToSquare(mx, my); sq != board.NoSquare {
			events = append(events, game.ChooseSquare(sq))
		}
	}

	// Escape or a right click dismisses the current selection
	if sel := g.session.SelectedSquare(); sel != board.NoSquare {
		if IsKeyJustPressed(ebiten.KeyEscape) || g.input.IsRightJustPressed() {
			events = append(events, game.ClearSquare(sel))
		}
	}

	res := g.session.Tick(events)
	g.applyResult(res)
}

// applyResult reacts to what the session did this frame.
func (g *Game) applyResult(res game.Result) {
	if res.Rejected != nil {
		g.feedback.OnInvalidMove(res.Rejected.From, res.Rejected.To)
	}

	if res.Move != nil {
		g.lastMove = res.Move
		g.moveCount++
		g.feedback.OnMoveMade(len(res.Captured) > 0)
	}

	for _, pp := range res.Captured {
		g.feedback.Animations().StartFlash(pp.Square, color.RGBA{255, 170, 60, 150})
	}

	if res.GameOver {
		g.finishGame(res.Captured)
	}
}

// finishGame derives the winner from the captured king and records the game.
func (g *Game) finishGame(captured []board.PlacedPiece) {
	for _, pp := range captured {
		if pp.Piece.Type() == board.King {
			g.winner = pp.Piece.Color().Other()
		}
	}

	g.feedback.OnGameOver(g.winner)
	g.recordGame()
}

// recordGame writes the finished game into the statistics, once.
func (g *Game) recordGame() {
	if g.recorded {
		return
	}
	g.recorded = true

	if g.storage == nil {
		return
	}

	w := storage.WinnerWhite
	if g.winner == board.Black {
		w = storage.WinnerBlack
	}
	result := storage.GameResult{
		Winner:   w,
		Moves:    g.moveCount,
		Duration: time.Since(g.gameStart),
	}
	if err := g.storage.RecordGame(result); err != nil {
		logx.L().Warn("failed to record game", zap.Error(err))
		return
	}

	logx.L().Info("game recorded",
		zap.String("winner", w.String()),
		zap.Int("moves", g.moveCount))

	// Refresh the cached stats for the panel
	g.loadStats()
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	// Set HiDPI scale factor for all rendering components
	g.renderer.SetScale(g.scale)

	// Clear background
	screen.Fill(g.renderer.Theme().Background)

	// Draw board
	g.renderer.DrawBoard(screen)

	// Draw highlights (last move, hover, selection, legal moves)
	var targets []board.Square
	if g.prefs.ShowLegalMoves {
		targets = g.session.LegalTargets()
	}
	g.renderer.DrawHighlights(screen, g.hover, g.session.SelectedSquare(), targets, g.lastMove)

	// Draw pieces with shake animations
	g.renderer.DrawPieces(screen, g.session.Pieces(), g.feedback.Animations())

	// Draw feedback overlays (animations, toasts)
	g.feedback.Draw(screen, g.renderer)

	// Draw panel
	g.panel.Draw(screen)

	// Draw the winner banner on top
	if g.session.Over() {
		g.drawGameOverBanner(screen)
	}
}

// drawGameOverBanner draws a frosted glass banner over the board center.
func (g *Game) drawGameOverBanner(screen *ebiten.Image) {
	bannerW, bannerH := 360, 140
	x := (BoardSize - bannerW) / 2
	y := (BoardSize - bannerH) / 2

	g.glass.DrawGlass(screen, int(px(x)), int(px(y)), int(px(bannerW)), int(px(bannerH)),
		color.RGBA{30, 33, 39, 150}, 2.5, 3.0)
	vector.StrokeRect(screen, px(x), px(y), px(bannerW), px(bannerH), px(1), dividerColor, false)

	title := g.WinnerText()
	titleFace := GetBoldFaceWithSize(26 * UIScale)
	if titleFace == nil {
		return
	}
	w, h := MeasureText(title, titleFace)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px(x+bannerW/2))-w/2, float64(px(y+52))-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, titleFace, op)

	sub := "Press N for a new game"
	subFace := GetRegularFace()
	w, h = MeasureText(sub, subFace)
	op = &text.DrawOptions{}
	op.GeoM.Translate(float64(px(x+bannerW/2))-w/2, float64(px(y+94))-h/2)
	op.ColorScale.ScaleWithColor(textSecondary)
	text.Draw(screen, sub, subFace, op)
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0 // Ensure minimum scale of 1.0
	}

	// Update global scale for the panel and widgets
	UIScale = g.scale

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// NewGameAction resets the session to the starting position.
func (g *Game) NewGameAction() {
	g.session = game.NewSession()
	g.hover = board.NoSquare
	g.lastMove = nil
	g.moveCount = 0
	g.winner = board.White
	g.recorded = false
	g.gameStart = time.Now()
}

// SetTheme switches the board theme and persists the choice.
func (g *Game) SetTheme(name string) {
	g.prefs.Theme = name
	g.renderer.SetTheme(ThemeByName(name))
	g.savePreferences()
}

// SetSoundEnabled toggles sound effects and persists the choice.
func (g *Game) SetSoundEnabled(enabled bool) {
	g.prefs.SoundEnabled = enabled
	g.feedback.Audio().SetEnabled(enabled && g.cfg.Sound)
	g.savePreferences()
}

// SetShowLegalMoves toggles the legal move indicators and persists the choice.
func (g *Game) SetShowLegalMoves(show bool) {
	g.prefs.ShowLegalMoves = show
	g.savePreferences()
}

// Over returns true if the game is over.
func (g *Game) Over() bool {
	return g.session.Over()
}

// TurnName returns the name of the side to move.
func (g *Game) TurnName() string {
	return g.session.Turn().String()
}

// WinnerText returns the result line shown when the game is over.
func (g *Game) WinnerText() string {
	return g.winner.String() + " wins!"
}

// MoveCount returns the number of moves played this game.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// Stats returns the cached game statistics.
func (g *Game) Stats() *storage.GameStats {
	return g.stats
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			logx.L().Warn("failed to close storage", zap.Error(err))
		}
	}
}
