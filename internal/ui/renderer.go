package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"clickchess/internal/board"
)

// Renderer draws the board, overlays and pieces. All public inputs are
// in logical pixels; the HiDPI scale is applied internally.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	scale      float64
}

// NewRenderer builds a renderer for a boardSize-pixel board split into
// squareSize-pixel squares.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1,
	}
}

// SetScale sets the HiDPI factor.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetTheme switches the color scheme.
func (r *Renderer) SetTheme(t *Theme) {
	if t != nil {
		r.theme = t
	}
}

// Theme is the active color scheme.
func (r *Renderer) Theme() *Theme { return r.theme }

// SquareSize is the edge of one square in logical pixels.
func (r *Renderer) SquareSize() int { return r.squareSize }

// s scales a logical length to screen pixels.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// squareRect locates sq on screen: scaled origin and edge length.
func (r *Renderer) squareRect(sq board.Square) (x, y, edge float32) {
	lx, ly := r.SquareToScreen(sq)
	return r.s(lx), r.s(ly), r.s(r.squareSize)
}

// DrawBoard paints the checkered squares and the coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for sq := board.A1; sq <= board.H8; sq++ {
		c := r.theme.LightSquare
		if (sq.Rank()+sq.File())%2 == 0 {
			c = r.theme.DarkSquare
		}
		x, y, edge := r.squareRect(sq)
		vector.DrawFilledRect(screen, x, y, edge, edge, c, false)
	}
	r.drawCoordinates(screen)
}

// drawCoordinates labels the files along the bottom edge and the ranks
// along the left edge, tinted with the opposite square color so they
// stay readable.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(11 * r.scale)
	if face == nil {
		return
	}

	const pad = 3
	for i := 0; i < 8; i++ {
		tint := r.theme.DarkSquare
		if i%2 == 0 {
			tint = r.theme.LightSquare
		}

		file := string(rune('a' + i))
		fw, fh := MeasureText(file, face)
		r.drawLabel(screen, file, face,
			float64(r.s((i+1)*r.squareSize-pad))-fw,
			float64(r.s(r.boardSize-pad))-fh,
			tint)

		rank := string(rune('1' + i))
		r.drawLabel(screen, rank, face,
			float64(r.s(pad)),
			float64(r.s((7-i)*r.squareSize+pad)),
			tint)
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawHighlights layers the last move, hover and selection overlays,
// then the legal target dots.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, hover, selected board.Square, legalTargets []board.Square, lastMove *board.Move) {
	if lastMove != nil {
		r.fillSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.fillSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}
	if hover != board.NoSquare && hover != selected {
		r.fillSquare(screen, hover, r.theme.HoverSquare)
	}
	if selected != board.NoSquare {
		r.fillSquare(screen, selected, r.theme.SelectedSquare)
	}
	for _, sq := range legalTargets {
		x, y, edge := r.squareRect(sq)
		vector.DrawFilledCircle(screen, x+edge/2, y+edge/2, edge*0.15, r.theme.LegalMoveColor, false)
	}
}

// fillSquare lays c over sq.
func (r *Renderer) fillSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y, edge := r.squareRect(sq)
	vector.DrawFilledRect(screen, x, y, edge, edge, c, false)
}

// DrawPieces draws every live piece, displaced by any active shake.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pieces []board.PlacedPiece, anims *AnimationManager) {
	for _, pp := range pieces {
		x, y := r.SquareToScreen(pp.Square)
		if anims != nil {
			dx, dy := anims.GetShakeOffset(pp.Square)
			x += int(dx)
			y += int(dy)
		}
		r.sprites.DrawPieceAt(screen, pp.Piece, int(r.s(x)), int(r.s(y)))
	}
}

// SquareToScreen maps sq to the logical pixel origin of its square.
// Rank 1 sits at the bottom of the window.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return sq.File() * r.squareSize, (7 - sq.Rank()) * r.squareSize
}

// ScreenToSquare maps a logical point to the square under it,
// NoSquare when the point is off the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || y < 0 || x >= r.boardSize || y >= r.boardSize {
		return board.NoSquare
	}
	return board.NewSquare(x/r.squareSize, 7-y/r.squareSize)
}
