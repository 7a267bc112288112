package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"

	"clickchess/internal/board"
	"clickchess/internal/logx"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// supersample is the factor the SVGs are rasterized above display
// size; drawing scales them back down so edges stay sharp on HiDPI
// screens.
const supersample = 3.0

// SpriteManager rasterizes the embedded piece SVGs once and hands out
// textures for drawing.
type SpriteManager struct {
	sprites    map[board.Piece]*ebiten.Image
	size       int
	hidpiScale float64
}

// NewSpriteManager rasterizes all twelve pieces at the given logical
// square size. Pieces whose asset fails to load are logged and drawn
// as nothing.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		sprites:    make(map[board.Piece]*ebiten.Image, 12),
		size:       size,
		hidpiScale: 1,
	}
	for p := board.WhitePawn; p <= board.BlackKing; p++ {
		img, err := loadSprite(p, int(float64(size)*supersample))
		if err != nil {
			logx.L().Warn("failed to load piece sprite",
				zap.Stringer("piece", p.Type()),
				zap.Stringer("color", p.Color()),
				zap.Error(err))
			continue
		}
		sm.sprites[p] = img
	}
	return sm
}

// assetPath derives the embedded file name from the piece itself:
// side letter, then the uppercase piece letter.
func assetPath(p board.Piece) string {
	side := byte('w')
	if p.Color() == board.Black {
		side = 'b'
	}
	return fmt.Sprintf("assets/pieces/%c%c.svg", side, "PNBRQK"[p.Type()])
}

// loadSprite reads one embedded SVG and rasterizes it to a size-pixel
// square texture.
func loadSprite(p board.Piece, size int) (*ebiten.Image, error) {
	data, err := pieceAssets.ReadFile(assetPath(p))
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return ebiten.NewImageFromImage(dst), nil
}

// SetScale sets the HiDPI factor applied when drawing.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.hidpiScale = scale
}

// DrawPieceAt draws p with its top-left corner at the given screen
// pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.sprites[p]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := sm.hidpiScale / supersample
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
