package ui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"clickchess/internal/logx"
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
)

// fontSources holds the two embedded Go font families, decoded once.
var fontSources struct {
	once    sync.Once
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func loadFontSources() {
	fontSources.once.Do(func() {
		fontSources.regular = decodeFont("regular", goregular.TTF)
		fontSources.bold = decodeFont("bold", gobold.TTF)
	})
}

func decodeFont(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		logx.L().Error("failed to decode font", zap.String("font", name), zap.Error(err))
		return nil
	}
	return src
}

// faceFrom builds a face of the given size, nil when the source failed
// to decode.
func faceFrom(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// GetRegularFace is the body face at the default size for the current
// display scale.
func GetRegularFace() *text.GoTextFace {
	return GetFaceWithSize(defaultFontSize * UIScale)
}

// GetBoldFace is the heading face at the title size for the current
// display scale.
func GetBoldFace() *text.GoTextFace {
	return GetBoldFaceWithSize(titleFontSize * UIScale)
}

// GetFaceWithSize is the body face at an explicit size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	loadFontSources()
	return faceFrom(fontSources.regular, size)
}

// GetBoldFaceWithSize is the heading face at an explicit size.
func GetBoldFaceWithSize(size float64) *text.GoTextFace {
	loadFontSources()
	return faceFrom(fontSources.bold, size)
}

// MeasureText reports the rendered size of s, zero for a nil face.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
