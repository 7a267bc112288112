package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurShaderSrc is one axis of a separable 9-tap Gaussian. Axis is
// (1,0) for the horizontal pass and (0,1) for the vertical one;
// Radius spreads the taps.
var blurShaderSrc = []byte(`
//kage:unit pixels

package main

var Radius float
var Axis vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	sum := imageSrc0At(srcPos) * 0.2252
	sum += (imageSrc0At(srcPos+Axis*Radius) + imageSrc0At(srcPos-Axis*Radius)) * 0.1954
	sum += (imageSrc0At(srcPos+Axis*2*Radius) + imageSrc0At(srcPos-Axis*2*Radius)) * 0.1218
	sum += (imageSrc0At(srcPos+Axis*3*Radius) + imageSrc0At(srcPos-Axis*3*Radius)) * 0.0540
	sum += (imageSrc0At(srcPos+Axis*4*Radius) + imageSrc0At(srcPos-Axis*4*Radius)) * 0.0162
	return sum
}
`)

// glassShaderSrc ripples the already-blurred capture and lays a tint
// over it. Clock drives the wave animation, Warp its amplitude.
var glassShaderSrc = []byte(`
//kage:unit pixels

package main

var Clock float
var Warp float
var Tint vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	shift := vec2(
		sin(srcPos.y*0.03+Clock*1.5),
		cos(srcPos.x*0.03+Clock*1.2)*0.7,
	) * Warp
	base := imageSrc0At(srcPos + shift)
	return mix(base, vec4(Tint.rgb, 1), Tint.a)
}
`)

// GlassEffect draws frosted panels: it captures what is already on
// screen, blurs the capture in two passes, then re-composites it
// through a refraction shader. When shader compilation fails it
// degrades to a flat tinted rectangle.
type GlassEffect struct {
	blur     *ebiten.Shader
	glass    *ebiten.Shader
	scratchA *ebiten.Image
	scratchB *ebiten.Image
	clock    float64
	enabled  bool
}

// NewGlassEffect compiles the shaders.
func NewGlassEffect() *GlassEffect {
	blur, err := ebiten.NewShader(blurShaderSrc)
	if err != nil {
		return &GlassEffect{}
	}
	glass, err := ebiten.NewShader(glassShaderSrc)
	if err != nil {
		return &GlassEffect{}
	}
	return &GlassEffect{blur: blur, glass: glass, enabled: true}
}

// IsEnabled reports whether the shader path is available.
func (ge *GlassEffect) IsEnabled() bool {
	return ge != nil && ge.enabled
}

// Update advances the refraction animation by one tick.
func (ge *GlassEffect) Update() {
	if ge != nil {
		ge.clock += 1.0 / 60.0
	}
}

// scratch returns the two offscreen images sized w by h, cleared and
// reallocated when the requested size changes.
func (ge *GlassEffect) scratch(w, h int) (*ebiten.Image, *ebiten.Image) {
	if ge.scratchA == nil || ge.scratchA.Bounds().Dx() != w || ge.scratchA.Bounds().Dy() != h {
		ge.scratchA = ebiten.NewImage(w, h)
		ge.scratchB = ebiten.NewImage(w, h)
	}
	ge.scratchA.Clear()
	ge.scratchB.Clear()
	return ge.scratchA, ge.scratchB
}

// blurPass runs one axis of the separable blur from src into dst.
func (ge *GlassEffect) blurPass(dst, src *ebiten.Image, w, h int, radius float64, ax, ay float32) {
	op := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{
			"Radius": float32(radius),
			"Axis":   []float32{ax, ay},
		},
		Images: [4]*ebiten.Image{src},
	}
	dst.DrawRectShader(w, h, ge.blur, op)
}

// DrawGlass renders a frosted panel over the given screen region.
// Coordinates are screen pixels. sigma spreads the blur taps (1 to 4
// works well) and refraction sets the wave amplitude (2 to 8).
func (ge *GlassEffect) DrawGlass(screen *ebiten.Image, x, y, w, h int, tint color.RGBA, sigma, refraction float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if !ge.IsEnabled() {
		flat := ebiten.NewImage(w, h)
		flat.Fill(tint)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(flat, op)
		return
	}

	a, b := ge.scratch(w, h)

	// Grab the region under the panel.
	grab := &ebiten.DrawImageOptions{}
	grab.GeoM.Translate(float64(-x), float64(-y))
	a.DrawImage(screen, grab)

	ge.blurPass(b, a, w, h, sigma, 1, 0)
	a.Clear()
	ge.blurPass(a, b, w, h, sigma, 0, 1)

	op := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{
			"Clock": float32(ge.clock),
			"Warp":  float32(refraction),
			"Tint": []float32{
				float32(tint.R) / 255,
				float32(tint.G) / 255,
				float32(tint.B) / 255,
				float32(tint.A) / 255,
			},
		},
		Images: [4]*ebiten.Image{a},
	}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawRectShader(w, h, ge.glass, op)
}
