package ui

import (
	_ "embed"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"clickchess/internal/logx"
)

//go:embed assets/themes.yaml
var themesYAML []byte

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	HoverSquare    color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
}

// themeEntry mirrors one catalog entry in themes.yaml.
type themeEntry struct {
	LightSquare    string `yaml:"light_square"`
	DarkSquare     string `yaml:"dark_square"`
	HoverSquare    string `yaml:"hover_square"`
	SelectedSquare string `yaml:"selected_square"`
	LegalMove      string `yaml:"legal_move"`
	LastMove       string `yaml:"last_move"`
	Background     string `yaml:"background"`
}

type themeCatalog struct {
	Themes map[string]themeEntry `yaml:"themes"`
}

// DefaultThemeName is the catalog entry used when a requested theme is
// missing.
const DefaultThemeName = "classic"

var themes = loadThemes()

// loadThemes parses the embedded catalog. The catalog ships inside the
// binary, so a malformed entry is a build defect and panics.
func loadThemes() map[string]*Theme {
	var catalog themeCatalog
	if err := yaml.Unmarshal(themesYAML, &catalog); err != nil {
		panic(fmt.Errorf("ui: parsing theme catalog: %w", err))
	}
	if _, ok := catalog.Themes[DefaultThemeName]; !ok {
		panic(fmt.Errorf("ui: theme catalog lacks %q", DefaultThemeName))
	}

	out := make(map[string]*Theme, len(catalog.Themes))
	for name, entry := range catalog.Themes {
		t, err := entry.build()
		if err != nil {
			panic(fmt.Errorf("ui: theme %q: %w", name, err))
		}
		out[name] = t
	}
	return out
}

func (e themeEntry) build() (*Theme, error) {
	t := &Theme{}
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"light_square", e.LightSquare, &t.LightSquare},
		{"dark_square", e.DarkSquare, &t.DarkSquare},
		{"hover_square", e.HoverSquare, &t.HoverSquare},
		{"selected_square", e.SelectedSquare, &t.SelectedSquare},
		{"legal_move", e.LegalMove, &t.LegalMoveColor},
		{"last_move", e.LastMove, &t.LastMoveColor},
		{"background", e.Background, &t.Background},
	}
	for _, f := range fields {
		c, err := parseHexColor(f.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return t, nil
}

// parseHexColor reads #RRGGBB or #RRGGBBAA.
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	c := color.RGBA{A: 0xFF}
	if len(s) == 9 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

// ThemeNames returns the catalog names in a stable order for menus.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the named theme. Unknown names fall back to the
// default theme.
func ThemeByName(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	logx.L().Warn("unknown theme, falling back", zap.String("theme", name))
	return themes[DefaultThemeName]
}

// HasTheme reports whether the catalog holds the named theme.
func HasTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return themes[DefaultThemeName]
}
