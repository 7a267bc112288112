package ui

import (
	"image/color"
	"testing"
)

func TestThemeCatalog(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("catalog holds %d themes, want several", len(names))
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate theme name %q", name)
		}
		seen[name] = true
		if !HasTheme(name) {
			t.Errorf("HasTheme(%q) = false for a listed theme", name)
		}
		if ThemeByName(name) == nil {
			t.Errorf("ThemeByName(%q) = nil", name)
		}
	}
	if !seen[DefaultThemeName] {
		t.Fatalf("catalog lacks the %q theme", DefaultThemeName)
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if got := ThemeByName("no-such-theme"); got != DefaultTheme() {
		t.Errorf("unknown theme returned %+v, want the default", got)
	}
	if HasTheme("no-such-theme") {
		t.Error("HasTheme reports an unknown theme")
	}
}

func TestClassicThemeColors(t *testing.T) {
	classic := ThemeByName("classic")

	if want := (color.RGBA{240, 217, 181, 255}); classic.LightSquare != want {
		t.Errorf("LightSquare = %v, want %v", classic.LightSquare, want)
	}
	if want := (color.RGBA{181, 136, 99, 255}); classic.DarkSquare != want {
		t.Errorf("DarkSquare = %v, want %v", classic.DarkSquare, want)
	}
	if classic.SelectedSquare.A == 0 || classic.SelectedSquare.A == 255 {
		t.Errorf("SelectedSquare alpha = %d, want a translucent overlay", classic.SelectedSquare.A)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#F0D9B5", color.RGBA{0xF0, 0xD9, 0xB5, 0xFF}, false},
		{"#000000", color.RGBA{0, 0, 0, 0xFF}, false},
		{"#FFFFFF", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, false},
		{"#F7F769B4", color.RGBA{0xF7, 0xF7, 0x69, 0xB4}, false},
		{" #0A0B0C ", color.RGBA{0x0A, 0x0B, 0x0C, 0xFF}, false},
		{"F0D9B5", color.RGBA{}, true},
		{"#F0D9", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tc := range tests {
		got, err := parseHexColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseHexColor(%q) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHexColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
