package core

import "testing"

func TestParseColor(t *testing.T) {
	for c := Color(0); c < colorCount; c++ {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v", c.String(), got, ok, c)
		}
	}

	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#7f00ff", RGB{127, 0, 255}, false},
		{"ffffff", RGB{255, 255, 255}, false},
		{"#fff", RGB{}, true},
		{"#zz0000", RGB{}, true},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestPaletteOverrides(t *testing.T) {
	p, err := NewPalette(map[string]string{"violet": "#010203"})
	if err != nil {
		t.Fatalf("NewPalette() failed: %v", err)
	}

	if got := p.Get(ColorViolet); got != (RGB{1, 2, 3}) {
		t.Errorf("Get(violet) = %v, expected {1 2 3}", got)
	}
	if got := p.Get(ColorYellow); got != (RGB{255, 255, 0}) {
		t.Errorf("Get(yellow) = %v, expected default", got)
	}
	if got := p.Get(ColorViolet).Hex(); got != "#010203" {
		t.Errorf("Hex() = %q, expected #010203", got)
	}

	if _, err := NewPalette(map[string]string{"mauve": "#000000"}); err == nil {
		t.Error("NewPalette should reject unknown color names")
	}
}

func TestDefaultPaletteIsIndependent(t *testing.T) {
	a := DefaultPalette()
	b, _ := NewPalette(map[string]string{"white": "#000000"})

	if a.Get(ColorWhite) != (RGB{255, 255, 255}) {
		t.Error("overriding one palette must not affect another")
	}
	if b.Get(ColorWhite) != (RGB{}) {
		t.Error("override not applied")
	}
}
