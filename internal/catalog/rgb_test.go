package catalog

import (
	"fmt"
	"testing"
)

func TestParseRGB_Supported(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#FF0000", RGB{255, 0, 0}},
		{"#c7243a", RGB{199, 36, 58}},
		{"00A3AF", RGB{0, 163, 175}},
		{"  #0a0B0c  ", RGB{10, 11, 12}},
		{"255,0,0", RGB{255, 0, 0}},
		{"199, 36, 58", RGB{199, 36, 58}},
		{"199 36 58", RGB{199, 36, 58}},
		{"199 / 36 / 58", RGB{199, 36, 58}},
		{"199/36/58", RGB{199, 36, 58}},
		{"１９９，３６，５８", RGB{199, 36, 58}},
		{"0 0 0", RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		got, ok := ParseRGB(tt.in)
		if !ok {
			t.Errorf("ParseRGB(%q) ok = false, want true", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRGB_Rejected(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"red",
		"#FFF",
		"#GG0000",
		"#FF00001",
		"255,0",
		"255,0,0,0",
		"256,0,0",
		"-1,0,0",
		"1.5,2,3",
		"a,b,c",
		"0x10,0,0",
		"NaN,0,0",
	}
	for _, in := range inputs {
		if got, ok := ParseRGB(in); ok {
			t.Errorf("ParseRGB(%q) = %v, want no value", in, got)
		}
	}
}

func TestParseRGB_RoundTrip(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {255, 255, 255}, {12, 200, 99}, {1, 2, 3}} {
		encodings := []string{
			c.Hex(),
			fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B),
			fmt.Sprintf("%d %d %d", c.R, c.G, c.B),
			fmt.Sprintf("%d / %d / %d", c.R, c.G, c.B),
		}
		for _, enc := range encodings {
			got, ok := ParseRGB(enc)
			if !ok || got != c {
				t.Errorf("ParseRGB(%q) = %v, %v; want %v", enc, got, ok, c)
			}
		}
	}
}

func TestRGB_Format(t *testing.T) {
	c := RGB{R: 199, G: 36, B: 58}
	if got := c.Hex(); got != "#C7243A" {
		t.Errorf("Hex() = %q, want %q", got, "#C7243A")
	}
	if got := c.String(); got != "rgb(199, 36, 58)" {
		t.Errorf("String() = %q, want %q", got, "rgb(199, 36, 58)")
	}
}
