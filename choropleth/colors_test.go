package choropleth

import "testing"

func TestRamp(t *testing.T) {
	ramp, err := Ramp("blue")
	if err != nil {
		t.Fatalf("Ramp: %v", err)
	}

	light := ramp(0)
	dark := ramp(1)
	if light.R != 0xf7 || light.G != 0xfb || light.B != 0xff {
		t.Errorf("ramp(0) = %v, want near-white", light)
	}
	if dark.R != 0x08 || dark.G != 0x30 || dark.B != 0x6b {
		t.Errorf("ramp(1) = %v, want base blue", dark)
	}

	// Out-of-range inputs clamp instead of wrapping.
	if got := ramp(-0.5); got != light {
		t.Errorf("ramp(-0.5) = %v, want %v", got, light)
	}
	if got := ramp(1.5); got != dark {
		t.Errorf("ramp(1.5) = %v, want %v", got, dark)
	}

	if _, err := Ramp("mauve"); err == nil {
		t.Error("expected error for unknown colour")
	}
}

func TestColourNames(t *testing.T) {
	for _, name := range ColourNames() {
		if _, err := Ramp(name); err != nil {
			t.Errorf("listed colour %q has no ramp: %v", name, err)
		}
	}
}
