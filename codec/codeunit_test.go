// codeunit_test.go - Unit Tests fuer Code-Units und UTF-8-Codierung
//
// Testet Surrogate-Paar-Transformation, Klassifizierung und die
// minimale UTF-8-Codierung inklusive Laengen-Grenzen.
package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendUnits(t *testing.T) {
	tests := []struct {
		name   string
		scalar rune
		want   []uint16
	}{
		{"ASCII", 0x41, []uint16{0x41}},
		{"BMP", 0x20AC, []uint16{0x20AC}},
		{"Letzter Ein-Unit-Wert", 0xFFFF, []uint16{0xFFFF}},
		{"Erster Paar-Wert", 0x10000, []uint16{0xD800, 0xDC00}},
		{"Feuer-Emoji", 0x1F525, []uint16{0xD83D, 0xDD25}},
		{"Grinse-Emoji", 0x1F600, []uint16{0xD83D, 0xDE00}},
		{"Maximaler Codepoint", MaxScalar, []uint16{0xDBFF, 0xDFFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendUnits(nil, tt.scalar)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AppendUnits(%#x) mismatch (-want +got):\n%s", tt.scalar, diff)
			}
		})
	}
}

func TestCombineSurrogates(t *testing.T) {
	// Umkehrung von AppendUnits fuer die gesamte Supplementary-Zone
	// an Stichproben
	for _, scalar := range []rune{0x10000, 0x1F525, 0x1F600, 0x2070E, MaxScalar} {
		units := AppendUnits(nil, scalar)
		if len(units) != 2 {
			t.Fatalf("AppendUnits(%#x) ergab %d Units, erwartet 2", scalar, len(units))
		}
		if got := CombineSurrogates(units[0], units[1]); got != scalar {
			t.Errorf("CombineSurrogates = %#x, erwartet %#x", got, scalar)
		}
	}
}

func TestSurrogateClassification(t *testing.T) {
	tests := []struct {
		unit      uint16
		high, low bool
	}{
		{0x0000, false, false},
		{0xD7FF, false, false},
		{0xD800, true, false},
		{0xDBFF, true, false},
		{0xDC00, false, true},
		{0xDFFF, false, true},
		{0xE000, false, false},
		{0xFFFF, false, false},
	}

	for _, tt := range tests {
		if got := IsHighSurrogate(tt.unit); got != tt.high {
			t.Errorf("IsHighSurrogate(%#x) = %v, erwartet %v", tt.unit, got, tt.high)
		}
		if got := IsLowSurrogate(tt.unit); got != tt.low {
			t.Errorf("IsLowSurrogate(%#x) = %v, erwartet %v", tt.unit, got, tt.low)
		}
	}

	if !IsSurrogateScalar(0xD800) || !IsSurrogateScalar(0xDFFF) {
		t.Error("Surrogate-Zone nicht erkannt")
	}
	if IsSurrogateScalar(0xD7FF) || IsSurrogateScalar(0xE000) {
		t.Error("Grenzwerte faelschlich als Surrogate erkannt")
	}
}

func TestAppendScalarLengths(t *testing.T) {
	tests := []struct {
		scalar rune
		length int
	}{
		{0x00, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xD7FF, 3},
		{0xE000, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{MaxScalar, 4},
	}

	for _, tt := range tests {
		if got := len(AppendScalar(nil, tt.scalar)); got != tt.length {
			t.Errorf("AppendScalar(%#x): %d Bytes, erwartet %d", tt.scalar, got, tt.length)
		}
	}
}

// TestAppendScalarRoundTrip prueft dass AppendScalar und
// DecodeCodepoint exakte Umkehrungen sind
func TestAppendScalarRoundTrip(t *testing.T) {
	samples := []rune{0x00, 0x41, 0x7F, 0x80, 0xE9, 0x7FF, 0x800, 0x20AC,
		0xD7FF, 0xE000, 0xFFFD, 0xFFFF, 0x10000, 0x1F525, 0x1F600, MaxScalar}

	for _, scalar := range samples {
		b := AppendScalar(nil, scalar)
		res := DecodeCodepoint(b)
		if res.Status != StatusDecoded {
			t.Errorf("%#x: Status = %d, erwartet StatusDecoded", scalar, res.Status)
			continue
		}
		if res.Scalar != scalar || res.Size != len(b) {
			t.Errorf("%#x: Roundtrip ergab %#x (%d Bytes), erwartet %d Bytes", scalar, res.Scalar, res.Size, len(b))
		}
	}
}
