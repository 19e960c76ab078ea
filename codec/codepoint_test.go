// codepoint_test.go - Unit Tests fuer die Codepoint-Dekodierung
//
// Testet die Dreiteilung Decoded/Invalid/Incomplete inklusive
// Overlong-Formen, codierten Surrogates und Bereichsgrenzen.
package codec

import "testing"

func TestDecodeCodepoint(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		status DecodeStatus
		scalar rune
		size   int
	}{
		{"ASCII", []byte("A"), StatusDecoded, 0x41, 1},
		{"ASCII Null", []byte{0x00}, StatusDecoded, 0x00, 1},
		{"Zwei Bytes", []byte{0xC3, 0xA9}, StatusDecoded, 0xE9, 2}, // é
		{"Zwei Bytes Minimum", []byte{0xC2, 0x80}, StatusDecoded, 0x80, 2},
		{"Drei Bytes", []byte{0xE2, 0x82, 0xAC}, StatusDecoded, 0x20AC, 3}, // €
		{"Vier Bytes", []byte{0xF0, 0x9F, 0x94, 0xA5}, StatusDecoded, 0x1F525, 4},
		{"Letzter BMP-Wert vor Surrogates", []byte{0xED, 0x9F, 0xBF}, StatusDecoded, 0xD7FF, 3},
		{"Erster BMP-Wert nach Surrogates", []byte{0xEE, 0x80, 0x80}, StatusDecoded, 0xE000, 3},
		{"Maximaler Codepoint", []byte{0xF4, 0x8F, 0xBF, 0xBF}, StatusDecoded, MaxScalar, 4},

		{"Leer", nil, StatusIncomplete, 0, 0},
		{"Zwei Bytes abgeschnitten", []byte{0xC3}, StatusIncomplete, 0, 0},
		{"Drei Bytes abgeschnitten", []byte{0xE2, 0x82}, StatusIncomplete, 0, 0},
		{"Vier Bytes abgeschnitten", []byte{0xF0, 0x9F, 0x94}, StatusIncomplete, 0, 0},
		{"Vier Bytes nur Leading", []byte{0xF0}, StatusIncomplete, 0, 0},

		{"Einzelnes Continuation-Byte", []byte{0x8A}, StatusInvalid, 0, 1},
		{"Overlong Leading C0", []byte{0xC0, 0x80}, StatusInvalid, 0, 1},
		{"Overlong Leading C1", []byte{0xC1, 0xBF}, StatusInvalid, 0, 1},
		{"Leading ueber Maximum F5", []byte{0xF5, 0x80}, StatusInvalid, 0, 1},
		{"Leading FF", []byte{0xFF}, StatusInvalid, 0, 1},
		{"Fehlendes Continuation-Byte", []byte{0xC3, 0x41}, StatusInvalid, 0, 1},
		{"Fehlerhaftes drittes Byte", []byte{0xE2, 0x82, 0x41}, StatusInvalid, 0, 1},
		{"Overlong drei Bytes", []byte{0xE0, 0x80, 0x80}, StatusInvalid, 0, 1},
		{"Overlong drei Bytes Grenze", []byte{0xE0, 0x9F, 0xBF}, StatusInvalid, 0, 1},
		{"Codiertes Surrogate", []byte{0xED, 0xA0, 0x80}, StatusInvalid, 0, 1},
		{"Codiertes Surrogate Ende", []byte{0xED, 0xBF, 0xBF}, StatusInvalid, 0, 1},
		{"Overlong vier Bytes", []byte{0xF0, 0x80, 0x80, 0x80}, StatusInvalid, 0, 1},
		{"Ueber maximalem Codepoint", []byte{0xF4, 0x90, 0x80, 0x80}, StatusInvalid, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DecodeCodepoint(tt.input)
			if res.Status != tt.status {
				t.Fatalf("Status = %d, erwartet %d", res.Status, tt.status)
			}
			if res.Status == StatusDecoded && res.Scalar != tt.scalar {
				t.Errorf("Scalar = %#x, erwartet %#x", res.Scalar, tt.scalar)
			}
			if res.Size != tt.size {
				t.Errorf("Size = %d, erwartet %d", res.Size, tt.size)
			}
		})
	}
}

// TestDecodeCodepointIncompleteVsInvalid stellt sicher dass ein
// gueltiger Sequenz-Anfang am Puffer-Ende nie als Invalid gemeldet
// wird - der historische Fehler der Emojis an Chunk-Grenzen verlor
func TestDecodeCodepointIncompleteVsInvalid(t *testing.T) {
	full := []byte{0xF0, 0x9F, 0x98, 0x80} // 😀
	for i := 1; i < len(full); i++ {
		res := DecodeCodepoint(full[:i])
		if res.Status != StatusIncomplete {
			t.Errorf("Praefix-Laenge %d: Status = %d, erwartet StatusIncomplete", i, res.Status)
		}
	}

	// Ein unmoeglicher Anfang ist dagegen sofort Invalid, auch
	// wenn die Sequenz-Laenge noch nicht erreicht ist
	res := DecodeCodepoint([]byte{0xED, 0xA0})
	if res.Status != StatusInvalid {
		t.Errorf("Surrogate-Anfang: Status = %d, erwartet StatusInvalid", res.Status)
	}
}
