// codepoint.go - UTF-8 Codepoint-Dekodierung mit dreiwertigem Ergebnis
//
// Dieses Modul enthaelt:
// - DecodeCodepoint: Dekodiert einen Codepoint ab dem Anfang eines Byte-Slices
// - DecodeResult/DecodeStatus: Dreiwertiges Ergebnis (Decoded/Invalid/Incomplete)
//
// Die Unterscheidung zwischen Invalid (Bytes koennen nie gueltig werden)
// und Incomplete (es fehlen noch Continuation-Bytes) ist der Kern des
// Streaming-Verhaltens: Incomplete-Bytes wandern in den Carry-Over-Puffer,
// Invalid-Bytes werden uebersprungen.
package codec

// MaxScalar ist der hoechste gueltige Unicode-Codepoint
const MaxScalar = 0x10FFFF

// UTFMax ist die maximale Laenge einer UTF-8-Sequenz in Bytes
const UTFMax = 4

// DecodeStatus klassifiziert das Ergebnis von DecodeCodepoint
type DecodeStatus int

const (
	// StatusDecoded: ein vollstaendiger Codepoint wurde dekodiert
	StatusDecoded DecodeStatus = iota

	// StatusInvalid: die Bytes koennen nie eine gueltige Sequenz werden
	StatusInvalid

	// StatusIncomplete: die Sequenz ist bisher gueltig, aber es fehlen Bytes
	StatusIncomplete
)

// DecodeResult ist das Ergebnis eines Dekodier-Schritts.
// Scalar ist nur bei StatusDecoded gueltig. Size ist die Anzahl
// konsumierter Bytes (StatusDecoded) bzw. zu ueberspringender
// Bytes (StatusInvalid); bei StatusIncomplete ist Size 0 und die
// verbleibenden Bytes gehoeren in den Carry-Over.
type DecodeResult struct {
	Status DecodeStatus
	Scalar rune
	Size   int
}

// DecodeCodepoint dekodiert die UTF-8-Sequenz am Anfang von b.
//
// Abgelehnt werden ungueltige Leading-Bytes (0x80-0xC1, 0xF5-0xFF),
// fehlerhafte Continuation-Bytes, Overlong-Codierungen und in die
// Surrogate-Zone (U+D800-U+DFFF) codierte 3-Byte-Sequenzen. Die
// Pruefung laeuft ueber die erlaubten Wertebereiche des zweiten Bytes,
// dadurch ist eine als Incomplete gemeldete Sequenz immer Praefix
// einer tatsaechlich moeglichen gueltigen Sequenz.
func DecodeCodepoint(b []byte) DecodeResult {
	if len(b) == 0 {
		return DecodeResult{Status: StatusIncomplete}
	}

	c := b[0]
	if c < 0x80 {
		return DecodeResult{Status: StatusDecoded, Scalar: rune(c), Size: 1}
	}

	// Laenge und erlaubter Bereich des zweiten Bytes je Leading-Byte.
	// 0x80-0xBF sind Continuation-Bytes, 0xC0/0xC1 erzeugen nur
	// Overlong-Formen, 0xF5-0xFF liegen ueber U+10FFFF.
	var size int
	lo, hi := byte(0x80), byte(0xBF)
	switch {
	case c < 0xC2:
		return DecodeResult{Status: StatusInvalid, Size: 1}
	case c < 0xE0:
		size = 2
	case c < 0xF0:
		size = 3
		if c == 0xE0 {
			lo = 0xA0 // sonst Overlong
		} else if c == 0xED {
			hi = 0x9F // sonst Surrogate U+D800-U+DFFF
		}
	case c < 0xF5:
		size = 4
		if c == 0xF0 {
			lo = 0x90 // sonst Overlong
		} else if c == 0xF4 {
			hi = 0x8F // sonst > U+10FFFF
		}
	default:
		return DecodeResult{Status: StatusInvalid, Size: 1}
	}

	scalar := rune(c & (0x7F >> uint(size)))
	for i := 1; i < size; i++ {
		if i >= len(b) {
			return DecodeResult{Status: StatusIncomplete}
		}
		cc := b[i]
		if cc < lo || cc > hi {
			// Nur das Leading-Byte ueberspringen; das fehlerhafte Byte
			// wird im naechsten Schritt selbst klassifiziert
			return DecodeResult{Status: StatusInvalid, Size: 1}
		}
		lo, hi = 0x80, 0xBF
		scalar = scalar<<6 | rune(cc&0x3F)
	}

	return DecodeResult{Status: StatusDecoded, Scalar: scalar, Size: size}
}
