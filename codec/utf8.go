// utf8.go - Minimale UTF-8-Codierung eines Codepoints
//
// Dieses Modul enthaelt:
// - AppendScalar: Codepoint zu 1-4 Bytes (immer die kuerzeste Form)
//
// Gegenstueck zu DecodeCodepoint fuer die Inbound-Richtung
// (Host-Prompt zur Engine).
package codec

// AppendScalar haengt die minimale UTF-8-Codierung von cp an dst an.
// Der Aufrufer garantiert 0 <= cp <= MaxScalar ausserhalb der
// Surrogate-Zone; die Grenzen entsprechen exakt den Ablehnungsregeln
// von DecodeCodepoint, damit beide Richtungen denselben Wertebereich
// teilen.
func AppendScalar(dst []byte, cp rune) []byte {
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst,
			0xC0|byte(cp>>6),
			0x80|byte(cp&0x3F))
	case cp < surrSelf:
		return append(dst,
			0xE0|byte(cp>>12),
			0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F))
	default:
		return append(dst,
			0xF0|byte(cp>>18),
			0x80|byte(cp>>12&0x3F),
			0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F))
	}
}
