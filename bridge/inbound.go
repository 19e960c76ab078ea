// inbound.go - Host-Text zu Engine-Bytes (Inbound-Richtung)
//
// Dieses Modul enthaelt:
// - Encode: Code-Units des Hosts zu minimaler UTF-8-Codierung
// - EncodeUTF16Bytes: Roh-UTF-16-Payload (LE/BE, optionale BOM)
//
// Strukturelles Spiegelbild der Outbound-Richtung: ungepaarte
// Surrogates werden uebersprungen statt als Fehler gemeldet, der
// Wertebereich der Codepoints ist derselbe wie beim Dekodieren.
package bridge

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/androgpt/textbridge/codec"
	"github.com/androgpt/textbridge/envconfig"
)

// Encode codiert die Code-Unit-Folge eines Host-Prompts als UTF-8-Bytes
// fuer die Engine. High/Low-Surrogate-Paare werden zu einem Codepoint
// >= U+10000 kombiniert; ein ungepaartes Surrogate (High ohne folgendes
// Low, oder Low ohne vorangehendes High) wird uebersprungen. Leere
// Eingabe liefert leere Ausgabe.
func Encode(units []uint16) []byte {
	logInvalid := envconfig.LogInvalid()

	out := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case codec.IsHighSurrogate(u):
			if i+1 < len(units) && codec.IsLowSurrogate(units[i+1]) {
				out = codec.AppendScalar(out, codec.CombineSurrogates(u, units[i+1]))
				i++
			} else if logInvalid {
				slog.Debug("skipping unpaired high surrogate in prompt", "unit", u, "index", i)
			}
		case codec.IsLowSurrogate(u):
			if logInvalid {
				slog.Debug("skipping unpaired low surrogate in prompt", "unit", u, "index", i)
			}
		default:
			out = codec.AppendScalar(out, rune(u))
		}
	}

	return out
}

// EncodeUTF16Bytes nimmt einen rohen UTF-16-Prompt-Payload entgegen,
// wie ihn die Host-Plattform liefern kann: Little- oder Big-Endian,
// mit oder ohne BOM (ohne BOM wird Little-Endian angenommen). Fuer
// wohlgeformte Payloads entstehen dieselben Engine-Bytes wie ueber
// Encode. Ungepaarte Surrogates behandelt der x/text-Decoder aber
// anders als Encode: sie werden durch U+FFFD ersetzt statt
// uebersprungen, weil die Code-Unit-Grenzen im Byte-Strom nach der
// Dekodierung nicht mehr rekonstruierbar sind.
func EncodeUTF16Bytes(raw []byte) ([]byte, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	text, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, fmt.Errorf("decode utf-16 payload: %w", err)
	}

	return Encode(DecodeComplete(text)), nil
}
