// codeunit.go - 16-Bit Code-Units und Surrogate-Paare
//
// Dieses Modul enthaelt:
// - AppendUnits: Codepoint zu 1-2 Code-Units (Surrogate-Paar ab U+10000)
// - CombineSurrogates: Surrogate-Paar zurueck zum Codepoint
// - IsHighSurrogate/IsLowSurrogate: Klassifizierung einzelner Units
//
// Der Host (Android/Java) arbeitet mit UTF-16-Strings; diese Funktionen
// bilden die Transformation aus Abschnitt "Code-Unit Encoder" ab.
package codec

const (
	// surr1-surr2: High-Surrogates (obere 10 Bit eines Paars)
	// surr2-surr3: Low-Surrogates (untere 10 Bit eines Paars)
	surr1 = 0xD800
	surr2 = 0xDC00
	surr3 = 0xE000

	// surrSelf: ab diesem Wert ist ein Surrogate-Paar noetig
	surrSelf = 0x10000
)

// IsHighSurrogate meldet ob u ein High-Surrogate ist (0xD800-0xDBFF)
func IsHighSurrogate(u uint16) bool {
	return surr1 <= u && u < surr2
}

// IsLowSurrogate meldet ob u ein Low-Surrogate ist (0xDC00-0xDFFF)
func IsLowSurrogate(u uint16) bool {
	return surr2 <= u && u < surr3
}

// IsSurrogateScalar meldet ob cp in der reservierten Surrogate-Zone liegt.
// Solche Werte sind keine gueltigen Codepoints.
func IsSurrogateScalar(cp rune) bool {
	return surr1 <= cp && cp < surr3
}

// AppendUnits haengt die Code-Unit-Darstellung von cp an dst an:
// eine Unit unter U+10000, sonst ein Surrogate-Paar. Der Aufrufer
// garantiert dass cp ein gueltiger Codepoint ausserhalb der
// Surrogate-Zone ist (DecodeCodepoint laesst nichts anderes durch).
func AppendUnits(dst []uint16, cp rune) []uint16 {
	if cp < surrSelf {
		return append(dst, uint16(cp))
	}
	cp -= surrSelf
	return append(dst, uint16(surr1+(cp>>10)&0x3FF), uint16(surr2+cp&0x3FF))
}

// CombineSurrogates setzt ein High/Low-Paar zu einem Codepoint >= U+10000
// zusammen. Umkehrung von AppendUnits; der Aufrufer prueft die Paarung.
func CombineSurrogates(hi, lo uint16) rune {
	return (rune(hi)-surr1)<<10 | (rune(lo) - surr2) + surrSelf
}
