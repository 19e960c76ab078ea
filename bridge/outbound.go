// outbound.go - Engine-Bytes zu Host-Text (Outbound-Richtung)
//
// Dieses Modul enthaelt:
// - DecodeComplete: Nicht-Streaming-Variante fuer komplette Puffer
//
// Die Streaming-Variante laeuft ueber Session (session.go).
package bridge

// DecodeComplete dekodiert einen vollstaendigen Byte-Puffer in einem
// Aufruf. Entspricht NewSession + Feed + Finish; fuer Engines die
// keine Streaming-Ausgabe liefern.
func DecodeComplete(b []byte) []uint16 {
	s := NewSession()
	out := s.Feed(b)
	return append(out, s.Finish()...)
}
