// session.go - Streaming-Session des Outbound-Decoders
//
// Dieses Modul enthaelt:
// - Session: Carry-Over-Puffer einer laufenden Generierung
// - Feed: Dekodiert einen Chunk, traegt unvollstaendige Sequenzen vor
// - Finish: Abschliessender Flush am Stream-Ende
// - Abort: Verwirft den Carry-Over ohne Flush (Abbruch)
//
// Jede Generierung bekommt ihre eigene Session; es gibt keinen
// geteilten globalen Zustand. Fehlerhafte Engine-Bytes werden
// uebersprungen und gezaehlt, nie als Fehler gemeldet - der Host
// darf durch Engine-Ausgabe niemals abstuerzen.
package bridge

import (
	"log/slog"

	"github.com/androgpt/textbridge/codec"
	"github.com/androgpt/textbridge/envconfig"
	"github.com/androgpt/textbridge/logutil"
)

// Session haelt den Zustand einer Streaming-Generierung.
// Der Puffer enthaelt zwischen zwei Feed-Aufrufen hoechstens
// codec.UTFMax-1 Bytes: den Anfang einer noch unvollstaendigen
// Multi-Byte-Sequenz.
type Session struct {
	// buf ist der Carry-Over-Puffer; wird ueber die gesamte
	// Session wiederverwendet, nie mitten im Stream ersetzt
	buf []byte

	// invalidBytes zaehlt uebersprungene Bytes (Diagnose)
	invalidBytes int

	// droppedBytes zaehlt am Stream-Ende verworfene Rest-Bytes
	droppedBytes int

	// logInvalid aktiviert Logging pro verworfenem Byte
	logInvalid bool
}

// NewSession erstellt eine frische, isolierte Streaming-Session
func NewSession() *Session {
	return &Session{
		buf:        make([]byte, 0, codec.UTFMax),
		logInvalid: envconfig.LogInvalid(),
	}
}

// Feed dekodiert einen Chunk roher Engine-Bytes und gibt die daraus
// entstandenen Code-Units zurueck. Ein Chunk der nur den Anfang einer
// Multi-Byte-Sequenz enthaelt liefert ein leeres Ergebnis; die Bytes
// werden beim naechsten Feed mit dem Folge-Chunk kombiniert.
func (s *Session) Feed(chunk []byte) []uint16 {
	s.buf = append(s.buf, chunk...)

	var out []uint16
	i := 0
	for i < len(s.buf) {
		res := codec.DecodeCodepoint(s.buf[i:])
		switch res.Status {
		case codec.StatusDecoded:
			out = codec.AppendUnits(out, res.Scalar)
			i += res.Size
		case codec.StatusInvalid:
			if s.logInvalid {
				slog.Debug("skipping invalid byte from engine", "byte", s.buf[i], "offset", i)
			}
			s.invalidBytes += res.Size
			i += res.Size
		case codec.StatusIncomplete:
			// Rest ist Praefix einer moeglichen gueltigen Sequenz:
			// als Carry-Over behalten und auf den naechsten Chunk warten
			s.buf = append(s.buf[:0], s.buf[i:]...)
			return out
		}
	}

	s.buf = s.buf[:0]
	return out
}

// Finish schliesst den Stream ab. Ein letzter Dekodier-Durchlauf ueber
// den Carry-Over allein; was dabei nicht aufloesbar ist kann nie mehr
// gueltig werden (es kommen keine Bytes nach) und wird verworfen.
// Mehrfaches Finish ist erlaubt; bei leerem Carry-Over passiert nichts.
func (s *Session) Finish() []uint16 {
	var out []uint16
	i := 0
	for i < len(s.buf) {
		res := codec.DecodeCodepoint(s.buf[i:])
		switch res.Status {
		case codec.StatusDecoded:
			out = codec.AppendUnits(out, res.Scalar)
			i += res.Size
		case codec.StatusInvalid:
			s.invalidBytes += res.Size
			i += res.Size
		case codec.StatusIncomplete:
			logutil.Trace("dropping truncated sequence at end of stream", "bytes", len(s.buf)-i)
			s.droppedBytes += len(s.buf) - i
			i = len(s.buf)
		}
	}

	s.buf = s.buf[:0]
	return out
}

// Abort verwirft den Carry-Over ohne Flush. Fuer abgebrochene
// Generierungen: die restlichen Bytes gehoeren zu einer Ausgabe
// die nie vervollstaendigt wird.
func (s *Session) Abort() {
	if len(s.buf) > 0 {
		logutil.Trace("aborting session with pending bytes", "bytes", len(s.buf))
		s.droppedBytes += len(s.buf)
	}
	s.buf = s.buf[:0]
}

// PendingBytes gibt die aktuelle Laenge des Carry-Over-Puffers zurueck
func (s *Session) PendingBytes() int {
	return len(s.buf)
}

// InvalidBytes gibt die Anzahl uebersprungener Bytes zurueck
func (s *Session) InvalidBytes() int {
	return s.invalidBytes
}

// DroppedBytes gibt die Anzahl am Stream-Ende verworfener Bytes zurueck
func (s *Session) DroppedBytes() int {
	return s.droppedBytes
}
