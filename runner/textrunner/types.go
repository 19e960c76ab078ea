// Package textrunner - Generierungs-Schleife zwischen Engine und Text-Bridge
//
// Dieses Modul definiert die Kerntypen:
// - TokenSource: Opaque Quelle roher Token-Bytes (die Inference-Engine)
// - Sequence: Repraesentiert eine laufende Generierung
// - DoneReason: Grund fuer das Ende einer Generierung
// - Runner: Begrenzt gleichzeitige Sequenzen
package textrunner

import (
	"golang.org/x/sync/semaphore"

	"github.com/androgpt/textbridge/bridge"
	"github.com/androgpt/textbridge/envconfig"
)

// DefaultStopSequences sind die Template-Marker des Chat-Formats;
// erreicht die Ausgabe einen davon, endet die Generierung
var DefaultStopSequences = []string{"<|end|>", "<|user|>", "<|assistant|>", "<|system|>"}

// TokenSource liefert nacheinander die rohen Byte-Fragmente der Engine.
// Next gibt false zurueck wenn die Engine fertig ist (EOS oder Limit
// der Engine selbst). Die Fragmente koennen mitten in einer
// Multi-Byte-Sequenz enden; das faengt die Bridge ab.
type TokenSource interface {
	Next() ([]byte, bool)
}

// DoneReason ist der Grund fuer das Ende einer Generierung
type DoneReason int

const (
	// DoneReasonStop: EOS der Engine oder Stop-Sequenz getroffen
	DoneReasonStop DoneReason = iota

	// DoneReasonLimit: Fragment-Budget der Sequenz erreicht
	DoneReasonLimit

	// DoneReasonCancelled: Abbruch durch den Host (Context)
	DoneReasonCancelled
)

func (d DoneReason) String() string {
	switch d {
	case DoneReasonLimit:
		return "limit"
	case DoneReasonCancelled:
		return "cancelled"
	default:
		return "stop"
	}
}

// SequenceParams enthaelt Parameter fuer neue Sequenzen
type SequenceParams struct {
	// Stop sind die Stop-Sequenzen; nil verwendet DefaultStopSequences
	Stop []string

	// NumPredict begrenzt die Anzahl verarbeiteter Fragmente (0 = kein Limit)
	NumPredict int
}

// Sequence repraesentiert eine laufende Generierung.
// Der Zustand gehoert exklusiv der Run-Schleife; der Host liest
// nur den Responses-Kanal und nach dessen Schliessen DoneReason.
type Sequence struct {
	// session ist die Bridge-Session dieser Generierung
	session *bridge.Session

	// pendingPieces sind dekodierte, noch nicht ausgelieferte Textstuecke.
	// Zurueckgehalten solange das Ende wie der Anfang einer
	// Stop-Sequenz aussieht
	pendingPieces []string

	// stop enthaelt die Stop-Sequenzen
	stop []string

	// numPredict ist das Fragment-Budget (0 = unbegrenzt)
	numPredict int

	// numPredicted zaehlt die verarbeiteten Fragmente
	numPredicted int

	// responses ist der Kanal fuer ausgelieferten Text
	responses chan string

	// doneReason enthaelt den Grund fuer das Ende; gueltig nachdem
	// responses geschlossen wurde
	doneReason DoneReason
}

// Responses gibt den Kanal zurueck auf dem die Sequenz Text ausliefert.
// Der Kanal wird am Ende der Generierung geschlossen.
func (seq *Sequence) Responses() <-chan string {
	return seq.responses
}

// DoneReason gibt den Grund fuer das Ende zurueck.
// Erst gueltig nachdem der Responses-Kanal geschlossen wurde.
func (seq *Sequence) DoneReason() DoneReason {
	return seq.doneReason
}

// Runner begrenzt die Anzahl gleichzeitig laufender Sequenzen.
// Die umgebende App startet eine Generierung zur Zeit; der Runner
// verlaesst sich aber nicht darauf - jede Sequenz hat ihre eigene
// Bridge-Session, ueberlappende Generierungen koennen sich nicht
// gegenseitig den Carry-Over zerstoeren.
type Runner struct {
	seqsSem *semaphore.Weighted
}

// NewRunner erstellt einen Runner mit dem konfigurierten
// Parallelitaets-Limit (ANDROGPT_NUM_PARALLEL, Default 1)
func NewRunner() *Runner {
	return &Runner{
		seqsSem: semaphore.NewWeighted(envconfig.NumParallel()),
	}
}

// NewSequence erstellt eine neue Sequenz mit frischer Bridge-Session
func (r *Runner) NewSequence(params SequenceParams) *Sequence {
	stop := params.Stop
	if stop == nil {
		stop = DefaultStopSequences
	}

	return &Sequence{
		session:       bridge.NewSession(),
		pendingPieces: make([]string, 0),
		stop:          stop,
		numPredict:    params.NumPredict,
		responses:     make(chan string, 100),
	}
}
