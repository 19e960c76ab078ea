// runner.go - Streaming-Schleife einer Generierung
//
// Dieses Modul enthaelt:
// - Run: Pumpt Token-Bytes der Engine durch die Bridge zum Host
// - flushPending: Liefert zurueckgehaltenen Text aus
//
// Ablauf pro Fragment (Reihenfolge ist wichtig): Budget pruefen,
// dekodieren, auf vollstaendige Stop-Sequenz pruefen, auf moeglichen
// Stop-Sequenz-Anfang pruefen, sonst ausliefern. Das Budget steht
// bewusst vor der Stop-Behandlung, sonst koennte eine Sequenz die
// dauerhaft zurueckgehalten wird das Limit umgehen. Die Bridge
// garantiert dass nur vollstaendige Zeichen ankommen; ein
// Incomplete-Check wie im Rest der Pipeline ist hier nicht noetig.
package textrunner

import (
	"context"
	"log/slog"
	"strings"

	"github.com/androgpt/textbridge/bridge"
	"github.com/androgpt/textbridge/logutil"
)

// Run treibt eine Sequenz bis zum Ende: Engine-Fragmente werden durch
// die Bridge-Session dekodiert, auf Stop-Sequenzen geprueft und auf dem
// Responses-Kanal ausgeliefert. Der Kanal wird beim Ruecksprung
// geschlossen; danach ist seq.DoneReason gueltig.
//
// Bei Context-Abbruch wird die Bridge-Session verworfen (Abort, kein
// Flush): die restlichen Bytes gehoeren zu einer abgeschnittenen,
// nicht zu einer abgeschlossenen Ausgabe.
func (r *Runner) Run(ctx context.Context, seq *Sequence, src TokenSource) error {
	if err := r.seqsSem.Acquire(ctx, 1); err != nil {
		seq.doneReason = DoneReasonCancelled
		close(seq.responses)
		return err
	}
	defer r.seqsSem.Release(1)
	defer close(seq.responses)

	for {
		select {
		case <-ctx.Done():
			seq.session.Abort()
			seq.doneReason = DoneReasonCancelled
			return ctx.Err()
		default:
		}

		// Budget-Pruefung bedingungslos vor jedem Fragment - auch
		// waehrend Text wegen eines moeglichen Stop-Anfangs
		// zurueckgehalten wird. Sonst waechst eine Sequenz deren
		// Ausgabe dauerhaft wie ein Stop-Anfang aussieht unbegrenzt.
		if seq.numPredict > 0 && seq.numPredicted >= seq.numPredict {
			slog.Debug("sequence hit fragment budget", "numPredict", seq.numPredict)
			seq.finishSession()
			seq.doneReason = DoneReasonLimit
			return seq.flushPending(ctx)
		}

		piece, ok := src.Next()
		if !ok {
			break
		}
		seq.numPredicted++

		units := seq.session.Feed(piece)
		if len(units) > 0 {
			// Zurueck in UTF-8 fuer die Stop-Suche; dieselbe
			// Validierung wie beim Prompt-Encoding
			seq.pendingPieces = append(seq.pendingPieces, string(bridge.Encode(units)))
		}

		joined := strings.Join(seq.pendingPieces, "")

		if ok, stop := FindStop(joined, seq.stop); ok {
			slog.Debug("hit stop sequence", "pending", seq.pendingPieces, "stop", stop)
			seq.pendingPieces, _ = TruncateStop(seq.pendingPieces, stop)
			// Carry-Over verwerfen: nach der Stop-Sequenz kommt nichts mehr
			seq.session.Abort()
			seq.doneReason = DoneReasonStop
			return seq.flushPending(ctx)
		}

		if ContainsStopSuffix(joined, seq.stop) {
			logutil.Trace("holding back possible stop prefix", "pending", joined)
			continue
		}

		if err := seq.flushPending(ctx); err != nil {
			return err
		}
	}

	// Engine fertig: Rest der Session flushen und ausliefern
	seq.finishSession()
	seq.doneReason = DoneReasonStop
	return seq.flushPending(ctx)
}

// finishSession flusht die Bridge-Session und haengt einen eventuellen
// Rest an die Pending-Stuecke an
func (seq *Sequence) finishSession() {
	if units := seq.session.Finish(); len(units) > 0 {
		seq.pendingPieces = append(seq.pendingPieces, string(bridge.Encode(units)))
	}
}

// flushPending liefert alle zurueckgehaltenen Stuecke als einen String
// aus. Bricht ab wenn der Context endet waehrend der Host nicht liest.
func (seq *Sequence) flushPending(ctx context.Context) error {
	joined := strings.Join(seq.pendingPieces, "")
	seq.pendingPieces = seq.pendingPieces[:0]

	// Abbruch gewinnt gegen Auslieferung: nach Cancel darf kein
	// weiterer Text mehr beim Host ankommen
	if err := ctx.Err(); err != nil {
		seq.session.Abort()
		seq.doneReason = DoneReasonCancelled
		return err
	}

	if len(joined) == 0 {
		return nil
	}

	select {
	case seq.responses <- joined:
		return nil
	case <-ctx.Done():
		seq.session.Abort()
		seq.doneReason = DoneReasonCancelled
		return ctx.Err()
	}
}
