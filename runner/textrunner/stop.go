// stop.go - Stop-Sequenz-Erkennung ueber gestreamtem Text
//
// Dieses Modul enthaelt:
// - FindStop: Sucht eine vollstaendige Stop-Sequenz
// - ContainsStopSuffix: Erkennt einen moeglichen Stop-Sequenz-Anfang am Ende
// - TruncateStop: Schneidet Pending-Stuecke an der Stop-Sequenz ab
//
// Stop-Sequenzen koennen ueber mehrere Token-Fragmente verteilt
// eintreffen; deshalb wird Text zurueckgehalten solange sein Ende
// ein Praefix einer Stop-Sequenz ist.
package textrunner

import "strings"

// FindStop sucht die erste vollstaendig enthaltene Stop-Sequenz
func FindStop(sequence string, stops []string) (bool, string) {
	for _, stop := range stops {
		if strings.Contains(sequence, stop) {
			return true, stop
		}
	}
	return false, ""
}

// ContainsStopSuffix meldet ob sequence mit einem echten Praefix
// einer Stop-Sequenz endet. Solcher Text darf noch nicht ausgeliefert
// werden: das naechste Fragment koennte die Stop-Sequenz vervollstaendigen.
func ContainsStopSuffix(sequence string, stops []string) bool {
	for _, stop := range stops {
		for i := 1; i < len(stop); i++ {
			if strings.HasSuffix(sequence, stop[:i]) {
				return true
			}
		}
	}
	return false
}

// TruncateStop entfernt die Stop-Sequenz und alles danach aus den
// Pending-Stuecken. Gibt zusaetzlich zurueck ob dabei ein Stueck
// mitten durchgeschnitten wurde (die Stop-Sequenz begann innerhalb
// eines Fragments).
func TruncateStop(pieces []string, stop string) ([]string, bool) {
	joined := strings.Join(pieces, "")

	index := strings.Index(joined, stop)
	if index == -1 {
		return pieces, false
	}

	joined = joined[:index]

	// Auf die urspruenglichen Stueck-Grenzen zurueckverteilen
	var result []string
	truncated := false
	start := 0
	for _, piece := range pieces {
		if start >= len(joined) {
			break
		}
		end := start + len(piece)
		if end > len(joined) {
			end = len(joined)
			truncated = true
		}
		result = append(result, joined[start:end])
		start = end
	}

	return result, truncated
}
