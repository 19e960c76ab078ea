// config.go - Environment-Konfiguration fuer die Text-Bridge
//
// Dieses Modul enthaelt:
// - Var: Liest und bereinigt eine Environment-Variable
// - LogLevel: Log-Level aus ANDROGPT_DEBUG
// - NumParallel: Maximale Anzahl gleichzeitiger Generierungs-Sequenzen
// - LogInvalid: Diagnose-Logging fuer verworfene Bytes
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var liest eine Environment-Variable und entfernt Whitespace und Quotes
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel gibt das Log-Level zurueck.
// ANDROGPT_DEBUG=1 aktiviert Debug, numerische Werte werden
// als slog-Level interpretiert (z.B. 2 fuer Trace).
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("ANDROGPT_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// NumParallel gibt die maximale Anzahl gleichzeitiger Sequenzen zurueck.
// Die umgebende App erlaubt eine Generierung zur Zeit, daher Default 1.
func NumParallel() int64 {
	if s := Var("ANDROGPT_NUM_PARALLEL"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err != nil {
			slog.Warn("invalid environment variable, using default", "key", "ANDROGPT_NUM_PARALLEL", "value", s, "default", 1)
		} else if n > 0 {
			return n
		}
	}
	return 1
}

// LogInvalid gibt an ob verworfene Bytes einzeln geloggt werden sollen.
// Default aus, damit fehlerhafte Engine-Ausgabe das Log nicht flutet.
func LogInvalid() bool {
	if s := Var("ANDROGPT_LOG_INVALID"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return true
		}
		return b
	}
	return false
}
