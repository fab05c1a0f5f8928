// config.go - Haupt-Konfigurationsfunktionen fuer jconsole
//
// Dieses Modul enthaelt:
// - DataPath: Standardverzeichnis fuer Dateinamen (JCONSOLE_DATA)
// - ReadTimeout: optionales Timeout fuer Eingaben (JCONSOLE_READ_TIMEOUT)
// - Lang: Sprache fuer formatierte Ausgaben (JCONSOLE_LANG)
// - LogLevel: Gibt Log-Level zurueck (JCONSOLE_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Feature-Flags
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jeandeaual/go-locale"
)

// DataPath gibt das Standardverzeichnis fuer Dateinamen zurueck
// Konfigurierbar via JCONSOLE_DATA
// Default: leer (Dateinamen werden unveraendert uebernommen).
// Ein nicht existierendes Verzeichnis wird ignoriert.
func DataPath() string {
	s := Var("JCONSOLE_DATA")
	if s == "" {
		return ""
	}

	fi, err := os.Stat(s)
	if err != nil || !fi.IsDir() {
		slog.Warn("data path is not a directory, ignoring", "path", s)
		return ""
	}

	return s
}

// ReadTimeout gibt das Timeout fuer eine einzelne Eingabe zurueck
// Konfigurierbar via JCONSOLE_READ_TIMEOUT (Dauer oder Sekunden)
// 0 oder negative Werte = kein Timeout (Default)
func ReadTimeout() (timeout time.Duration) {
	if s := Var("JCONSOLE_READ_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			timeout = d
		} else if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			timeout = time.Duration(n) * time.Second
		} else {
			slog.Warn("invalid environment variable, using default", "key", "JCONSOLE_READ_TIMEOUT", "value", s)
		}
	}

	if timeout < 0 {
		return 0
	}

	return timeout
}

// Lang gibt die Sprache fuer Zahlenformatierung zurueck (BCP 47)
// Konfigurierbar via JCONSOLE_LANG
// Default: Systemsprache, sonst en-US
func Lang() string {
	if s := Var("JCONSOLE_LANG"); s != "" {
		return s
	}

	if l, err := locale.GetLocale(); err == nil && l != "" {
		return strings.ReplaceAll(l, "_", "-")
	}

	return "en-US"
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via JCONSOLE_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("JCONSOLE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
