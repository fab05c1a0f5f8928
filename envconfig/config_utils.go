// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault/Bool: Boolean-Getter mit Default-Wert
// - String/StringWithDefault: String-Getter
// - Uint: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// =============================================================================
// String-Getter
// =============================================================================

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// StringWithDefault gibt eine Funktion zurueck, die einen String mit Default liest
func StringWithDefault(key, defaultValue string) func() string {
	return func() string {
		if s := Var(key); s != "" {
			return s
		}
		return defaultValue
	}
}

// =============================================================================
// Integer-Getter
// =============================================================================

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"JCONSOLE_DEBUG":        {"JCONSOLE_DEBUG", LogLevel(), "Show additional debug information (e.g. JCONSOLE_DEBUG=1)"},
		"JCONSOLE_DATA":         {"JCONSOLE_DATA", DataPath(), "Directory prepended to bare file names"},
		"JCONSOLE_READ_TIMEOUT": {"JCONSOLE_READ_TIMEOUT", ReadTimeout(), "Give up on a single input after this duration (default: never)"},
		"JCONSOLE_LANG":         {"JCONSOLE_LANG", Lang(), "Language for formatted numbers (default: system locale)"},
		"JCONSOLE_NOECHO":       {"JCONSOLE_NOECHO", NoEcho(), "Do not echo typed characters"},
		"JCONSOLE_WINDOW":       {"JCONSOLE_WINDOW", Window(), "Use the full screen window instead of the plain terminal"},
		"JCONSOLE_TITLE":        {"JCONSOLE_TITLE", Title(), "Window title (default \"Java-Console\")"},
		"JCONSOLE_LOGFILE":      {"JCONSOLE_LOGFILE", LogFile(), "Write logs to this file instead of stderr"},
		"JCONSOLE_WIDTH":        {"JCONSOLE_WIDTH", Width(), "Window width in columns (default: screen width)"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
