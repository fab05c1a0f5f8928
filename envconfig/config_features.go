// config_features.go - Feature-Flags und Darstellung
//
// Dieses Modul enthaelt:
// - Feature-Flags (NoEcho, Window)
// - Darstellung (Title, LogFile)
package envconfig

// =============================================================================
// Feature-Flags
// =============================================================================

var (
	// NoEcho unterdrueckt das Echo getippter Zeichen
	NoEcho = Bool("JCONSOLE_NOECHO")

	// Window startet standardmaessig den Fenster-Host statt des Terminals
	Window = Bool("JCONSOLE_WINDOW")
)

// =============================================================================
// Darstellung und Logging
// =============================================================================

var (
	// Title ist der Fenstertitel
	Title = StringWithDefault("JCONSOLE_TITLE", "Java-Console")

	// LogFile leitet das Log in eine Datei um (noetig im Fenster-Modus)
	LogFile = String("JCONSOLE_LOGFILE")

	// Width ist die Breite des Fensters in Spalten, 0 = Bildschirmbreite
	Width = Uint("JCONSOLE_WIDTH", 0)
)
