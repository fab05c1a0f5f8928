// config_test.go - Unit Tests fuer die Konfiguration
package envconfig

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestReadTimeout testet das Parsen des Eingabe-Timeouts
func TestReadTimeout(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"", 0},
		{"1m", time.Minute},
		{"30", 30 * time.Second},
		{"-5s", 0},
		{"quatsch", 0},
		{"\"250ms\"", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("JCONSOLE_READ_TIMEOUT", tt.value)
			if got := ReadTimeout(); got != tt.expected {
				t.Errorf("ReadTimeout() = %v, erwartet %v", got, tt.expected)
			}
		})
	}
}

// TestLogLevel testet die Abbildung von JCONSOLE_DEBUG
func TestLogLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"false", slog.LevelInfo},
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", slog.Level(-8)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("JCONSOLE_DEBUG", tt.value)
			assert.Equal(t, tt.expected, LogLevel())
		})
	}
}

// TestDataPath testet dass nur existierende Verzeichnisse gelten
func TestDataPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("JCONSOLE_DATA", dir)
	assert.Equal(t, dir, DataPath())

	t.Setenv("JCONSOLE_DATA", dir+"/gibt-es-nicht")
	assert.Empty(t, DataPath())

	t.Setenv("JCONSOLE_DATA", "")
	assert.Empty(t, DataPath())
}

func TestLang(t *testing.T) {
	t.Setenv("JCONSOLE_LANG", "de-DE")
	assert.Equal(t, "de-DE", Lang())

	t.Setenv("JCONSOLE_LANG", "")
	assert.NotEmpty(t, Lang())
}

func TestTitleAndFlags(t *testing.T) {
	t.Setenv("JCONSOLE_TITLE", "")
	assert.Equal(t, "Java-Console", Title())

	t.Setenv("JCONSOLE_TITLE", "Rechner")
	assert.Equal(t, "Rechner", Title())

	t.Setenv("JCONSOLE_NOECHO", "1")
	assert.True(t, NoEcho())

	t.Setenv("JCONSOLE_WIDTH", "abc")
	assert.Equal(t, uint(0), Width())
}

func TestValues(t *testing.T) {
	t.Setenv("JCONSOLE_NOECHO", "true")
	vals := Values()
	assert.Equal(t, "true", vals["JCONSOLE_NOECHO"])
	assert.Len(t, vals, len(AsMap()))
}
