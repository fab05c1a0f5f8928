package console

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jconsole/jconsole/readline"
)

func newTestConsole(t *testing.T, input string, opts Options) (*Console, *readline.TextSink) {
	t.Helper()
	sink := &readline.TextSink{}
	con := New(sink, opts)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		//nolint:errcheck
		readline.NewScript(input).Run(ctx, con)
	}()
	return con, sink
}

func TestReadIntRetry(t *testing.T) {
	con, sink := newTestConsole(t, "abc\n42\n", Options{})

	n, cancelled := con.ReadInt("Zahl: ")
	require.False(t, cancelled)
	assert.Equal(t, 42, n)
	assert.Equal(t, 1, strings.Count(sink.String(), msgLong))
	assert.Equal(t, "Zahl: abc\n"+msgLong+"42\n", sink.String())
}

func TestReadIntEmptyLine(t *testing.T) {
	con, sink := newTestConsole(t, "\n\n", Options{})

	n, cancelled := con.ReadInt("")
	require.False(t, cancelled)
	assert.Zero(t, n)

	m, _ := con.ReadLongDefault("", 7)
	assert.Equal(t, int64(7), m)
	assert.NotContains(t, sink.String(), msgLong)
}

func TestReadCancelled(t *testing.T) {
	con, _ := newTestConsole(t, "1\x00", Options{})

	n, cancelled := con.ReadLongDefault("", 5)
	assert.True(t, cancelled)
	assert.Equal(t, int64(5), n)
}

func TestReadShortTruncates(t *testing.T) {
	con, _ := newTestConsole(t, "70000\n", Options{})

	n, _ := con.ReadShort("")
	assert.Equal(t, int16(4464), n)
}

func TestReadDouble(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		retries int
	}{
		{"einfach", "2.5\n", 2.5, 0},
		{"Leerzeichen", " 2.5 \n", 2.5, 0},
		{"Exponent nach Fehler", "x\n1e3\n", 1000, 1},
		{"Komma ist kein Trennzeichen", "2,5\n\n", 0, 1},
		{"leer", "\n", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con, sink := newTestConsole(t, tt.input, Options{})

			d, cancelled := con.ReadDouble("")
			require.False(t, cancelled)
			assert.InDelta(t, tt.want, d, 1e-9)
			assert.Equal(t, tt.retries, strings.Count(sink.String(), msgDouble))
		})
	}
}

func TestReadFloat(t *testing.T) {
	con, _ := newTestConsole(t, "0.5\n", Options{})

	f, _ := con.ReadFloat("")
	assert.Equal(t, float32(0.5), f)
}

func TestReadBool(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		retries int
	}{
		{"ja\n", true, 0},
		{"Y\n", true, 0},
		{"true\n", true, 0},
		{"1\n", true, 0},
		{"Nein\n", false, 0},
		{"f\n", false, 0},
		{"0\n", false, 0},
		{"\n", false, 0},
		{"vielleicht\nj\n", true, 1},
		{"2\nx\nno\n", false, 2},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			con, sink := newTestConsole(t, tt.input, Options{})

			b, cancelled := con.ReadBool("")
			require.False(t, cancelled)
			assert.Equal(t, tt.want, b)
			assert.Equal(t, tt.retries, strings.Count(sink.String(), msgBool))
		})
	}
}

func TestReadBoolDefault(t *testing.T) {
	con, _ := newTestConsole(t, "\n", Options{})

	b, _ := con.ReadBoolDefault("", true)
	assert.True(t, b)
}

func TestReadChar(t *testing.T) {
	con, _ := newTestConsole(t, "xyz\n\nä\n", Options{})

	r, _ := con.ReadChar("")
	assert.Equal(t, 'x', r)

	r, _ = con.ReadChar("")
	assert.Equal(t, '\n', r)

	r, _ = con.ReadChar("")
	assert.Equal(t, 'ä', r)
}

func TestReadString(t *testing.T) {
	con, _ := newTestConsole(t, "hallo welt\n", Options{})

	s, cancelled := con.ReadString("")
	require.False(t, cancelled)
	assert.Equal(t, "hallo welt", s)
}

func TestReadFilename(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ohne Verzeichnis", "messung.txt\n", filepath.Join(dir, "messung.txt")},
		{"absolut", "/tmp/x.txt\n", "/tmp/x.txt"},
		{"relativ mit Verzeichnis", "sub/x.txt\n", "sub/x.txt"},
		{"leer", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con, _ := newTestConsole(t, tt.input, Options{DataPath: dir})

			name, cancelled := con.ReadFilename("")
			require.False(t, cancelled)
			assert.Equal(t, tt.want, name)
			assert.False(t, con.Readline().PickEnabled())
		})
	}
}

func TestReadFilenameWithoutDataPath(t *testing.T) {
	con, _ := newTestConsole(t, "messung.txt\n", Options{})

	name, _ := con.ReadFilename("")
	assert.Equal(t, "messung.txt", name)
}

func TestReadTimeout(t *testing.T) {
	sink := &readline.TextSink{}
	con := New(sink, Options{ReadTimeout: 10 * time.Millisecond})

	n, cancelled := con.ReadLongDefault("Zahl: ", 3)
	assert.True(t, cancelled)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, "Zahl: \n", sink.String())
}

func TestExit(t *testing.T) {
	con := New(&readline.TextSink{}, Options{})

	done := make(chan bool)
	go func() {
		_, cancelled := con.ReadLine("")
		done <- cancelled
	}()
	require.Eventually(t, con.Readline().Reading, time.Second, time.Millisecond)

	con.Exit()
	assert.True(t, <-done)
}

func TestTextFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.dat"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	con := New(&readline.TextSink{}, Options{DataPath: dir})
	files, err := con.TextFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, files)
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *Console)
		want string
	}{
		{"Print", func(c *Console) { c.Print("a", 1) }, "a1"},
		{"Println", func(c *Console) { c.Println(1, 2) }, "1 2\n"},
		{"Padded", func(c *Console) { c.PrintPadded(42, 5) }, "   42"},
		{"Padded zu lang", func(c *Console) { c.PrintPadded("laenger", 2) }, "laenger"},
		{"Padded breite Zeichen", func(c *Console) { c.PrintPadded("日本", 6) }, "  日本"},
		{"PrintlnPadded", func(c *Console) { c.PrintlnPadded(true, 6) }, "  true\n"},
		{"Float", func(c *Console) { c.PrintFloat(3.14159, 7, 2) }, "   3.14"},
		{"Float ohne Breite", func(c *Console) { c.PrintlnFloat(2.5, 0, 3) }, "2.500\n"},
		{"NaN", func(c *Console) { c.PrintFloat(math.NaN(), 5, 2) }, "  NaN"},
		{"Inf", func(c *Console) { c.PrintFloat(math.Inf(-1), 0, 2) }, "-Infinity"},
		{"Repeat", func(c *Console) { c.PrintRepeat(3, '*') }, "***"},
		{"Repeat negativ", func(c *Console) { c.PrintRepeat(-1, '*') }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &readline.TextSink{}
			tt.fn(New(sink, Options{}))
			assert.Equal(t, tt.want, sink.String())
		})
	}
}

func TestPrintFloatGerman(t *testing.T) {
	sink := &readline.TextSink{}
	con := New(sink, Options{Lang: language.German})

	con.PrintFloat(3.14159, 6, 2)
	assert.Equal(t, "  3,14", sink.String())
}

func TestClear(t *testing.T) {
	sink := &readline.TextSink{}
	con := New(sink, Options{})

	con.Println("weg")
	con.Clear()
	assert.Empty(t, sink.String())
}
