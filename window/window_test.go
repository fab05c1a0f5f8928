package window

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jconsole/jconsole/readline"
)

func newTestWindow(t *testing.T) (*Window, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	w := NewWithScreen(s, "Test")
	require.NoError(t, w.Init())
	s.SetSize(40, 8)
	t.Cleanup(w.Fini)
	return w, s
}

func run(t *testing.T, w *Window, p readline.Publisher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		//nolint:errcheck
		w.Run(ctx, p)
	}()
}

func row(s tcell.SimulationScreen, y int) string {
	width, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func typeText(s tcell.SimulationScreen, text string) {
	for _, r := range text {
		switch r {
		case '\n':
			s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		case '\b':
			s.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
		default:
			s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
		}
	}
}

func TestWindowReadLine(t *testing.T) {
	w, s := newTestWindow(t)
	inst := readline.New(w)
	run(t, w, inst)

	typeText(s, "4x\b2\n")
	line, cancelled := inst.ReadLine("Zahl: ")
	require.False(t, cancelled)
	assert.Equal(t, "42", line)
	assert.Equal(t, "Zahl: 42\n", w.Text())

	require.Eventually(t, func() bool { return row(s, 1) == "Zahl: 42" }, time.Second, time.Millisecond)
	assert.Contains(t, row(s, 0), "Test")
	assert.Equal(t, hintExit, row(s, 7))
}

func TestWindowClose(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		w, s := newTestWindow(t)
		inst := readline.New(w)
		run(t, w, inst)

		typeText(s, "ab")
		s.InjectKey(key, 0, tcell.ModNone)

		line, cancelled := inst.ReadLine("")
		assert.True(t, cancelled)
		assert.Empty(t, line)
	}
}

func TestWindowScrolls(t *testing.T) {
	w, s := newTestWindow(t)
	for i := range 10 {
		w.Append(strings.Repeat("x", i) + "\n")
	}

	// 6 Textzeilen: die letzte ist die leere Zeile hinter dem letzten \n
	assert.Equal(t, strings.Repeat("x", 5), row(s, 1))
	assert.Equal(t, strings.Repeat("x", 9), row(s, 5))
	assert.Empty(t, row(s, 6))
}

func TestWindowWidth(t *testing.T) {
	w, s := newTestWindow(t)
	w.SetWidth(10)
	w.Append(strings.Repeat("y", 15))

	assert.Equal(t, strings.Repeat("y", 10), row(s, 1))
	assert.Equal(t, strings.Repeat("y", 5), row(s, 2))
}

func TestWindowChooser(t *testing.T) {
	tests := []struct {
		name string
		keys []tcell.Key
		want string
	}{
		{"erster Eintrag", []tcell.Key{tcell.KeyEnter}, "a.txt"},
		{"zweiter Eintrag", []tcell.Key{tcell.KeyDown, tcell.KeyEnter}, "b.txt"},
		{"rundum", []tcell.Key{tcell.KeyUp, tcell.KeyEnter}, "b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, s := newTestWindow(t)
			inst := readline.New(w)
			inst.SetPicking(true)
			w.Picker = inst
			w.Candidates = func() ([]string, error) { return []string{"a.txt", "b.txt"}, nil }

			result := make(chan string)
			go func() {
				line, _ := inst.ReadLine("Datei: ")
				result <- line
			}()
			require.Eventually(t, inst.PickEnabled, time.Second, time.Millisecond)
			run(t, w, inst)

			s.InjectKey(tcell.KeyF3, 0, tcell.ModNone)
			for _, k := range tt.keys {
				s.InjectKey(k, 0, tcell.ModNone)
			}

			select {
			case line := <-result:
				assert.Equal(t, tt.want, line)
			case <-time.After(2 * time.Second):
				t.Fatal("keine Zeile erhalten")
			}
			assert.Equal(t, "Datei: "+tt.want+"\n", w.Text())
		})
	}
}

func TestWindowChooserAbort(t *testing.T) {
	w, s := newTestWindow(t)
	inst := readline.New(w)
	inst.SetPicking(true)
	w.Picker = inst

	result := make(chan string)
	go func() {
		line, _ := inst.ReadLine("")
		result <- line
	}()
	require.Eventually(t, inst.PickEnabled, time.Second, time.Millisecond)
	run(t, w, inst)

	s.InjectKey(tcell.KeyF3, 0, tcell.ModNone)
	require.Eventually(t, w.chooserOpen, time.Second, time.Millisecond)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.Eventually(t, func() bool { return !w.chooserOpen() }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return !inst.Cell().Pending() }, time.Second, time.Millisecond)
	typeText(s, "x.txt\n")

	assert.Equal(t, "x.txt", <-result)
}

func TestWindowF3WithoutPicking(t *testing.T) {
	w, s := newTestWindow(t)
	inst := readline.New(w)
	w.Picker = inst
	run(t, w, inst)

	s.InjectKey(tcell.KeyF3, 0, tcell.ModNone)
	typeText(s, "ok\n")

	line, _ := inst.ReadLine("")
	assert.Equal(t, "ok", line)
	assert.False(t, w.chooserOpen())
}

func TestWindowRunStopsOnCancel(t *testing.T) {
	w, _ := newTestWindow(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() { done <- w.Run(ctx, readline.New(w)) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run endet nicht")
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{""}, wrap("", 5))
	assert.Equal(t, []string{"abcde", "f", ""}, wrap("abcdef\n", 5))
	assert.Equal(t, []string{"日本", "語"}, wrap("日本語", 5))
}
