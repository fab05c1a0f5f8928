// read.go - Eingabe-Methoden der Console
//
// Alle Methoden liefern zusaetzlich cancelled: true, wenn die Konsole
// geschlossen wurde. Eine leere Zeile liefert den Default ohne Wiederholung,
// eine Fehleingabe fuehrt zu einer festen Fehlermeldung als neuem Prompt.
package console

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	msgLong   = "Fehler! Bitte eine Ganzzahl: "
	msgDouble = "Fehler! Bitte eine Gleitkommazahl: "
	msgBool   = "Fehler! Bitte einen Wahrheitswert: "
)

var (
	trueWords  = []string{"TRUE", "YES", "JA", "T", "Y", "J", "1"}
	falseWords = []string{"FALSE", "NO", "NEIN", "F", "N", "0"}
)

// ReadLine liest eine Zeile
func (c *Console) ReadLine(prompt string) (string, bool) {
	return c.readLine(prompt)
}

// ReadString ist ein Alias fuer ReadLine
func (c *Console) ReadString(prompt string) (string, bool) {
	return c.readLine(prompt)
}

// ReadChar liefert das erste Zeichen der Zeile, '\n' bei leerer Zeile
func (c *Console) ReadChar(prompt string) (rune, bool) {
	line, cancelled := c.readLine(prompt)
	for _, r := range line {
		return r, cancelled
	}
	return '\n', cancelled
}

// ReadLong liest eine Ganzzahl; leere Zeile = 0
func (c *Console) ReadLong(prompt string) (int64, bool) {
	return c.ReadLongDefault(prompt, 0)
}

// ReadLongDefault liest eine Ganzzahl; leere Zeile = def
func (c *Console) ReadLongDefault(prompt string, def int64) (int64, bool) {
	for {
		line, cancelled := c.readLine(prompt)
		if cancelled {
			return def, true
		}
		if line == "" {
			return def, false
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return n, false
		}
		c.log.Debug("console: not an integer", "input", line)
		prompt = msgLong
	}
}

// ReadInt liest eine Ganzzahl
func (c *Console) ReadInt(prompt string) (int, bool) {
	n, cancelled := c.ReadLong(prompt)
	return int(n), cancelled
}

// ReadShort liest eine Ganzzahl und schneidet sie auf 16 Bit ab
func (c *Console) ReadShort(prompt string) (int16, bool) {
	n, cancelled := c.ReadLong(prompt)
	return int16(n), cancelled
}

// ReadDouble liest eine Gleitkommazahl; leere Zeile = 0.0
func (c *Console) ReadDouble(prompt string) (float64, bool) {
	return c.ReadDoubleDefault(prompt, 0)
}

// ReadDoubleDefault liest eine Gleitkommazahl; leere Zeile = def.
// Fuehrende und folgende Leerzeichen sind erlaubt.
func (c *Console) ReadDoubleDefault(prompt string, def float64) (float64, bool) {
	for {
		line, cancelled := c.readLine(prompt)
		if cancelled {
			return def, true
		}
		if line == "" {
			return def, false
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return d, false
		}
		c.log.Debug("console: not a number", "input", line)
		prompt = msgDouble
	}
}

// ReadFloat liest eine Gleitkommazahl einfacher Genauigkeit
func (c *Console) ReadFloat(prompt string) (float32, bool) {
	d, cancelled := c.ReadDouble(prompt)
	return float32(d), cancelled
}

// ReadBool liest einen Wahrheitswert; leere Zeile = false
func (c *Console) ReadBool(prompt string) (bool, bool) {
	return c.ReadBoolDefault(prompt, false)
}

// ReadBoolDefault liest einen Wahrheitswert (ja/nein, true/false, 1/0, ...)
func (c *Console) ReadBoolDefault(prompt string, def bool) (bool, bool) {
	for {
		line, cancelled := c.readLine(prompt)
		if cancelled {
			return def, true
		}
		if line == "" {
			return def, false
		}
		if b, ok := parseBool(line); ok {
			return b, false
		}
		prompt = msgBool
	}
}

func parseBool(s string) (bool, bool) {
	s = strings.ToUpper(s)
	for _, w := range trueWords {
		if s == w {
			return true, true
		}
	}
	for _, w := range falseWords {
		if s == w {
			return false, true
		}
	}
	return false, false
}

// ReadFilename liest einen Dateinamen. Waehrend der Eingabe kann der Host
// eine Dateiauswahl anbieten (F3). Namen ohne Verzeichnis wird DataPath
// vorangestellt. Eine leere Eingabe liefert "".
func (c *Console) ReadFilename(prompt string) (string, bool) {
	c.rl.SetPicking(true)
	defer c.rl.SetPicking(false)

	name, cancelled := c.readLine(prompt)
	if cancelled || name == "" {
		return "", cancelled
	}
	return c.resolve(name), false
}

func (c *Console) resolve(name string) string {
	if c.opts.DataPath == "" {
		return name
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	if runtime.GOOS == "windows" && strings.ContainsRune(name, ':') {
		return name
	}
	return filepath.Join(c.opts.DataPath, name)
}

// TextFiles listet die *.txt-Dateien in DataPath (Kandidaten fuer F3)
func (c *Console) TextFiles() ([]string, error) {
	dir := c.opts.DataPath
	if dir == "" {
		dir = "."
	}
	return filepath.Glob(filepath.Join(dir, "*.txt"))
}
