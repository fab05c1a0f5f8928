// Buffer-Modul: Zeilenpuffer fuer den Zeilen-Assembler
// Der Puffer gehoert exklusiv dem laufenden ReadLine und wird pro Zeile
// neu angelegt. Die Anzeigebreite wird mit runewidth gefuehrt, damit das
// Echo beim Loeschen die richtige Spaltenzahl entfernt.

package readline

import (
	"strings"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/mattn/go-runewidth"
)

type Buffer struct {
	Buf *arraylist.List[rune]
}

func NewBuffer() *Buffer {
	return &Buffer{Buf: arraylist.New[rune]()}
}

func (b *Buffer) Add(r rune) {
	b.Buf.Add(r)
}

// Remove entfernt das letzte Zeichen; bei leerem Puffer passiert nichts
func (b *Buffer) Remove() (rune, bool) {
	n := b.Buf.Size()
	if n == 0 {
		return 0, false
	}
	r, _ := b.Buf.Get(n - 1)
	b.Buf.Remove(n - 1)
	return r, true
}

func (b *Buffer) Replace(r []rune) {
	b.Buf.Clear()
	b.Buf.Add(r...)
}

func (b *Buffer) Size() int {
	return b.Buf.Size()
}

func (b *Buffer) IsEmpty() bool {
	return b.Buf.Empty()
}

// DisplaySize zaehlt jedes Zeichen mit mindestens einer Spalte (Tab,
// kombinierende Zeichen), passend zu Erase der Anzeige
func (b *Buffer) DisplaySize() int {
	sum := 0
	for _, r := range b.Buf.Values() {
		sum += max(runewidth.RuneWidth(r), 1)
	}
	return sum
}

func (b *Buffer) String() string {
	var sb strings.Builder
	for _, r := range b.Buf.Values() {
		sb.WriteRune(r)
	}
	return sb.String()
}
