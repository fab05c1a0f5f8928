// Package readline - Cell-Modul
//
// Die Cell ist ein Briefkasten mit genau einem Platz. Der Host legt Zeichen
// ab (Publish/Offer), der Zeilen-Assembler holt sie blockierend (Consume).
//
// Hauptkomponenten:
// - Cell: Mutex + zwei Condition-Variablen (filled, drained)
// - Publish: ersetzt einen noch nicht gelesenen Wert (last-write-wins)
// - Offer: wartet bis der Platz frei ist
// - Consume/ConsumeContext: blockierendes Lesen

package readline

import (
	"context"
	"log/slog"
	"sync"
)

// Cell haelt hoechstens einen ungelesenen Wert
type Cell struct {
	mu          sync.Mutex
	filled      *sync.Cond
	drained     *sync.Cond
	value       rune
	ready       bool
	overwritten uint64
	log         *slog.Logger
}

// NewCell erstellt eine leere Cell
func NewCell() *Cell {
	c := &Cell{log: slog.Default()}
	c.filled = sync.NewCond(&c.mu)
	c.drained = sync.NewCond(&c.mu)
	return c
}

// Publish legt r ab und weckt genau einen wartenden Leser.
// Ein noch nicht gelesener Wert wird ueberschrieben.
func (c *Cell) Publish(r rune) {
	c.mu.Lock()
	if c.ready {
		c.overwritten++
		c.log.Debug("cell: pending value replaced", "old", c.value, "new", r)
	}
	c.value = r
	c.ready = true
	c.mu.Unlock()
	c.filled.Signal()
}

// Offer wartet bis der Platz frei ist und legt dann r ab
func (c *Cell) Offer(ctx context.Context, r rune) error {
	stop := c.wakeOnDone(ctx, c.drained)
	defer stop()

	c.mu.Lock()
	for c.ready {
		if err := ctx.Err(); err != nil {
			c.mu.Unlock()
			return err
		}
		c.drained.Wait()
	}
	c.value = r
	c.ready = true
	c.mu.Unlock()
	c.filled.Signal()
	return nil
}

// Consume blockiert bis ein Wert bereitliegt. Ohne Publish wartet es
// unbegrenzt; fuer ein Timeout siehe ConsumeContext.
func (c *Cell) Consume() rune {
	c.mu.Lock()
	for !c.ready {
		c.filled.Wait()
	}
	r := c.take()
	c.mu.Unlock()
	c.drained.Signal()
	return r
}

// ConsumeContext wie Consume, bricht aber mit ctx.Err() ab.
// Ein bereits vorliegender Wert hat Vorrang vor dem Abbruch.
func (c *Cell) ConsumeContext(ctx context.Context) (rune, error) {
	if ctx.Done() == nil {
		return c.Consume(), nil
	}

	stop := c.wakeOnDone(ctx, c.filled)
	defer stop()

	c.mu.Lock()
	for !c.ready {
		if err := ctx.Err(); err != nil {
			c.mu.Unlock()
			return 0, err
		}
		c.filled.Wait()
	}
	r := c.take()
	c.mu.Unlock()
	c.drained.Signal()
	return r, nil
}

// Pending meldet ob ein ungelesener Wert vorliegt
func (c *Cell) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Overwritten zaehlt die durch Publish ersetzten Werte
func (c *Cell) Overwritten() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overwritten
}

// take muss mit gehaltenem Mutex aufgerufen werden
func (c *Cell) take() rune {
	c.ready = false
	return c.value
}

// wakeOnDone weckt alle Wartenden auf cond, sobald ctx endet
func (c *Cell) wakeOnDone(ctx context.Context, cond *sync.Cond) func() bool {
	return context.AfterFunc(ctx, func() {
		c.mu.Lock()
		cond.Broadcast()
		c.mu.Unlock()
	})
}
