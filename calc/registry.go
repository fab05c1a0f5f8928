// registry.go - Operationen des Rechners
//
// Operationen werden in Registrierungsreihenfolge gehalten, damit der
// Prompt die Symbole stabil auflistet.
package calc

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Operation verknuepft zwei Ganzzahlen
type Operation func(a, b int64) int64

var ErrUnknownOperation = errors.New("unknown operation")

func Add(a, b int64) int64 { return a + b }
func Sub(a, b int64) int64 { return a - b }

// Registry bildet Symbole auf Operationen ab
type Registry struct {
	ops *orderedmap.OrderedMap[string, Operation]
}

func NewRegistry() *Registry {
	return &Registry{ops: orderedmap.New[string, Operation]()}
}

// DefaultRegistry enthaelt "+" und "-"
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("+", Add)
	r.Register("-", Sub)
	return r
}

// Register fuegt eine Operation hinzu oder ersetzt sie (Position bleibt)
func (r *Registry) Register(symbol string, op Operation) {
	r.ops.Set(symbol, op)
}

func (r *Registry) Lookup(symbol string) (Operation, bool) {
	return r.ops.Get(symbol)
}

// Symbols gibt die Symbole in Registrierungsreihenfolge zurueck
func (r *Registry) Symbols() []string {
	symbols := make([]string, 0, r.ops.Len())
	for pair := r.ops.Oldest(); pair != nil; pair = pair.Next() {
		symbols = append(symbols, pair.Key)
	}
	return symbols
}

func (r *Registry) Apply(symbol string, a, b int64) (int64, error) {
	op, ok := r.Lookup(symbol)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, symbol)
	}
	return op(a, b), nil
}
