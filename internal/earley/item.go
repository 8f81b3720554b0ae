package earley

import "fmt"

// Item is a dotted rule together with the column it started in. The end
// column is implicit: it is whichever column's agenda the item currently
// lives in.
//
// Item is immutable and value-comparable, so it can be used directly as a
// map key for duplicate detection. Rule is held by pointer because grammar
// rules are created once at load time and never mutated; comparing rule
// pointers is equivalent to comparing rule identity within a single loaded
// grammar.
type Item struct {
	Rule  *Rule
	Dot   int
	Start int
}

// IsComplete returns whether the dot has reached the end of the rule's RHS.
func (it Item) IsComplete() bool {
	return it.Dot == len(it.Rule.RHS)
}

// NextSymbol returns the symbol immediately after the dot, and ok=false if
// the item is already complete.
func (it Item) NextSymbol() (sym string, ok bool) {
	if it.IsComplete() {
		return "", false
	}
	return it.Rule.RHS[it.Dot], true
}

// Advance returns a new Item with the dot moved one position to the right.
// It panics if called on a complete item, since advancing past the end of a
// rule's RHS is a programmer error, not a representable state.
func (it Item) Advance() Item {
	if it.IsComplete() {
		panic("earley: cannot advance the dot past the end of a complete item")
	}
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Start: it.Start}
}

// String gives a human-readable dotted-rule representation, e.g.
// "(0, S -> NP • VP)".
func (it Item) String() string {
	dotted := make([]string, 0, len(it.Rule.RHS)+1)
	dotted = append(dotted, it.Rule.RHS[:it.Dot]...)
	dotted = append(dotted, "•")
	dotted = append(dotted, it.Rule.RHS[it.Dot:]...)

	out := it.Rule.LHS + " ->"
	for _, s := range dotted {
		out += " " + s
	}
	return fmt.Sprintf("(%d, %s)", it.Start, out)
}
