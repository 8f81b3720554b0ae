package earley

// Backpointer records, for one right-hand-side position of an item, how
// that position was derived. A zero-value Backpointer (Nonterminal == false)
// means the position was a terminal: the token itself is recoverable from
// the column, so nothing further needs to be stored.
type Backpointer struct {
	Nonterminal bool
	Child       Item
	ChildColumn int
}

// terminalBackpointer is the backpointer recorded for a scanned terminal.
var terminalBackpointer = Backpointer{}

// nonterminalBackpointer builds the backpointer recorded when a complete
// child item is attached at a given column.
func nonterminalBackpointer(child Item, column int) Backpointer {
	return Backpointer{Nonterminal: true, Child: child, ChildColumn: column}
}

// Tip is the mutable derivation metadata associated with an Item within one
// specific column: the best weight found so far for that item, and the
// backpointers needed to reconstruct the derivation that achieves it.
//
// Tip is always stored in, and retrieved from, the Column that owns the
// Item it describes; it is never attached directly to an Item.
type Tip struct {
	Weight       float64
	Backpointers []Backpointer
}

// withTerminal returns a new Tip extending this one with a terminal
// backpointer, for use when an item is advanced by SCAN. The weight carries
// forward unchanged, since scanning a terminal has no weight of its own.
func (t Tip) withTerminal() Tip {
	bp := make([]Backpointer, len(t.Backpointers)+1)
	copy(bp, t.Backpointers)
	bp[len(bp)-1] = terminalBackpointer
	return Tip{Weight: t.Weight, Backpointers: bp}
}

// withAttachment returns a new Tip extending the customer's tip (t) with a
// nonterminal backpointer to the complete child item, for use when an item
// is advanced by ATTACH. The combined weight is the sum of the customer's
// weight so far and the attached child's total weight.
func (t Tip) withAttachment(child Tip, childItem Item, childColumn int) Tip {
	bp := make([]Backpointer, len(t.Backpointers)+1)
	copy(bp, t.Backpointers)
	bp[len(bp)-1] = nonterminalBackpointer(childItem, childColumn)
	return Tip{Weight: t.Weight + child.Weight, Backpointers: bp}
}
