package earley

import "strings"

// Render follows item's backpointers (as recorded in column's tip map) and
// emits the bracketed S-expression for its derivation, e.g.
// "( ROOT ( S a))". item must be complete; its tip's backpointers must have
// one entry per RHS position, per the Tip invariants in spec. §3.
func (c *Chart) Render(item Item, column int) string {
	var sb strings.Builder
	c.render(&sb, item, column)
	return sb.String()
}

func (c *Chart) render(sb *strings.Builder, item Item, column int) {
	tip, ok := c.Columns[column].FindTip(item)
	if !ok {
		panic("earley: render called on an item with no recorded tip")
	}
	if len(tip.Backpointers) != item.Dot || item.Dot != len(item.Rule.RHS) {
		panic("earley: tip/backpointer arity mismatch during render")
	}

	sb.WriteString("( ")
	sb.WriteString(item.Rule.LHS)

	for i, sym := range item.Rule.RHS {
		bp := tip.Backpointers[i]
		sb.WriteString(" ")
		if !bp.Nonterminal {
			sb.WriteString(sym)
			continue
		}
		c.render(sb, bp.Child, bp.ChildColumn)
	}

	sb.WriteString(")")
}
