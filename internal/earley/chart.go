package earley

// Chart holds one column per position in the tokenized sentence, plus the
// grammar and tokens it was built from. A Chart is built once per sentence
// and discarded once that sentence's result has been emitted; nothing about
// it is shared across sentences (spec. §5).
type Chart struct {
	Grammar *Grammar
	Tokens  []string
	Columns []*Column

	// Trace, if non-nil, is called once for every PREDICT/SCAN/ATTACH step
	// taken, for diagnostic logging. It is never required for correctness.
	Trace func(step, detail string, column int)
}

// NewChart allocates a chart with one empty column per position in tokens
// (|tokens|+1 columns total) and runs the Earley algorithm to fill it in.
func NewChart(g *Grammar, tokens []string) *Chart {
	c := &Chart{
		Grammar: g,
		Tokens:  tokens,
		Columns: make([]*Column, len(tokens)+1),
	}
	for i := range c.Columns {
		c.Columns[i] = NewColumn()
	}
	c.run()
	return c
}

func (c *Chart) trace(step, detail string, column int) {
	if c.Trace != nil {
		c.Trace(step, detail, column)
	}
}

// run fills in the chart by iterating columns left to right, dispatching
// each pending item to PREDICT, SCAN, or ATTACH until the column has
// nothing left pending.
func (c *Chart) run() {
	c.predict(c.Grammar.StartSymbol, 0)

	for i, column := range c.Columns {
		for column.Len() > 0 {
			item := column.Pop()
			next, ok := item.NextSymbol()
			switch {
			case !ok:
				c.attach(item, i)
			case c.Grammar.IsNonterminal(next):
				c.predict(next, i)
			default:
				c.scan(item, i)
			}
		}
	}
}

// predict pushes a fresh, dot-zero item for every expansion of nonterminal
// into column, with a tip seeded at the rule's own weight. Move-down is
// never needed here: a freshly predicted item's baseline weight can never
// be improved by the act of predicting it again.
func (c *Chart) predict(nonterminal string, column int) {
	for _, rule := range c.Grammar.Expansions(nonterminal) {
		item := Item{Rule: rule, Dot: 0, Start: column}
		c.Columns[column].Push(item)
		c.Columns[column].UpdateTip(item, Tip{Weight: rule.Weight})
		c.trace("PREDICT", item.String(), column)
	}
}

// scan advances item past the next symbol into column+1 if that symbol is
// a terminal matching the token at position column. Move-down is never
// needed here: a scanned item's weight is carried forward unchanged from
// its parent, which cannot itself change as a result of this scan.
func (c *Chart) scan(item Item, column int) {
	next, ok := item.NextSymbol()
	if !ok {
		return
	}
	if column >= len(c.Tokens) || c.Tokens[column] != next {
		return
	}

	advanced := item.Advance()
	tip, _ := c.Columns[column].FindTip(item)

	c.Columns[column+1].Push(advanced)
	c.Columns[column+1].UpdateTip(advanced, tip.withTerminal())
	c.trace("SCAN", advanced.String(), column+1)
}

// attach advances every customer of the complete item (i.e. every item in
// item's start column still waiting for item.Rule.LHS) into column. If the
// resulting advanced item already existed and its tip improved, it is
// moved back into the pending segment of its own column so any items that
// already consumed its old, worse tip get a chance to re-derive from the
// better one.
func (c *Chart) attach(item Item, column int) {
	start := item.Start
	childTip, _ := c.Columns[column].FindTip(item)

	for _, customer := range c.Columns[start].All() {
		next, ok := customer.NextSymbol()
		if !ok || next != item.Rule.LHS {
			continue
		}

		advanced := customer.Advance()
		existed := c.Columns[column].Push(advanced)

		customerTip, _ := c.Columns[start].FindTip(customer)
		candidate := customerTip.withAttachment(childTip, item, column)
		improved := c.Columns[column].UpdateTip(advanced, candidate)

		if existed && improved {
			c.Columns[column].MoveDown(advanced)
		}
		c.trace("ATTACH", advanced.String(), column)
	}
}

// Accepted returns the minimum-weight item in the final column whose rule's
// LHS is the grammar's start symbol, is complete, and starts at position 0.
// The second return value is false if no such item exists, meaning the
// sentence is not derivable from the grammar.
func (c *Chart) Accepted() (Item, Tip, bool) {
	last := c.Columns[len(c.Columns)-1]

	var best Item
	var bestTip Tip
	found := false

	for _, item := range last.All() {
		if item.Rule.LHS != c.Grammar.StartSymbol || item.Start != 0 || !item.IsComplete() {
			continue
		}
		tip, ok := last.FindTip(item)
		if !ok {
			continue
		}
		if !found || tip.Weight < bestTip.Weight {
			best, bestTip, found = item, tip, true
		}
	}
	return best, bestTip, found
}
