package earley

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Grammar is an immutable weighted context-free grammar: a mapping from
// each non-terminal to the ordered sequence of rules that expand it.
//
// A symbol is a non-terminal iff it appears as the LHS of at least one
// rule; every other symbol encountered in a RHS is a terminal.
type Grammar struct {
	StartSymbol string
	expansions  map[string][]*Rule
}

// NewGrammar returns an empty grammar with the given start symbol. Rules
// are added with AddRule or LoadRules.
func NewGrammar(startSymbol string) *Grammar {
	return &Grammar{
		StartSymbol: startSymbol,
		expansions:  make(map[string][]*Rule),
	}
}

// AddRule adds a single rule to the grammar.
func (g *Grammar) AddRule(r *Rule) {
	g.expansions[r.LHS] = append(g.expansions[r.LHS], r)
}

// Expansions returns the rules with the given LHS, in the order they were
// added. It returns nil if lhs has no expansions (including if lhs is a
// terminal).
func (g *Grammar) Expansions(lhs string) []*Rule {
	return g.expansions[lhs]
}

// IsNonterminal reports whether sym appears as the LHS of some rule.
func (g *Grammar) IsNonterminal(sym string) bool {
	_, ok := g.expansions[sym]
	return ok
}

// RuleCount returns the total number of rules in the grammar, across all
// non-terminals.
func (g *Grammar) RuleCount() int {
	n := 0
	for _, rules := range g.expansions {
		n += len(rules)
	}
	return n
}

// NonterminalCount returns the number of distinct non-terminals defined in
// the grammar.
func (g *Grammar) NonterminalCount() int {
	return len(g.expansions)
}

// Nonterminals returns every symbol that appears as some rule's LHS, in no
// particular order.
func (g *Grammar) Nonterminals() []string {
	nts := make([]string, 0, len(g.expansions))
	for lhs := range g.expansions {
		nts = append(nts, lhs)
	}
	return nts
}

// LoadRulesError describes a single malformed line encountered while
// reading a grammar file. Line numbers are 1-indexed.
type LoadRulesError struct {
	Line   int
	Text   string
	Reason string
}

func (e *LoadRulesError) Error() string {
	return fmt.Sprintf("grammar line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// LoadRules reads rules in the .gr format from r and adds them to the
// grammar: one rule per line, "probability \t lhs \t rhs_symbols...".  A
// '#' introduces an end-of-line comment, trailing whitespace is stripped,
// and blank lines are ignored. The probability must lie in (0, 1]; it is
// converted to the additive weight -log2(p).
//
// LoadRules stops at the first malformed line and returns a *LoadRulesError
// describing it.
func (g *Grammar) LoadRules(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimRight(line, " \t\r\n")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return &LoadRulesError{Line: lineNo, Text: line, Reason: "expected 3 tab-separated fields (probability, lhs, rhs)"}
		}

		probText, lhs, rhsText := fields[0], fields[1], fields[2]
		lhs = strings.TrimSpace(lhs)
		if lhs == "" {
			return &LoadRulesError{Line: lineNo, Text: line, Reason: "empty left-hand side"}
		}

		prob, err := strconv.ParseFloat(strings.TrimSpace(probText), 64)
		if err != nil {
			return &LoadRulesError{Line: lineNo, Text: line, Reason: "non-numeric probability"}
		}
		if prob <= 0 || prob > 1 {
			return &LoadRulesError{Line: lineNo, Text: line, Reason: "probability must be in (0, 1]"}
		}

		rhs := strings.Fields(rhsText)
		weight := -math.Log2(prob)

		g.AddRule(&Rule{LHS: lhs, RHS: rhs, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}
