// Package earley implements a weighted Earley recognizer-parser: an
// agenda-driven chart that finds the minimum-weight derivation of a sentence
// under a weighted context-free grammar.
package earley

import (
	"fmt"
	"strings"
)

// Rule is a single production of a weighted context-free grammar: a
// left-hand side non-terminal, an ordered right-hand side of symbols
// (terminals and non-terminals alike), and an additive weight equal to
// -log2(p) for the rule's probability p.
//
// Rule is immutable once created. It has no equality operation of its own:
// Items hold rules by pointer (see Item) so that dotted rules stay
// comparable despite RHS being a slice, so two Rules with identical fields
// are still distinct rules to the parser.
type Rule struct {
	LHS    string
	RHS    []string
	Weight float64
}

// String gives a human-readable representation of the rule, in the style
// "LHS -> RHS (weight)".
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s (%g)", r.LHS, strings.Join(r.RHS, " "), r.Weight)
}
