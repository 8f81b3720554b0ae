// Package wparse is the library entry point for weighted-grammar parsing:
// it wires grammar loading, the Earley chart, and tree rendering together
// behind a single Session type, the way github.com/dekarrin/tunaq's root
// engine.go package wraps its game engine for both cmd/tqi and server use.
package wparse

import (
	"fmt"
	"io"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/wparse/internal/earley"
	"github.com/dekarrin/wparse/internal/wparseerr"
)

// Session holds one immutably-loaded grammar and parses sentences against
// it. A Session may parse any number of sentences; each gets its own chart
// (spec. §5 — no shared mutable state between sentences).
type Session struct {
	grammar *earley.Grammar

	// Trace, if set, receives a line of diagnostic text for every
	// PREDICT/SCAN/ATTACH step taken while parsing. Intended for wiring up
	// to a leveled logger's Debug output; left nil, parsing produces no
	// trace overhead beyond a nil check per step.
	Trace func(step, detail string, column int)
}

// NewSession loads a grammar in .gr format from r and returns a Session
// ready to parse sentences against it with the given start symbol.
//
// It returns a *wparseerr.Error wrapping wparseerr.ErrGrammarSyntax if a
// line is malformed, or wparseerr.ErrUnknownStart if startSymbol has no
// expansions once loading completes.
func NewSession(r io.Reader, startSymbol string) (*Session, error) {
	g := earley.NewGrammar(startSymbol)
	if err := g.LoadRules(r); err != nil {
		if lerr, ok := err.(*earley.LoadRulesError); ok {
			return nil, wparseerr.New(wparseerr.ErrGrammarSyntax, lerr.Error())
		}
		return nil, wparseerr.New(wparseerr.ErrIO, "reading grammar")
	}
	if !g.IsNonterminal(startSymbol) {
		return nil, wparseerr.New(wparseerr.ErrUnknownStart, fmt.Sprintf("start symbol %q has no expansions", startSymbol))
	}
	return &Session{grammar: g}, nil
}

// Grammar exposes the loaded grammar's summary statistics, for diagnostics
// such as the CLI's --describe flag.
func (s *Session) Grammar() *earley.Grammar {
	return s.grammar
}

// Result is the outcome of parsing one sentence: either Accepted is true,
// in which case Tree and Weight describe the minimum-weight derivation, or
// Accepted is false and the sentence has no derivation under the grammar.
type Result struct {
	Accepted bool
	Tree     string
	Weight   float64
}

// Parse runs the weighted Earley algorithm on tokens (already split on
// whitespace) and returns the minimum-weight derivation, if any.
func (s *Session) Parse(tokens []string) Result {
	chart := earley.NewChart(s.grammar, tokens)
	chart.Trace = s.Trace

	item, tip, ok := chart.Accepted()
	if !ok {
		return Result{Accepted: false}
	}
	return Result{
		Accepted: true,
		Tree:     chart.Render(item, len(chart.Columns)-1),
		Weight:   tip.Weight,
	}
}

// Describe renders a wrapped summary table of the loaded grammar: its
// start symbol, its non-terminal count, and the rule count per
// non-terminal, in the teacher's rosed-table diagnostic style.
func (s *Session) Describe() string {
	nts := s.grammar.Nonterminals()
	sort.Strings(nts)

	data := [][]string{{"Non-terminal", "Rules"}}
	for _, lhs := range nts {
		data = append(data, []string{lhs, fmt.Sprint(len(s.grammar.Expansions(lhs)))})
	}

	header := fmt.Sprintf("start symbol: %s\nnon-terminals: %d\nrules: %d\n", s.grammar.StartSymbol, s.grammar.NonterminalCount(), s.grammar.RuleCount())

	return rosed.Edit(header).
		InsertTableOpts(1, data, 80, rosed.Options{TableHeaders: true}).
		String()
}
