package earley

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustGrammar(t *testing.T, start, src string) *Grammar {
	t.Helper()
	g := NewGrammar(start)
	if err := g.LoadRules(strings.NewReader(src)); err != nil {
		t.Fatalf("bad test grammar: %v", err)
	}
	return g
}

func parse(g *Grammar, sentence string) *Chart {
	var tokens []string
	if sentence != "" {
		tokens = strings.Fields(sentence)
	}
	return NewChart(g, tokens)
}

// Scenario 1: a single-step derivation.
func Test_Chart_SingleStepDerivation(t *testing.T) {
	assert := assert.New(t)

	g := mustGrammar(t, "ROOT", "1.0\tROOT\tS\n1.0\tS\ta\n")
	c := parse(g, "a")

	item, tip, ok := c.Accepted()
	assert.True(ok)
	assert.InDelta(0.0, tip.Weight, 1e-9)
	assert.Equal("( ROOT ( S a))", c.Render(item, len(c.Columns)-1))
}

// Scenario 2: ambiguous recursive grammar, minimum total weight chosen.
func Test_Chart_RecursiveGrammar_MinimumWeight(t *testing.T) {
	assert := assert.New(t)

	g := mustGrammar(t, "ROOT", "1.0\tROOT\tS\n0.5\tS\tS S\n0.5\tS\ta\n")
	c := parse(g, "a a")

	_, tip, ok := c.Accepted()
	assert.True(ok)
	assert.InDelta(3.0, tip.Weight, 1e-9)
}

// Scenario 3: the cheaper of two competing expansions must win.
func Test_Chart_PrefersCheaperExpansion(t *testing.T) {
	assert := assert.New(t)

	g := mustGrammar(t, "ROOT",
		"1.0\tROOT\tA\n"+
			"0.25\tA\tB\n"+
			"0.75\tA\tC\n"+
			"1.0\tB\tx\n"+
			"1.0\tC\tx\n")
	c := parse(g, "x")

	item, tip, ok := c.Accepted()
	assert.True(ok)
	assert.InDelta(0.41503749927884, tip.Weight, 1e-9)
	assert.Equal("( ROOT ( A ( C x)))", c.Render(item, len(c.Columns)-1))
}

// Scenario 4: an undeclared token must be rejected.
func Test_Chart_RejectsUnderivableSentence(t *testing.T) {
	assert := assert.New(t)

	g := mustGrammar(t, "ROOT", "1.0\tROOT\tS\n1.0\tS\ta\n")
	c := parse(g, "y")

	_, _, ok := c.Accepted()
	assert.False(ok)
}

// Scenario 5: left recursion must terminate and find the left-branching
// derivation.
func Test_Chart_LeftRecursion(t *testing.T) {
	assert := assert.New(t)

	g := mustGrammar(t, "ROOT",
		"1.0\tROOT\tL\n"+
			"0.5\tL\tL a\n"+
			"0.5\tL\ta\n")
	c := parse(g, "a a a")

	item, tip, ok := c.Accepted()
	assert.True(ok)
	assert.InDelta(3.0, tip.Weight, 1e-9)
	assert.Equal("( ROOT ( L ( L ( L a) a) a))", c.Render(item, len(c.Columns)-1))
}

// Scenario 6: an ambiguous grammar with two derivations at different
// weights must settle on the minimum.
func Test_Chart_AmbiguousGrammar_PicksMinimumWeightTree(t *testing.T) {
	assert := assert.New(t)

	g := mustGrammar(t, "ROOT",
		"1.0\tROOT\tX\n"+
			"0.5\tX\tY\n"+
			"0.125\tY\ta\n"+
			"0.5\tX\tZ\n"+
			"0.25\tZ\ta\n")
	c := parse(g, "a")

	item, tip, ok := c.Accepted()
	assert.True(ok)
	assert.InDelta(3.0, tip.Weight, 1e-9)
	assert.Equal("( ROOT ( X ( Z a)))", c.Render(item, len(c.Columns)-1))
}

// Boundary: an empty sentence is accepted iff the start symbol can derive
// the empty string.
func Test_Chart_EmptySentence(t *testing.T) {
	assert := assert.New(t)

	accepting := NewGrammar("ROOT")
	accepting.AddRule(&Rule{LHS: "ROOT", RHS: []string{"EPS"}, Weight: 0})
	accepting.AddRule(&Rule{LHS: "EPS", RHS: []string{}, Weight: 0})
	c := parse(accepting, "")
	_, _, ok := c.Accepted()
	assert.True(ok)

	rejecting := mustGrammar(t, "ROOT", "1.0\tROOT\tS\n1.0\tS\ta\n")
	c2 := parse(rejecting, "")
	_, _, ok2 := c2.Accepted()
	assert.False(ok2)
}

// Idempotence: parsing the same sentence twice with the same grammar
// produces identical results.
func Test_Chart_Idempotent(t *testing.T) {
	assert := assert.New(t)

	g := mustGrammar(t, "ROOT", "1.0\tROOT\tS\n0.5\tS\tS S\n0.5\tS\ta\n")

	c1 := parse(g, "a a a")
	c2 := parse(g, "a a a")

	item1, tip1, ok1 := c1.Accepted()
	item2, tip2, ok2 := c2.Accepted()

	assert.True(ok1)
	assert.True(ok2)
	assert.Equal(tip1.Weight, tip2.Weight)
	assert.Equal(c1.Render(item1, len(c1.Columns)-1), c2.Render(item2, len(c2.Columns)-1))
}
