package wparse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/wparse/internal/wparseerr"
)

func Test_NewSession_RejectsMalformedGrammar(t *testing.T) {
	_, err := NewSession(strings.NewReader("not a valid line"), "ROOT")
	assert.True(t, errors.Is(err, wparseerr.ErrGrammarSyntax))
}

func Test_NewSession_RejectsUnknownStartSymbol(t *testing.T) {
	_, err := NewSession(strings.NewReader("1.0\tS\ta\n"), "ROOT")
	assert.True(t, errors.Is(err, wparseerr.ErrUnknownStart))
}

func Test_Session_Parse_AcceptsAndRejects(t *testing.T) {
	assert := assert.New(t)

	sess, err := NewSession(strings.NewReader("1.0\tROOT\tS\n1.0\tS\ta\n"), "ROOT")
	assert.NoError(err)

	accepted := sess.Parse([]string{"a"})
	assert.True(accepted.Accepted)
	assert.Equal("( ROOT ( S a))", accepted.Tree)
	assert.InDelta(0.0, accepted.Weight, 1e-9)

	rejected := sess.Parse([]string{"b"})
	assert.False(rejected.Accepted)
}

func Test_Session_Describe_ListsStartSymbolAndRuleCount(t *testing.T) {
	assert := assert.New(t)

	sess, err := NewSession(strings.NewReader("1.0\tROOT\tS\n0.5\tS\ta\n0.5\tS\tb\n"), "ROOT")
	assert.NoError(err)

	out := sess.Describe()
	assert.Contains(out, "ROOT")
	assert.Contains(out, "rules: 3")
}
