package wsentence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ReadAll_SkipsBlankLines(t *testing.T) {
	assert := assert.New(t)

	src := "the dog barks\n\n   \na cat meows\n"
	sentences, err := ReadAll(strings.NewReader(src))
	assert.NoError(err)
	assert.Equal([][]string{
		{"the", "dog", "barks"},
		{"a", "cat", "meows"},
	}, sentences)
}

func Test_ReadAll_EmptyInput(t *testing.T) {
	assert := assert.New(t)

	sentences, err := ReadAll(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(sentences)
}
