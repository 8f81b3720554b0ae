// Package wrepl implements the interactive session mode of wparse: a
// readline-backed loop that reads one sentence at a time and reports its
// parse immediately, against an already-loaded grammar.
package wrepl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// SentenceReader supplies one sentence (a raw, not-yet-tokenized line) per
// call to ReadSentence, blocking until one is available.
type SentenceReader interface {
	// ReadSentence blocks until a non-blank line is available. It returns
	// io.EOF once no more input remains.
	ReadSentence() (string, error)

	// Close releases any resources the reader holds (terminal state,
	// history file handles). It must be called exactly once when the
	// reader is no longer needed.
	Close() error
}

// directReader reads sentences from any io.Reader with no line editing;
// used when stdin is not a TTY (piped input, tests).
type directReader struct {
	r *bufio.Reader
}

// NewDirectReader wraps r as a SentenceReader with no line editing.
func NewDirectReader(r io.Reader) SentenceReader {
	return &directReader{r: bufio.NewReader(r)}
}

func (d *directReader) ReadSentence() (string, error) {
	for {
		line, err := d.r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (d *directReader) Close() error {
	return nil
}

// interactiveReader reads sentences from stdin via GNU-readline-style
// editing and history, for use when connected directly to a terminal.
type interactiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader starts a readline session with the given prompt.
func NewInteractiveReader(prompt string) (SentenceReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("start readline session: %w", err)
	}
	return &interactiveReader{rl: rl}, nil
}

func (ir *interactiveReader) ReadSentence() (string, error) {
	for {
		line, err := ir.rl.Readline()
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (ir *interactiveReader) Close() error {
	return ir.rl.Close()
}
