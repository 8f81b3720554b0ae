package wrepl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dekarrin/wparse"
)

// Run drives an interactive parsing session: it reads sentences one at a
// time from reader, parses each against sess, and writes the result to out
// in the same "tree then weight" / "NONE" format the batch CLI uses. Typing
// "quit" or reaching end of input ends the session.
//
// Each parsed sentence is tagged with a fresh correlation ID so a
// concurrently-tailed debug log can be grepped down to one sentence's
// PREDICT/SCAN/ATTACH trace.
func Run(reader SentenceReader, sess *wparse.Session, out io.Writer, log *logrus.Logger) error {
	defer reader.Close()

	for {
		sentence, err := reader.ReadSentence()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if strings.EqualFold(sentence, "quit") {
			return nil
		}

		runID := uuid.New()
		entry := log.WithField("run_id", runID)
		entry.Debugf("parsing sentence: %s", sentence)

		sess.Trace = func(step, detail string, column int) {
			entry.Debugf("%s column=%d %s", step, column, detail)
		}

		result := sess.Parse(strings.Fields(sentence))
		if !result.Accepted {
			fmt.Fprintln(out, "NONE")
			continue
		}
		fmt.Fprintln(out, result.Tree)
		fmt.Fprintln(out, result.Weight)
	}
}
