/*
Wparse decides whether sentences are derivable from a weighted
context-free grammar and, for each one that is, prints its minimum-weight
derivation tree.

Usage:

	wparse [flags] grammar sentences

The flags are:

	-s, --start-symbol NAME
		Start symbol of the grammar (default "ROOT").

	-i, --interactive
		Ignore the sentences file (if any) and read sentences one at a time
		from an interactive readline session instead.

	--progress
		Display a progress bar while batch-processing sentences.

	-v, --verbose
		Log PREDICT/SCAN/ATTACH steps and other diagnostic detail.

	-q, --quiet
		Suppress all but warning-and-above log output. Mutually exclusive
		with --verbose.

	--describe
		Print a summary of the loaded grammar (non-terminal and rule
		counts) and exit without parsing anything.

	--config FILE
		Read CLI defaults from a TOML file (default "./.wparse.toml" if it
		exists). Flags explicitly given on the command line override it.

	-V, --version
		Print the current version and exit.

For each non-blank sentence, wparse prints either the literal line "NONE"
if the sentence has no derivation, or the bracketed parse tree on one line
followed by its total weight on the next.
*/
package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/dekarrin/wparse"
	"github.com/dekarrin/wparse/internal/version"
	"github.com/dekarrin/wparse/internal/wconfig"
	"github.com/dekarrin/wparse/internal/wrepl"
	"github.com/dekarrin/wparse/internal/wsentence"
)

const (
	// ExitSuccess indicates a successful program execution. Per-sentence
	// rejections ("NONE") do not affect this; only grammar/IO errors and
	// bad flag combinations do.
	ExitSuccess = iota

	// ExitLoadError indicates the grammar or sentences file could not be
	// read or parsed.
	ExitLoadError

	// ExitUsageError indicates a bad or contradictory combination of flags.
	ExitUsageError
)

var (
	returnCode = ExitSuccess

	flagVersion     = pflag.BoolP("version", "V", false, "Print the current version and exit")
	flagStartSymbol = pflag.StringP("start-symbol", "s", "", "Start symbol of the grammar (default \"ROOT\")")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Read sentences one at a time from an interactive session")
	flagProgress    = pflag.Bool("progress", false, "Display a progress bar while batch-processing sentences")
	flagVerbose     = pflag.BoolP("verbose", "v", false, "Log PREDICT/SCAN/ATTACH steps and other diagnostic detail")
	flagQuiet       = pflag.BoolP("quiet", "q", false, "Suppress all but warning-and-above log output")
	flagDescribe    = pflag.Bool("describe", false, "Print a summary of the loaded grammar and exit")
	flagConfig      = pflag.String("config", ".wparse.toml", "Path to a TOML file of CLI defaults")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *flagVerbose && *flagQuiet {
		fmt.Fprintln(os.Stderr, "ERROR: --verbose and --quiet are mutually exclusive")
		returnCode = ExitUsageError
		return
	}

	minArgs := 2
	if *flagInteractive {
		minArgs = 1
	}
	if pflag.NArg() < minArgs {
		fmt.Fprintln(os.Stderr, "ERROR: expected positional arguments: grammar sentences")
		returnCode = ExitUsageError
		return
	}
	grammarPath := pflag.Arg(0)
	sentencesPath := pflag.Arg(1)

	defaults, err := wconfig.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading config: %s\n", err.Error())
		returnCode = ExitLoadError
		return
	}

	startSymbol := *flagStartSymbol
	if startSymbol == "" {
		startSymbol = defaults.StartSymbol
	}
	if startSymbol == "" {
		startSymbol = "ROOT"
	}

	progress := defaults.Progress
	if pflag.CommandLine.Changed("progress") {
		progress = *flagProgress
	}

	log := newLogger(*flagVerbose, *flagQuiet, defaults.LogLevel)

	grammarFile, err := os.Open(grammarPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitLoadError
		return
	}
	defer grammarFile.Close()

	sess, err := wparse.NewSession(grammarFile, startSymbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitLoadError
		return
	}

	sess.Trace = func(step, detail string, column int) {
		log.Debugf("%s column=%d %s", step, column, detail)
	}

	if *flagDescribe {
		fmt.Print(sess.Describe())
		return
	}

	if *flagInteractive {
		runInteractive(sess, log)
		return
	}

	if err := runBatch(sess, sentencesPath, progress, log); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitLoadError
		return
	}
}

func newLogger(verbose, quiet bool, configuredLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	switch {
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	case quiet:
		log.SetLevel(logrus.WarnLevel)
	case configuredLevel != "":
		if lvl, err := logrus.ParseLevel(configuredLevel); err == nil {
			log.SetLevel(lvl)
		}
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

func runBatch(sess *wparse.Session, sentencesPath string, showProgress bool, log *logrus.Logger) error {
	f, err := os.Open(sentencesPath)
	if err != nil {
		return err
	}
	defer f.Close()

	sentences, err := wsentence.ReadAll(f)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(sentences)))
	}

	for _, tokens := range sentences {
		log.Debugf("parsing sentence: %v", tokens)

		result := sess.Parse(tokens)
		if !result.Accepted {
			fmt.Println("NONE")
		} else {
			fmt.Println(result.Tree)
			fmt.Println(result.Weight)
		}

		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}

func runInteractive(sess *wparse.Session, log *logrus.Logger) {
	reader, err := wrepl.NewInteractiveReader("wparse> ")
	if err != nil {
		log.Warnf("falling back to direct input: %s", err.Error())
		reader = wrepl.NewDirectReader(os.Stdin)
	}

	if err := wrepl.Run(reader, sess, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitLoadError
	}
}
