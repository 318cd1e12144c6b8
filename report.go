package longform

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/xrash/smetrics"
)

// User-facing error reporting. The compiler core never fails, so everything
// rendered here originates in the I/O collaborators (config loading, sink
// writes, persistence). A Report carries an optional did-you-mean
// suggestion and an optional file/line location.

type Report struct {
	Message    string
	Suggestion string
	File       string
	Line       int
}

type Reporter struct {
	Out io.Writer
	// Exit is called after reporting when fatal is set. Swappable for tests.
	Exit func(code int)
}

func NewReporter() *Reporter {
	return &Reporter{
		Out:  os.Stderr,
		Exit: os.Exit,
	}
}

func (r *Reporter) Report(report *Report, fatal bool) {
	header := color.New(color.FgRed, color.Bold)
	location := color.New(color.FgWhite)
	hint := color.New(color.FgYellow)

	header.Fprint(r.Out, "error: ")
	fmt.Fprintln(r.Out, report.Message)

	if len(report.File) > 0 {
		if report.Line > 0 {
			location.Fprintf(r.Out, "  at %s:%d\n", report.File, report.Line)
		} else {
			location.Fprintf(r.Out, "  at %s\n", report.File)
		}
	}

	if len(report.Suggestion) > 0 {
		hint.Fprintf(r.Out, "  hint: %s\n", report.Suggestion)
	}

	if fatal {
		r.Exit(1)
	}
}

// minSimilarity is the JaroWinkler score below which a candidate isn't
// worth suggesting.
const minSimilarity = 0.8

// SuggestSimilar returns the candidate most similar to target, or "" when
// nothing scores above minSimilarity. Used for did-you-mean hints on
// misspelled destination names and config keys.
func SuggestSimilar(target string, candidates []string) string {
	best := ""
	bestScore := 0.0

	for _, candidate := range candidates {
		if len(candidate) == 0 || candidate == target {
			continue
		}
		score := smetrics.JaroWinkler(target, candidate, 0.7, 4)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < minSimilarity {
		return ""
	}

	return best
}
