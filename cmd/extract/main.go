package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tsawler/verbatim"
	"github.com/tsawler/verbatim/batch"
	"github.com/tsawler/verbatim/profile"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorRed    = "\033[31m"
)

func info(msg string, a ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[info] "+colorReset+msg+"\n", a...)
}

func warn(msg string, a ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[warn] "+colorReset+msg+"\n", a...)
}

func ok(msg string, a ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[ok] "+colorReset+msg+"\n", a...)
}

func fail(msg string, a ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[error] "+colorReset+msg+"\n", a...)
}

// Exit codes: 0 on success, 2 when the pipeline rejected a document
// (missing header anchor, bad configuration), 1 on I/O failure.
const (
	exitOK       = 0
	exitIO       = 1
	exitPipeline = 2
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: extract [flags] <input> [<input>...]

Extracts speaker-attributed speeches from two-column transcript
documents (plain text, JSON, or HTML) and writes them as JSON.

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

// run holds main's body so deferred cleanup executes before the process
// exits with its code.
func run() int {
	var (
		outPath           string
		leftColWidth      int
		overflowThreshold int
		profilePath       string
		jsonl             bool
		jobs              int
		timeout           time.Duration
		quiet             bool
	)

	flag.StringVar(&outPath, "out", "", "Output file (default stdout)")
	flag.StringVar(&outPath, "o", "", "Output file (shorthand)")
	flag.IntVar(&leftColWidth, "left-col-width", 0, "Left column width override")
	flag.IntVar(&overflowThreshold, "overflow-threshold", 0, "Right column overflow threshold override")
	flag.StringVar(&profilePath, "profile", "", "Corpus calibration profile (YAML)")
	flag.BoolVar(&jsonl, "jsonl", false, "Write JSON lines instead of a JSON array")
	flag.IntVar(&jobs, "jobs", 0, "Concurrent workers for multiple inputs (default NumCPU)")
	flag.DurationVar(&timeout, "timeout", 0, "Per-document processing timeout (e.g. 30s)")
	flag.BoolVar(&quiet, "quiet", false, "Suppress informational output")
	flag.Usage = usage
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fail("missing input file")
		usage()
		return exitPipeline
	}

	visited := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	if err := validateOverrides(visited, leftColWidth, overflowThreshold); err != nil {
		fail("%v", err)
		return exitPipeline
	}

	var prof *profile.Profile
	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			fail("loading profile: %v", err)
			return exitPipeline
		}
		prof = &p
	}

	configure := func(e *verbatim.Extractor) *verbatim.Extractor {
		if prof != nil {
			e = e.WithProfile(*prof)
		}
		if leftColWidth > 0 {
			e = e.LeftColWidth(leftColWidth)
		}
		if overflowThreshold > 0 {
			e = e.OverflowThreshold(overflowThreshold)
		}
		return e
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fail("creating output: %v", err)
			return exitIO
		}
		defer f.Close()
		out = f
	}

	var code int
	if len(inputs) == 1 {
		code = runSingle(inputs[0], configure, out, jsonl, quiet)
	} else {
		code = runBatch(inputs, configure, out, batch.Options{
			Workers: jobs,
			Timeout: timeout,
		}, quiet)
	}

	if code == exitOK && outPath != "" && !quiet {
		ok("Wrote %s", outPath)
	}
	return code
}

func runSingle(input string, configure func(*verbatim.Extractor) *verbatim.Extractor, out io.Writer, jsonl, quiet bool) int {
	if !quiet {
		info("Extracting %s...", input)
	}

	ext := configure(verbatim.Open(input))

	var warnings []verbatim.Warning
	var err error
	if jsonl {
		warnings, err = ext.WriteJSONLines(out)
	} else {
		warnings, err = ext.WriteJSON(out)
	}

	reportWarnings(warnings)

	if err != nil {
		fail("%v", err)
		return exitCodeFor(err)
	}
	if !quiet {
		ok("Extracted %s", input)
	}
	return exitOK
}

func runBatch(inputs []string, configure func(*verbatim.Extractor) *verbatim.Extractor, out io.Writer, opts batch.Options, quiet bool) int {
	if !quiet {
		info("Processing %d documents...", len(inputs))
	}

	opts.Configure = configure
	results := batch.Process(context.Background(), inputs, opts)

	// Multiple inputs always stream as JSON lines so records from
	// different documents keep their provenance in order.
	enc := json.NewEncoder(out)
	code := exitOK
	failed := 0
	for _, r := range results {
		reportWarnings(r.Warnings)
		if r.Err != nil {
			fail("%v", r.Err)
			failed++
			if c := exitCodeFor(r.Err); c > code {
				code = c
			}
			continue
		}
		for i := range r.Speeches {
			if err := enc.Encode(&r.Speeches[i]); err != nil {
				fail("encoding output: %v", err)
				return exitIO
			}
		}
	}

	if !quiet {
		if failed > 0 {
			warn("%d of %d documents failed", failed, len(results))
		} else {
			ok("Processed %d documents", len(results))
		}
	}
	return code
}

func reportWarnings(warnings []verbatim.Warning) {
	for _, w := range warnings {
		warn("%s", w)
	}
}

// validateOverrides rejects layout overrides the user explicitly set to a
// non-positive value. Unset flags keep their zero value and pass through;
// silently ignoring a bad explicit value would hide a calibration mistake.
func validateOverrides(visited map[string]bool, leftColWidth, overflowThreshold int) error {
	if visited["left-col-width"] && leftColWidth <= 0 {
		return fmt.Errorf("left-col-width must be positive, got %d", leftColWidth)
	}
	if visited["overflow-threshold"] && overflowThreshold <= 0 {
		return fmt.Errorf("overflow-threshold must be positive, got %d", overflowThreshold)
	}
	return nil
}

// exitCodeFor maps a per-document failure to an exit code: pipeline
// rejections (no header anchor) exit 2, everything else is treated as an
// I/O failure and exits 1.
func exitCodeFor(err error) int {
	if errors.Is(err, verbatim.ErrHeaderNotFound) {
		return exitPipeline
	}
	return exitIO
}
