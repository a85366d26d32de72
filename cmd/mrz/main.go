// Command mrz parses the Machine-Readable Zone of an identification document
// from OCR text. Input comes from a file argument or stdin; the parsed
// document is printed to stdout as an ordered JSON object or a text table.
// Parsing never fails: unrecognizable input produces a degraded document
// with a zero validity score.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/invibeme/passporteye/pkg/config"
	"github.com/invibeme/passporteye/pkg/logger"
	"github.com/invibeme/passporteye/pkg/mrz"
)

func main() {
	flags := pflag.NewFlagSet("mrz", pflag.ContinueOnError)
	flags.String("log-level", "", "log level: trace, debug, info, warn or error")
	flags.String("mode", "", "input mode: ocr (raw OCR text) or lines (pre-segmented MRZ lines)")
	flags.String("output", "", "output format: json or text")
	flags.Bool("pretty", false, "indent JSON output")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mrz [flags] [file]\n\nReads OCR text from file or stdin and prints the parsed MRZ.\n\nFlags:\n%s", flags.FlagUsages())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("mrz", cfg.Log.Environment).
		WithLevel(cfg.Log.Level).
		WithComponent("cli")

	text, source, err := readInput(flags.Args())
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		os.Exit(1)
	}

	runID := uuid.NewString()
	var doc *mrz.Document
	if cfg.Input.Mode == "lines" {
		doc = mrz.Parse(splitLines(text))
	} else {
		doc = mrz.FromOCR(text)
		doc.Aux["method"] = "ocr_cleanup"
	}

	log.Info().
		Str("run_id", runID).
		Str("source", source).
		Str("mrz_type", string(doc.Format)).
		Int("valid_score", doc.ValidScore).
		Bool("valid", doc.Valid).
		Msg("document parsed")

	if err := render(os.Stdout, doc, cfg.Output); err != nil {
		log.Error().Err(err).Msg("failed to render document")
		os.Exit(1)
	}
}

func readInput(args []string) (text, source string, err error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// splitLines prepares pre-segmented input: one MRZ line per text line,
// carriage returns and surrounding whitespace stripped, empty lines dropped.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func render(w io.Writer, doc *mrz.Document, out config.OutputConfig) error {
	fields := doc.Fields()
	if out.Format == "text" {
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "%-24s %v\n", f.Key, f.Value); err != nil {
				return err
			}
		}
		return nil
	}
	enc := json.NewEncoder(w)
	if out.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(fields)
}
