// Command pdfrows prints the tables reconstructed from a PDF's text.
//
// Usage:
//
//	pdfrows [flags] file.pdf
//	pdfrows -ocr scan.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/pdfrows"
	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/ocr"
)

type options struct {
	path       string
	ocrImage   string
	configPath string
	pages      []int
	format     string
	rowGap     float64
	cellGap    float64
	keepFirst  bool
	normalize  bool
	password   string
	verbose    bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "pdfrows: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfrows: %v\n", err)
		os.Exit(1)
	}

	err = run(opts, logger, os.Stdout)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfrows: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pdfrows", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pdfrows [flags] <pdf>\n")
		fs.PrintDefaults()
	}

	pages := fs.String("p", "", "Pages to extract, e.g. 1,3,5-7 (default all)")
	format := fs.String("format", "flat", "Output format: "+strings.Join(formats, ", "))
	rowGap := fs.Float64("row-gap", 1, "Baseline clustering tolerance in points")
	cellGap := fs.Float64("cell-gap", 1, "Largest gap between characters of one cell in points")
	keepFirst := fs.Bool("keep-first", false, "Keep the first character of each row")
	normalize := fs.Bool("normalize", false, "Apply Unicode NFKC to cells")
	password := fs.String("password", "", "Password to open encrypted PDFs")
	configPath := fs.String("config", "", "YAML file with default settings")
	verbose := fs.Bool("v", false, "Debug logging")
	ocrImage := fs.String("ocr", "", "OCR this image instead of reading a PDF (needs -tags ocr)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.ocrImage = *ocrImage
	if opts.ocrImage == "" {
		if fs.NArg() != 1 {
			fs.Usage()
			return options{}, fmt.Errorf("missing pdf path")
		}
		opts.path = fs.Arg(0)
	}

	opts.configPath = *configPath
	opts.format = *format
	opts.rowGap = *rowGap
	opts.cellGap = *cellGap
	opts.keepFirst = *keepFirst
	opts.normalize = *normalize
	opts.password = *password
	opts.verbose = *verbose

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if opts.configPath != "" {
		cfg, err := readConfig(opts.configPath)
		if err != nil {
			return options{}, err
		}
		cfg.apply(&opts, set)
	}

	if set["p"] {
		parsed, err := parsePages(*pages)
		if err != nil {
			return options{}, err
		}
		opts.pages = parsed
	}

	if !validFormat(opts.format) {
		return options{}, fmt.Errorf("unknown format %q", opts.format)
	}

	return opts, nil
}

// parsePages parses a comma separated list of page numbers and inclusive
// ranges.
func parsePages(s string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			for p := start; p <= end; p++ {
				pages = append(pages, p)
			}
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		pages = append(pages, p)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages in %q", s)
	}
	return pages, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(opts options, logger *zap.Logger, stdout io.Writer) error {
	ext, err := extractor(opts)
	if err != nil {
		return err
	}

	ext = ext.RowGap(opts.rowGap).CellGap(opts.cellGap).Logger(logger)
	if len(opts.pages) > 0 {
		ext = ext.Pages(opts.pages...)
	}
	if opts.keepFirst {
		ext = ext.KeepFirstChar()
	}
	if opts.normalize {
		ext = ext.Normalize()
	}

	doc, warnings, err := ext.Document()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("extraction warning",
			zap.String("code", string(w.Code)),
			zap.Int("page", w.Page),
			zap.String("message", w.Message),
		)
	}

	return writeDocument(stdout, opts.format, doc)
}

func extractor(opts options) (*pdfrows.Extractor, error) {
	if opts.ocrImage == "" {
		return pdfrows.Open(opts.path).Password(opts.password), nil
	}

	data, err := os.ReadFile(opts.ocrImage)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	page, err := client.Page(1, data)
	if err != nil {
		return nil, err
	}
	return pdfrows.FromLayouts([]*layout.Page{page}), nil
}
