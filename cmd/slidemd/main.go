package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/slidedoc"
	"github.com/fwojciec/slidedoc/goquery"
	"github.com/fwojciec/slidedoc/htmltomarkdown"
	"github.com/fwojciec/slidedoc/slides"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `short:"i" required:"" help:"input file path"`
	Output string `short:"o" required:"" help:"output file path"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("slidemd"),
		kong.Description("Convert an HTML slide deck into a markdown document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	html, err := os.ReadFile(cli.Input)
	if errors.Is(err, fs.ErrNotExist) {
		return slidedoc.Errorf(slidedoc.ESOURCENOTFOUND, "input %q not found", cli.Input)
	} else if err != nil {
		return err
	}

	extractor := &slides.Extractor{
		Parser:    goquery.NewSlideParser(),
		Converter: htmltomarkdown.NewConverter(),
		Language:  slidedoc.DefaultLanguage,
		Logger:    slog.New(slog.NewTextHandler(stderr, nil)),
	}

	md, err := extractor.Extract(string(html))
	if err != nil {
		return err
	}

	if err := os.WriteFile(cli.Output, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", cli.Output, err)
	}
	return nil
}
