package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/slidedoc"
	"github.com/fwojciec/slidedoc/batch"
	"github.com/fwojciec/slidedoc/fs"
	"github.com/fwojciec/slidedoc/goquery"
	"github.com/fwojciec/slidedoc/htmltomarkdown"
	"github.com/fwojciec/slidedoc/pandoc"
	slidelog "github.com/fwojciec/slidedoc/slog"
	"github.com/fwojciec/slidedoc/slides"
	"github.com/fwojciec/slidedoc/sqlite"
	"github.com/fwojciec/slidedoc/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the manifest. Opened only with --manifest.
	DB *sqlite.DB

	// Runner executes pandoc. Replaced in tests.
	Runner pandoc.CommandRunner
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Runner: &pandoc.ExecRunner{},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config        string `short:"c" help:"YAML config file (default: built-in lecture table)"`
	SourceDir     string `short:"s" help:"Directory holding the HTML decks"`
	ContentDir    string `short:"d" help:"Site content directory documents are written to"`
	Converter     string `default:"pandoc" enum:"pandoc,slides" help:"Document converter (pandoc, slides)"`
	Pandoc        string `default:"pandoc" help:"Pandoc executable"`
	ShiftHeadings bool   `help:"Shift heading levels below the page title"`
	Manifest      string `short:"m" help:"SQLite manifest; documents unchanged since the last run are skipped"`
	Force         bool   `short:"f" help:"Convert every document even when unchanged"`
	Verbose       bool   `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docbuild"),
		kong.Description("Convert the configured slide decks into documentation pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var converter slidedoc.DocumentConverter
	switch cli.Converter {
	case "slides":
		converter = &slides.Extractor{
			Parser:    goquery.NewSlideParser(),
			Converter: htmltomarkdown.NewConverter(),
			Language:  cfg.Language,
			Logger:    logger,
		}
	default:
		converter = &pandoc.Converter{Runner: m.Runner, Binary: cli.Pandoc}
	}

	processor := &batch.Processor{
		Converter:     slidelog.NewLoggingDocumentConverter(converter, cli.Converter, logger),
		ConverterName: cli.Converter,
		Store:         slidelog.NewLoggingDocumentStore(fs.NewStore(cfg.SourceDir, cfg.ContentDir), logger),
		Force:         cli.Force,
		Logger:        logger,
	}

	if cli.Manifest != "" {
		m.DB = sqlite.NewDB(cli.Manifest)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open manifest at %q: %w", cli.Manifest, err)
		}
		defer m.Close()
		processor.Conversions = sqlite.NewConversionService(m.DB)
	}

	result, err := processor.Run(ctx, cfg)
	if result != nil {
		fmt.Fprintf(stdout, "%d written, %d unchanged, %d failed\n", result.Written, result.Skipped, result.Failed)
	}
	return err
}

// loadConfig returns the file or built-in config with flag overrides applied
// and directories made absolute.
func loadConfig(cli *CLI) (*slidedoc.Config, error) {
	var cfg *slidedoc.Config
	if cli.Config != "" {
		var err error
		if cfg, err = yaml.LoadConfig(cli.Config); err != nil {
			return nil, err
		}
	} else {
		cfg = slidedoc.DefaultConfig()
	}

	if cli.SourceDir != "" {
		cfg.SourceDir = cli.SourceDir
	}
	if cli.ContentDir != "" {
		cfg.ContentDir = cli.ContentDir
	}
	if cli.ShiftHeadings {
		cfg.ShiftHeadings = true
	}

	var err error
	if cfg.SourceDir, err = filepath.Abs(cfg.SourceDir); err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}
	if cfg.ContentDir, err = filepath.Abs(cfg.ContentDir); err != nil {
		return nil, fmt.Errorf("resolve content dir: %w", err)
	}
	return cfg, nil
}
