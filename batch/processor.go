// Package batch converts every configured slide deck into a site document.
// Documents are processed one at a time; a failing document is recorded
// and the batch moves on.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/slidedoc"
)

// Processor runs the batch post-processor over a config.
type Processor struct {
	Converter slidedoc.DocumentConverter
	Store     slidedoc.DocumentStore

	// ConverterName identifies the converter in the manifest fingerprint,
	// so switching converters invalidates recorded conversions. Defaults to
	// the converter's type.
	ConverterName string

	// Conversions is optional. When set, documents whose inputs are
	// unchanged since the last recorded conversion are skipped.
	Conversions slidedoc.ConversionService

	// Force converts every document even when the manifest says it is
	// up to date.
	Force bool

	Logger *slog.Logger
}

// Result holds the outcome of a batch run.
type Result struct {
	Written int
	Skipped int
	Failed  int
}

// Run processes every document in cfg. Failures do not stop the batch;
// they are returned together as a *slidedoc.BatchError. A cancelled context
// stops the batch before the next document.
func (p *Processor) Run(ctx context.Context, cfg *slidedoc.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	links := slidedoc.NewLinkRewriter(cfg.Documents)
	fingerprint := configFingerprint(cfg, p.converterName())

	result := &Result{}
	var failures []*slidedoc.Failure
	for _, spec := range cfg.Documents {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		begin := time.Now()
		skipped, err := p.process(ctx, cfg, links, spec, fingerprint)
		switch {
		case err != nil:
			result.Failed++
			failures = append(failures, &slidedoc.Failure{Spec: spec, Err: err})
			p.logger().Error("document failed",
				"source", spec.Source,
				"code", slidedoc.ErrorCode(err),
				"err", err,
			)
			p.forget(ctx, spec)
		case skipped:
			result.Skipped++
			p.logger().Debug("document unchanged", "source", spec.Source, "destination", spec.Destination)
		default:
			result.Written++
			p.logger().Info("document written",
				"source", spec.Source,
				"destination", spec.Destination,
				"duration", time.Since(begin),
			)
		}
	}

	if len(failures) > 0 {
		return result, &slidedoc.BatchError{Failures: failures}
	}
	return result, nil
}

// process converts one document. It reports skipped=true when the manifest
// shows the destination is already up to date.
func (p *Processor) process(ctx context.Context, cfg *slidedoc.Config, links *slidedoc.LinkRewriter, spec *slidedoc.DocumentSpec, fingerprint string) (skipped bool, err error) {
	src, err := p.Store.ReadSource(ctx, spec)
	if err != nil {
		return false, err
	}

	hash := sourceHash(src, spec, fingerprint)
	if p.Conversions != nil && !p.Force {
		upToDate, err := p.upToDate(ctx, spec, hash)
		if err != nil {
			return false, err
		}
		if upToDate {
			return true, nil
		}
	}

	body, err := p.Converter.ConvertDocument(ctx, src)
	if err != nil {
		return false, fmt.Errorf("convert %s: %w", spec.Source, err)
	}

	doc := &slidedoc.Document{
		Spec:    spec,
		Content: PostProcess(cfg, links, spec, body),
	}
	if err := p.Store.WriteDocument(ctx, doc); err != nil {
		return false, fmt.Errorf("write %s: %w", spec.Destination, err)
	}

	if p.Conversions != nil {
		if err := p.Conversions.SaveConversion(ctx, &slidedoc.Conversion{
			Destination: spec.Destination,
			Title:       spec.Title,
			SourceHash:  hash,
		}); err != nil {
			return false, fmt.Errorf("record conversion of %s: %w", spec.Destination, err)
		}
	}
	return false, nil
}

func (p *Processor) upToDate(ctx context.Context, spec *slidedoc.DocumentSpec, hash string) (bool, error) {
	rec, err := p.Conversions.FindConversionByDestination(ctx, spec.Destination)
	if slidedoc.ErrorCode(err) == slidedoc.ENOTFOUND {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if rec.SourceHash != hash {
		return false, nil
	}
	return p.Store.DocumentExists(ctx, spec)
}

// forget drops the manifest record of a failed document, so a later run
// with the same inputs converts it again instead of trusting whatever the
// failed run left at the destination.
func (p *Processor) forget(ctx context.Context, spec *slidedoc.DocumentSpec) {
	if p.Conversions == nil {
		return
	}
	err := p.Conversions.DeleteConversion(ctx, spec.Destination)
	if err != nil && slidedoc.ErrorCode(err) != slidedoc.ENOTFOUND {
		p.logger().Warn("manifest record not removed",
			"destination", spec.Destination,
			"err", err,
		)
	}
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// sourceHash identifies the inputs that determine a document's content.
func sourceHash(src []byte, spec *slidedoc.DocumentSpec, fingerprint string) string {
	h := xxhash.New()
	_, _ = h.Write(src)
	for _, s := range []string{spec.Title, spec.Destination, fingerprint} {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(s)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// configFingerprint captures the batch-wide settings that change output:
// the passes that run and the set of documents links can point at.
func configFingerprint(cfg *slidedoc.Config, converter string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s|%t|%s", converter, cfg.Author, cfg.Language, cfg.ShiftHeadings, strings.Join(cfg.LinkCategories, ","))
	for _, spec := range cfg.Documents {
		b.WriteString("|")
		b.WriteString(spec.Source)
		b.WriteString("=")
		b.WriteString(spec.Destination)
	}
	return b.String()
}

func (p *Processor) converterName() string {
	if p.ConverterName != "" {
		return p.ConverterName
	}
	return fmt.Sprintf("%T", p.Converter)
}
