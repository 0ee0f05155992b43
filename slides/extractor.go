// Package slides turns an HTML slide deck into a single markdown document.
package slides

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/slidedoc"
)

// Ensure Extractor implements slidedoc.DocumentConverter at compile time.
var _ slidedoc.DocumentConverter = (*Extractor)(nil)

// Extractor parses a deck into slides, converts each slide body, and tags
// code fences with a language.
type Extractor struct {
	Parser    slidedoc.SlideParser
	Converter slidedoc.Converter

	// Language is appended to untagged fence openers. Empty disables tagging.
	Language string

	Logger *slog.Logger
}

// Extract returns the markdown for an HTML deck. Each slide contributes its
// headings followed by its converted body. A document that ends inside an
// open code fence is logged and returned as is.
func (e *Extractor) Extract(html string) (string, error) {
	slides, err := e.Parser.ParseSlides(html)
	if err != nil {
		return "", err
	}

	var blocks []string
	for i, slide := range slides {
		for _, h := range slide.Headings {
			blocks = append(blocks, h.Markdown())
		}

		if strings.TrimSpace(slide.BodyHTML) == "" {
			continue
		}
		md, err := e.Converter.Convert(slide.BodyHTML)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", i+1, err)
		}
		if md = strings.TrimSpace(md); md != "" {
			blocks = append(blocks, md)
		}
	}

	out, err := slidedoc.TagFences(strings.Join(blocks, "\n\n"), e.Language)
	if err != nil {
		if slidedoc.ErrorCode(err) != slidedoc.EFENCE {
			return "", err
		}
		e.logger().Warn("malformed fence sequence",
			"code", slidedoc.EFENCE,
			"detail", slidedoc.ErrorMessage(err),
		)
	}
	return out + "\n", nil
}

// ConvertDocument implements slidedoc.DocumentConverter so the extractor
// can stand in for the external converter in a batch.
func (e *Extractor) ConvertDocument(ctx context.Context, html []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	md, err := e.Extract(string(html))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(md) == "" {
		return "", slidedoc.Errorf(slidedoc.ECONVERTER, "slide extraction produced no output")
	}
	return md, nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
