// Package htmltomarkdown converts the body of one slide into markdown with
// github.com/JohannesKaufmann/html-to-markdown/v2. Code blocks come out as
// backtick fences, widened when the code itself contains backtick runs, so
// the fence tagging pass can track them.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/slidedoc"
)

var _ slidedoc.Converter = (*Converter)(nil)

// Converter turns slide body HTML into markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter with commonmark output, backtick code
// fences and table support.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(
					commonmark.WithCodeBlockFence(slidedoc.FenceMarker),
				),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert returns the trimmed markdown for a slide body. A slide whose
// markup carries no content, such as a container holding only whitespace
// or empty paragraphs, converts to "" without error.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", slidedoc.Errorf(slidedoc.EINVALID, "empty slide body")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", slidedoc.Errorf(slidedoc.ECONVERTER, "html-to-markdown: %v", err)
	}
	return strings.TrimSpace(md), nil
}
