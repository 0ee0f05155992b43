package batch

import "github.com/fwojciec/slidedoc"

// PostProcess applies the fixed text passes to converter output, in order:
// author removal, front matter, duplicate title removal, the optional
// heading shift, and link rewriting for link-rewrite categories.
func PostProcess(cfg *slidedoc.Config, links *slidedoc.LinkRewriter, spec *slidedoc.DocumentSpec, body string) string {
	body = slidedoc.StripAuthor(body, cfg.Author)

	content := slidedoc.FormatFrontMatter(spec.Title, cfg.Author) + body
	content = slidedoc.RemoveTitleHeading(content, spec.Title)

	if cfg.ShiftHeadings {
		content = slidedoc.ShiftHeadings(content, slidedoc.DefaultHeadingShift)
	}
	if links != nil && cfg.RewritesLinks(spec) {
		content = links.Rewrite(content, spec)
	}
	return content
}
