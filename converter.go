package slidedoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown, preserving inline
	// formatting, lists, links and fenced code for pre/code blocks.
	Convert(html string) (string, error)
}
