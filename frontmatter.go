package slidedoc

import "strings"

// FormatFrontMatter returns the front matter block the documentation site
// reads the page title and description from.
func FormatFrontMatter(title, description string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(title)
	b.WriteString("\ndescription: ")
	b.WriteString(description)
	b.WriteString("\n---\n")
	return b.String()
}

// StripAuthor removes every occurrence of author from body.
func StripAuthor(body, author string) string {
	if author == "" {
		return body
	}
	return strings.ReplaceAll(body, author, "")
}

// RemoveTitleHeading removes the first line that is exactly "# " + title,
// ignoring surrounding whitespace. Deeper headings with the same text are
// not touched.
func RemoveTitleHeading(markdown, title string) string {
	want := "# " + strings.TrimSpace(title)
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == want {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		}
	}
	return markdown
}
