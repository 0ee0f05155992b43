package slidedoc

import "strings"

// Heading is a heading lifted out of a slide, already mapped to the
// markdown level it is emitted at.
type Heading struct {
	Level int
	Text  string
}

// Markdown returns the heading as an ATX heading line.
func (h Heading) Markdown() string {
	return strings.Repeat("#", h.Level) + " " + h.Text
}

// Slide is one retained slide container with its headings extracted.
type Slide struct {
	// Headings are emitted before the converted body, in source order.
	Headings []Heading

	// BodyHTML is the container's HTML with heading lines removed.
	BodyHTML string
}

// SlideParser splits a slide-deck export into slides.
type SlideParser interface {
	// ParseSlides returns the title slide and every slide after it.
	// Returns ENOTITLESLIDE if no container is marked as the title slide.
	ParseSlides(html string) ([]*Slide, error)
}
