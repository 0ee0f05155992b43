// Package goquery implements slide parsing on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/slidedoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Slide conventions of pandoc's slidy export.
const (
	DefaultContainerSelector = "div.slide.section.level1"
	DefaultTitleClass        = "slide-title"
)

// headingLevels maps heading tags to the markdown level they are emitted at.
// h1 sits one level under the page title; h2-h4 are folded into level 3.
var headingLevels = map[atom.Atom]int{
	atom.H1: 2,
	atom.H2: 3,
	atom.H3: 3,
	atom.H4: 3,
}

var (
	headingTagRe = regexp.MustCompile(`<(h[1-4])(?:\s[^>]*)?>`)
	anyTagRe     = regexp.MustCompile(`<[^>]*>`)
)

// Ensure SlideParser implements slidedoc.SlideParser at compile time.
var _ slidedoc.SlideParser = (*SlideParser)(nil)

// SlideParser splits an HTML slide deck into slides using CSS selectors.
type SlideParser struct {
	// ContainerSelector matches one element per slide.
	ContainerSelector string

	// TitleClass marks the first slide with real content.
	TitleClass string
}

// NewSlideParser creates a SlideParser with the slidy conventions.
func NewSlideParser() *SlideParser {
	return &SlideParser{
		ContainerSelector: DefaultContainerSelector,
		TitleClass:        DefaultTitleClass,
	}
}

// ParseSlides returns the title slide and every slide after it, in
// document order. Containers before the title slide are discarded.
func (p *SlideParser) ParseSlides(src string) ([]*slidedoc.Slide, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, slidedoc.Errorf(slidedoc.EINVALID, "failed to parse HTML: %v", err)
	}

	containers := doc.Find(p.ContainerSelector)

	first := -1
	containers.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if sel.HasClass(p.TitleClass) {
			first = i
			return false
		}
		return true
	})
	if first < 0 {
		return nil, slidedoc.Errorf(slidedoc.ENOTITLESLIDE,
			"no %q container among %d slide(s)", p.TitleClass, containers.Length())
	}

	slides := make([]*slidedoc.Slide, 0, containers.Length()-first)
	for _, node := range containers.Nodes[first:] {
		slide, err := splitSlide(node)
		if err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
	return slides, nil
}

// splitSlide serializes a container and lifts every line holding an h1-h4
// tag out of it as a heading.
func splitSlide(node *html.Node) (*slidedoc.Slide, error) {
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return nil, slidedoc.Errorf(slidedoc.EINTERNAL, "failed to render slide: %v", err)
	}

	slide := &slidedoc.Slide{}
	var body []string
	for _, line := range strings.Split(b.String(), "\n") {
		level, ok := headingLevel(line)
		if !ok {
			body = append(body, line)
			continue
		}
		if text := headingText(line); text != "" {
			slide.Headings = append(slide.Headings, slidedoc.Heading{Level: level, Text: text})
		}
	}
	slide.BodyHTML = strings.Join(body, "\n")
	return slide, nil
}

func headingLevel(line string) (int, bool) {
	m := headingTagRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	level, ok := headingLevels[atom.Lookup([]byte(m[1]))]
	return level, ok
}

// headingText strips markup from a heading line and decodes entities.
func headingText(line string) string {
	text := anyTagRe.ReplaceAllString(line, "")
	return strings.TrimSpace(html.UnescapeString(text))
}
