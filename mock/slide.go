package mock

import "github.com/fwojciec/slidedoc"

var _ slidedoc.SlideParser = (*SlideParser)(nil)

// SlideParser is a mock implementation of slidedoc.SlideParser.
type SlideParser struct {
	ParseSlidesFn func(html string) ([]*slidedoc.Slide, error)
}

func (p *SlideParser) ParseSlides(html string) ([]*slidedoc.Slide, error) {
	return p.ParseSlidesFn(html)
}
