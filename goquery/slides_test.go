package goquery_test

import (
	"testing"

	"github.com/fwojciec/slidedoc"
	"github.com/fwojciec/slidedoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deck = `<!DOCTYPE html>
<html>
<body>
<div class="slide section level1">
<h1>Agenda</h1>
<p>Discarded before the title slide</p>
</div>
<div class="slide section level1 slide-title">
<h1>Intro</h1>
<p>Welcome to the <em>course</em>.</p>
</div>
<div class="slide section level1">
<h2>Goroutines &amp; Channels</h2>
<h3>Basics</h3>
<ul>
<li>go keyword</li>
</ul>
</div>
</body>
</html>`

func TestSlideParser_ParseSlides(t *testing.T) {
	t.Parallel()

	t.Run("discards slides before the title slide", func(t *testing.T) {
		t.Parallel()

		slides, err := goquery.NewSlideParser().ParseSlides(deck)

		require.NoError(t, err)
		require.Len(t, slides, 2)
		for _, s := range slides {
			assert.NotContains(t, s.BodyHTML, "Discarded")
			for _, h := range s.Headings {
				assert.NotEqual(t, "Agenda", h.Text)
			}
		}
	})

	t.Run("maps h1 to level 2", func(t *testing.T) {
		t.Parallel()

		slides, err := goquery.NewSlideParser().ParseSlides(deck)

		require.NoError(t, err)
		assert.Equal(t, []slidedoc.Heading{{Level: 2, Text: "Intro"}}, slides[0].Headings)
	})

	t.Run("maps h2 to h4 to level 3 and decodes entities", func(t *testing.T) {
		t.Parallel()

		slides, err := goquery.NewSlideParser().ParseSlides(deck)

		require.NoError(t, err)
		assert.Equal(t, []slidedoc.Heading{
			{Level: 3, Text: "Goroutines & Channels"},
			{Level: 3, Text: "Basics"},
		}, slides[1].Headings)
	})

	t.Run("removes heading lines from the body", func(t *testing.T) {
		t.Parallel()

		slides, err := goquery.NewSlideParser().ParseSlides(deck)

		require.NoError(t, err)
		assert.NotContains(t, slides[0].BodyHTML, "<h1>")
		assert.Contains(t, slides[0].BodyHTML, "<em>course</em>")
		assert.NotContains(t, slides[1].BodyHTML, "<h2>")
		assert.NotContains(t, slides[1].BodyHTML, "<h3>")
		assert.Contains(t, slides[1].BodyHTML, "<li>go keyword</li>")
	})

	t.Run("keeps consecutive heading lines", func(t *testing.T) {
		t.Parallel()

		src := `<div class="slide section level1 slide-title">
<h1>One</h1>
<h4>Two</h4>
<h2>Three</h2>
</div>`

		slides, err := goquery.NewSlideParser().ParseSlides(src)

		require.NoError(t, err)
		require.Len(t, slides, 1)
		assert.Len(t, slides[0].Headings, 3)
	})

	t.Run("returns ENOTITLESLIDE without a title slide", func(t *testing.T) {
		t.Parallel()

		src := `<div class="slide section level1"><p>a</p></div>
<div class="slide section level1"><p>b</p></div>`

		_, err := goquery.NewSlideParser().ParseSlides(src)

		require.Error(t, err)
		assert.Equal(t, slidedoc.ENOTITLESLIDE, slidedoc.ErrorCode(err))
		assert.Contains(t, slidedoc.ErrorMessage(err), "2 slide(s)")
	})

	t.Run("returns ENOTITLESLIDE for a document without slides", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSlideParser().ParseSlides(`<p>not a deck</p>`)

		assert.Equal(t, slidedoc.ENOTITLESLIDE, slidedoc.ErrorCode(err))
	})

	t.Run("honors custom conventions", func(t *testing.T) {
		t.Parallel()

		p := &goquery.SlideParser{ContainerSelector: "section.page", TitleClass: "start"}
		src := `<section class="page"><p>skip</p></section>
<section class="page start"><p>keep</p></section>`

		slides, err := p.ParseSlides(src)

		require.NoError(t, err)
		require.Len(t, slides, 1)
		assert.Contains(t, slides[0].BodyHTML, "keep")
	})
}
