package slidedoc_test

import (
	"testing"

	"github.com/fwojciec/slidedoc"
	"github.com/stretchr/testify/assert"
)

func TestFormatFrontMatter(t *testing.T) {
	t.Parallel()

	got := slidedoc.FormatFrontMatter("UPPAAL Labor", "Martin Sulzmann")

	assert.Equal(t, "---\ntitle: UPPAAL Labor\ndescription: Martin Sulzmann\n---\n", got)
}

func TestStripAuthor(t *testing.T) {
	t.Parallel()

	t.Run("removes every occurrence", func(t *testing.T) {
		t.Parallel()

		got := slidedoc.StripAuthor("Martin Sulzmann\n\ntext by Martin Sulzmann", "Martin Sulzmann")

		assert.Equal(t, "\n\ntext by ", got)
	})

	t.Run("empty author is a no-op", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "body", slidedoc.StripAuthor("body", ""))
	})
}

func TestRemoveTitleHeading(t *testing.T) {
	t.Parallel()

	t.Run("removes first matching heading line", func(t *testing.T) {
		t.Parallel()

		md := "---\ntitle: Intro\n---\n# Intro\ntext\n# Intro"

		got := slidedoc.RemoveTitleHeading(md, "Intro")

		assert.Equal(t, "---\ntitle: Intro\n---\ntext\n# Intro", got)
	})

	t.Run("keeps deeper headings with the same text", func(t *testing.T) {
		t.Parallel()

		md := "## Intro\ntext"

		assert.Equal(t, md, slidedoc.RemoveTitleHeading(md, "Intro"))
	})

	t.Run("no match leaves document unchanged", func(t *testing.T) {
		t.Parallel()

		md := "# Other\ntext"

		assert.Equal(t, md, slidedoc.RemoveTitleHeading(md, "Intro"))
	})
}
