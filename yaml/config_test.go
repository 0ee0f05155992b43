package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/slidedoc"
	"github.com/fwojciec/slidedoc/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
sourceDir: decks
contentDir: site/src/content/docs
author: Jane Doe
shiftHeadings: true
linkCategories: [plan]
documents:
  - source: intro.html
    destination: overview/intro.md
    title: Introduction
  - source: plan.html
    destination: plan/plan.md
    title: "Plan: Winter 23/24"
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("decodes every field", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte(sample))

		require.NoError(t, err)
		assert.Equal(t, "decks", cfg.SourceDir)
		assert.Equal(t, "Jane Doe", cfg.Author)
		assert.True(t, cfg.ShiftHeadings)
		assert.Equal(t, []string{"plan"}, cfg.LinkCategories)
		require.Len(t, cfg.Documents, 2)
		assert.Equal(t, &slidedoc.DocumentSpec{
			Source:      "plan.html",
			Destination: "plan/plan.md",
			Title:       "Plan: Winter 23/24",
		}, cfg.Documents[1])
		require.NoError(t, cfg.Validate())
	})

	t.Run("fills defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte("documents: []\n"))

		require.NoError(t, err)
		assert.Equal(t, slidedoc.DefaultAuthor, cfg.Author)
		assert.Equal(t, slidedoc.DefaultLanguage, cfg.Language)
		assert.Equal(t, slidedoc.DefaultContentDir, cfg.ContentDir)
		assert.Equal(t, []string{slidedoc.DefaultLinkCategory}, cfg.LinkCategories)
	})

	t.Run("explicit empty link categories disable rewriting", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte("linkCategories: []\n"))

		require.NoError(t, err)
		assert.Empty(t, cfg.LinkCategories)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseConfig([]byte("autor: typo\n"))

		require.Error(t, err)
		assert.Equal(t, slidedoc.EINVALID, slidedoc.ErrorCode(err))
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, slidedoc.DefaultAuthor, cfg.Author)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("resolves paths against the config directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "slidedoc.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "decks"), cfg.SourceDir)
		assert.Equal(t, filepath.Join(dir, "site", "src", "content", "docs"), cfg.ContentDir)
	})

	t.Run("missing source dir defaults to config directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "slidedoc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("contentDir: /abs/docs\n"), 0644))

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, dir, cfg.SourceDir)
		assert.Equal(t, "/abs/docs", cfg.ContentDir)
	})

	t.Run("missing file is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Equal(t, slidedoc.ENOTFOUND, slidedoc.ErrorCode(err))
	})
}
