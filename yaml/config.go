// Package yaml loads batch configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/slidedoc"
	yaml "gopkg.in/yaml.v3"
)

// LoadConfig reads a config file. Relative sourceDir and contentDir values
// are resolved against the file's directory, so a config behaves the same
// from any working directory. Empty scalars get their defaults.
func LoadConfig(path string) (*slidedoc.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, slidedoc.Errorf(slidedoc.ENOTFOUND, "config file %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	if cfg.SourceDir == "" {
		cfg.SourceDir = base
	} else if !filepath.IsAbs(cfg.SourceDir) {
		cfg.SourceDir = filepath.Join(base, cfg.SourceDir)
	}
	if !filepath.IsAbs(cfg.ContentDir) {
		cfg.ContentDir = filepath.Join(base, cfg.ContentDir)
	}
	return cfg, nil
}

// ParseConfig decodes a config document. Unknown fields are rejected.
func ParseConfig(data []byte) (*slidedoc.Config, error) {
	var cfg slidedoc.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, slidedoc.Errorf(slidedoc.EINVALID, "invalid config: %v", err)
	}

	cfg.ApplyDefaults()
	if cfg.LinkCategories == nil {
		cfg.LinkCategories = []string{slidedoc.DefaultLinkCategory}
	}
	return &cfg, nil
}
