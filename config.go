package slidedoc

// Default configuration values.
const (
	DefaultContentDir   = "astro-rewrite/src/content/docs"
	DefaultAuthor       = "Martin Sulzmann"
	DefaultLanguage     = "go"
	DefaultLinkCategory = "semesterplan"
)

// Config holds everything a batch run needs. Paths are resolved once when
// the config is built and passed down; nothing reads the working directory
// implicitly.
type Config struct {
	// SourceDir is the directory the spec source files live in.
	SourceDir string `yaml:"sourceDir"`

	// ContentDir is the root of the documentation content tree.
	ContentDir string `yaml:"contentDir"`

	// Author is stripped from converted bodies and used as the front
	// matter description.
	Author string `yaml:"author"`

	// Language is appended to untagged code fence openers.
	Language string `yaml:"language"`

	// ShiftHeadings enables the heading-level remap pass.
	ShiftHeadings bool `yaml:"shiftHeadings"`

	// LinkCategories lists the destination categories whose documents get
	// their references to other sources rewritten.
	LinkCategories []string `yaml:"linkCategories"`

	Documents []*DocumentSpec `yaml:"documents"`
}

// Validate returns an error if the config or any of its specs is invalid.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return Errorf(EINVALID, "content directory required")
	}
	if len(c.Documents) == 0 {
		return Errorf(EINVALID, "at least one document required")
	}
	seen := make(map[string]bool, len(c.Documents))
	for _, spec := range c.Documents {
		if spec == nil {
			return Errorf(EINVALID, "document entry is empty")
		}
		if err := spec.Validate(); err != nil {
			return err
		}
		if seen[spec.Destination] {
			return Errorf(EINVALID, "duplicate destination %q", spec.Destination)
		}
		seen[spec.Destination] = true
	}
	return nil
}

// RewritesLinks reports whether documents in spec's category get their
// cross-document links rewritten.
func (c *Config) RewritesLinks(spec *DocumentSpec) bool {
	cat := spec.Category()
	for _, category := range c.LinkCategories {
		if category == cat {
			return true
		}
	}
	return false
}

// ApplyDefaults fills empty scalar fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.Author == "" {
		c.Author = DefaultAuthor
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
}

// DefaultConfig returns the built-in lecture table.
func DefaultConfig() *Config {
	return &Config{
		SourceDir:      ".",
		ContentDir:     DefaultContentDir,
		Author:         DefaultAuthor,
		Language:       DefaultLanguage,
		LinkCategories: []string{DefaultLinkCategory},
		Documents: []*DocumentSpec{
			{Source: "overview.html", Destination: "overview/overview.md", Title: "Autonome Systeme - Um was geht's hier"},

			{Source: "semWi23-24.html", Destination: "semesterplan/semWi23-24.md", Title: "Autonome Systeme - Winter Semester 23/24"},

			{Source: "lec-concurrency-go.html", Destination: "teil_1/lec-concurrency-go.md", Title: "Die Programmiersprache Go"},
			{Source: "lec-concurrency-models.html", Destination: "teil_1/lec-concurrency-models.md", Title: "Concurrency models"},
			{Source: "lec-futures.html", Destination: "teil_1/lec-futures.md", Title: "Futures and Promises"},

			{Source: "lec-modelling-specification.html", Destination: "teil_2/lec-modelling-specification.md", Title: "Model-Based Specification"},
			{Source: "lec-resource-usage.html", Destination: "teil_2/lec-resource-usage.md", Title: "Resource usage (dynamic and static) verification"},
			{Source: "lec-data-race.html", Destination: "teil_2/lec-data-race.md", Title: "Dynamic data race prediction"},
			{Source: "lec-hb-vc.html", Destination: "teil_2/lec-hb-vc.md", Title: "Dynamic data race prediction - Happens-before and vector clocks"},
			{Source: "lec-deadlock.html", Destination: "teil_2/lec-deadlock.md", Title: "Dynamic deadlock prediction"},
			{Source: "verification-notes.html", Destination: "teil_2/verification-notes.md", Title: "Dynamic verification - data races and deadlocks"},

			{Source: "uppaal.html", Destination: "uppaal/uppaal.md", Title: "UPPAAL Labor"},
		},
	}
}
