package slidedoc

import (
	"regexp"
	"strings"
)

// LinkRewriter rewrites references to batch source files into links to the
// converted documents.
type LinkRewriter struct {
	rules []linkRule
}

type linkRule struct {
	spec *DocumentSpec
	re   *regexp.Regexp
	repl string
}

// NewLinkRewriter compiles one rule per spec. A reference matches only when
// it is a markdown link target or href attribute naming the source file
// exactly, optionally prefixed with "./" and followed by a fragment.
func NewLinkRewriter(specs []*DocumentSpec) *LinkRewriter {
	rules := make([]linkRule, 0, len(specs))
	for _, spec := range specs {
		re := regexp.MustCompile(`(\]\(|href=")(?:\./)?` + regexp.QuoteMeta(spec.Source) + `(#[^)"\s]*)?([)"\s])`)
		target := strings.ReplaceAll(spec.LinkTarget(), "$", "$$")
		rules = append(rules, linkRule{
			spec: spec,
			re:   re,
			repl: "${1}" + target + "${2}${3}",
		})
	}
	return &LinkRewriter{rules: rules}
}

// Rewrite replaces references to every spec other than self. References to
// files that are not in the batch are left untouched.
func (r *LinkRewriter) Rewrite(markdown string, self *DocumentSpec) string {
	for _, rule := range r.rules {
		if self != nil && rule.spec.Source == self.Source {
			continue
		}
		markdown = rule.re.ReplaceAllString(markdown, rule.repl)
	}
	return markdown
}
