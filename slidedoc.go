// Package slidedoc converts HTML slide-deck exports into markdown documents
// for a static documentation site. It extracts slide content, rewrites
// titles into front matter, normalizes heading levels, and patches links
// between the converted documents.
//
// This package contains domain types, interfaces and the pure markdown
// passes, following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.
// goquery/, htmltomarkdown/, pandoc/, sqlite/).
package slidedoc
