// Package directive implements the Metadata & Control Parser: the dispatch
// table over SET/DEFINE/UNSET keywords that manages per-compilation state —
// document metadata, registered namespace/annotation validators, and the
// current citation/evidence/annotation context carried onto qualified edges
// (spec.md §4.2).
package directive

import (
	"sort"

	"github.com/belgraph/bel/resource"
)

// CitationState is the citation currently in scope. The optional metadata
// fields (date, authors, comment) are spec.md §3.2's "optional parsed
// metadata"; they do not participate in edge hashing (see canon.EdgeCitation).
type CitationState struct {
	Type      string
	Name      string
	Reference string
	Date      string
	Authors   []string
	Comment   string
}

// IsZero reports whether no citation is currently in scope.
func (c CitationState) IsZero() bool {
	return c.Type == "" && c.Reference == ""
}

// Context is the mutable per-compilation state threaded through directive
// dispatch and consulted by the term/relation parser when constructing edge
// data. Construct one with [NewContext]: directive dispatch writes into the
// Context's maps, which are nil in a zero Context.
type Context struct {
	// Parsing-mode flags (spec.md §4.2), fixed for the lifetime of a
	// compilation.
	AllowNested                       bool
	AllowNakedNames                   bool
	CitationClearing                  bool
	DisallowUnqualifiedTranslocations bool
	RequiredAnnotations               []string

	// Document metadata (SET DOCUMENT).
	DocumentName        string
	DocumentVersion     string
	DocumentDescription string
	DocumentAuthors     string
	DocumentLicenses    string
	DocumentContactInfo string
	DocumentCopyright   string
	DocumentDisclaimer  string
	DocumentProject     string

	namespaces  map[string]resource.Validator
	annotations map[string]resource.Validator

	Citation      CitationState
	Evidence      string
	Annotations   map[string][]string
	StatementGroup string
}

// NewContext returns a Context with citation_clearing and
// disallow_unqualified_translocations on and the other mode flags off, per
// spec.md §4.2's stated defaults.
func NewContext() *Context {
	return &Context{
		CitationClearing:                  true,
		DisallowUnqualifiedTranslocations: true,
		namespaces:                        make(map[string]resource.Validator),
		annotations:                       make(map[string]resource.Validator),
		Annotations:                       make(map[string][]string),
	}
}

// Namespace returns the validator registered for keyword, if any.
func (c *Context) Namespace(keyword string) (resource.Validator, bool) {
	v, ok := c.namespaces[keyword]
	return v, ok
}

// Annotation returns the validator registered for keyword, if any.
func (c *Context) Annotation(keyword string) (resource.Validator, bool) {
	v, ok := c.annotations[keyword]
	return v, ok
}

// NamespaceKeywords returns the keywords of every DEFINE NAMESPACE resolved
// so far, sorted for deterministic output (wire-format metadata needs a
// stable namespace list independent of map iteration order).
func (c *Context) NamespaceKeywords() []string {
	return sortedKeys(c.namespaces)
}

// AnnotationKeywords returns the keywords of every DEFINE ANNOTATION resolved
// so far, sorted for deterministic output.
func (c *Context) AnnotationKeywords() []string {
	return sortedKeys(c.annotations)
}

func sortedKeys(m map[string]resource.Validator) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasDocumentMetadata reports whether the mandatory Name and Version keys
// have both been set, per spec.md §4.2's "absence is a fatal error emitted
// after EOF" rule.
func (c *Context) HasDocumentMetadata() bool {
	return c.DocumentName != "" && c.DocumentVersion != ""
}

// clearCitationScope implements citation-clearing mode: a new SET Citation
// clears evidence and all free annotations accumulated under the previous
// citation, while STATEMENT_GROUP survives (spec.md §4.2).
func (c *Context) clearCitationScope() {
	c.Evidence = ""
	for k := range c.Annotations {
		delete(c.Annotations, k)
	}
}
