package resource

import (
	"fmt"
	"regexp"

	"github.com/belgraph/bel/entity"
)

// Validator is the resolved form of a declared namespace or annotation: a
// set of allowed names, a regex, or a hierarchical list (spec.md §4.3).
// Implementations are [EnumeratedValidator], [RegexValidator], and
// [HierarchicalValidator].
type Validator interface {
	// Contains reports whether name is a legal value. If fn is non-zero, the
	// check additionally requires that name is legal for that BEL function
	// (only meaningful for validators with function encodings).
	Contains(name string, fn entity.Function) bool

	// Validate is Contains expressed as an error-returning call, for direct
	// use in diagnostic construction.
	Validate(name string, fn entity.Function) error
}

// EnumeratedValidator is a fixed set of allowed names, optionally restricted
// per-name to a subset of BEL functions (the "encoding" column of a .belns
// resource file: which function letters — G, R, P, … — a name may appear
// under).
type EnumeratedValidator struct {
	names    map[string]struct{}
	encoding map[string]map[entity.Function]struct{}
}

// NewEnumerated constructs an EnumeratedValidator. encoding maps a name to
// the set of functions it is legal under; a name absent from encoding (or
// given a nil/empty function list) is legal under any function.
func NewEnumerated(names []string, encoding map[string][]entity.Function) EnumeratedValidator {
	nameSet := make(map[string]struct{}, len(names))
	for _, n := range names {
		nameSet[n] = struct{}{}
	}
	enc := make(map[string]map[entity.Function]struct{}, len(encoding))
	for name, fns := range encoding {
		if len(fns) == 0 {
			continue
		}
		set := make(map[entity.Function]struct{}, len(fns))
		for _, fn := range fns {
			set[fn] = struct{}{}
		}
		enc[name] = set
	}
	return EnumeratedValidator{names: nameSet, encoding: enc}
}

// Contains implements [Validator].
func (v EnumeratedValidator) Contains(name string, fn entity.Function) bool {
	if _, ok := v.names[name]; !ok {
		return false
	}
	if fn.IsZero() {
		return true
	}
	allowed, hasEncoding := v.encoding[name]
	if !hasEncoding {
		return true
	}
	_, ok := allowed[fn]
	return ok
}

// Validate implements [Validator].
func (v EnumeratedValidator) Validate(name string, fn entity.Function) error {
	if _, ok := v.names[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	if !v.Contains(name, fn) {
		return fmt.Errorf("%w: %q not encoded for function %s", ErrFunctionNotAllowed, name, fn)
	}
	return nil
}

// RegexValidator accepts any name matching a compiled regular expression.
type RegexValidator struct {
	re *regexp.Regexp
}

// NewRegex compiles pattern and returns a RegexValidator.
func NewRegex(pattern string) (RegexValidator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return RegexValidator{}, fmt.Errorf("resource: invalid pattern %q: %w", pattern, err)
	}
	return RegexValidator{re: re}, nil
}

// Contains implements [Validator]. Function restriction does not apply to
// regex validators; fn is ignored.
func (v RegexValidator) Contains(name string, _ entity.Function) bool {
	return v.re.MatchString(name)
}

// Validate implements [Validator].
func (v RegexValidator) Validate(name string, fn entity.Function) error {
	if !v.Contains(name, fn) {
		return fmt.Errorf("%w: %q does not match pattern %s", ErrNameNotFound, name, v.re.String())
	}
	return nil
}

// HierarchicalValidator is a set of names with a parent relation (e.g. MeSH
// tree structure), enabling ancestor lookups in addition to membership.
type HierarchicalValidator struct {
	names  map[string]struct{}
	parent map[string]string
}

// NewHierarchical constructs a HierarchicalValidator. parent maps a name to
// its immediate parent; names without an entry are roots.
func NewHierarchical(names []string, parent map[string]string) HierarchicalValidator {
	nameSet := make(map[string]struct{}, len(names))
	for _, n := range names {
		nameSet[n] = struct{}{}
	}
	p := make(map[string]string, len(parent))
	for k, v := range parent {
		p[k] = v
	}
	return HierarchicalValidator{names: nameSet, parent: p}
}

// Contains implements [Validator]. Function restriction does not apply;
// fn is ignored.
func (v HierarchicalValidator) Contains(name string, _ entity.Function) bool {
	_, ok := v.names[name]
	return ok
}

// Validate implements [Validator].
func (v HierarchicalValidator) Validate(name string, fn entity.Function) error {
	if !v.Contains(name, fn) {
		return fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return nil
}

// Ancestors returns name's ancestor chain, nearest first, stopping at the
// first name with no registered parent.
func (v HierarchicalValidator) Ancestors(name string) []string {
	var chain []string
	seen := map[string]bool{name: true}
	cur := name
	for {
		p, ok := v.parent[cur]
		if !ok || seen[p] {
			return chain
		}
		chain = append(chain, p)
		seen[p] = true
		cur = p
	}
}
