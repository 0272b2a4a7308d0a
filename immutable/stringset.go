package immutable

import (
	"iter"
	"sort"
)

// StringSet provides immutable access to a deduplicated, sorted set of strings.
//
// Edge annotations are always represented as a StringSet on output, even when
// a single value was asserted on input (the BEL annotation-value model treats
// "SET Key = \"v\"" as a one-element set). Iteration order is lexicographic by
// value, which makes StringSet suitable for use directly in canonical-form
// construction without a separate sort step at the call site.
//
// StringSet is safe for concurrent read access.
type StringSet struct {
	values []string
}

// WrapStringSet wraps a slice of strings with ownership transfer semantics.
//
// Duplicate values are removed and the result is sorted lexicographically.
// After calling WrapStringSet, the caller MUST NOT retain or use any
// reference to values expecting further mutation to be reflected.
func WrapStringSet(values []string) StringSet {
	if len(values) == 0 {
		return StringSet{}
	}

	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)

	deduped := sorted[:0:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			deduped = append(deduped, v)
		}
	}
	return StringSet{values: deduped}
}

// Len returns the number of distinct values in the set.
func (s StringSet) Len() int {
	return len(s.values)
}

// Contains reports whether v is a member of the set.
func (s StringSet) Contains(v string) bool {
	i := sort.SearchStrings(s.values, v)
	return i < len(s.values) && s.values[i] == v
}

// Iter returns an iterator over the set's values in sorted order.
func (s StringSet) Iter() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the set's values as a sorted, mutable []string.
func (s StringSet) Slice() []string {
	if len(s.values) == 0 {
		return nil
	}
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Union returns a new StringSet containing the values of s and other.
func (s StringSet) Union(other StringSet) StringSet {
	combined := make([]string, 0, len(s.values)+len(other.values))
	combined = append(combined, s.values...)
	combined = append(combined, other.values...)
	return WrapStringSet(combined)
}

// Equal reports whether s and other contain exactly the same values.
func (s StringSet) Equal(other StringSet) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for i, v := range s.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}
