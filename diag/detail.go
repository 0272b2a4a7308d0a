package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or form.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or form received.
	DetailKeyGot = "got"

	// DetailKeyNamespace is the namespace keyword involved in the diagnostic.
	DetailKeyNamespace = "namespace"

	// DetailKeyAnnotation is the annotation keyword involved.
	DetailKeyAnnotation = "annotation"

	// DetailKeyFunction is the BEL function name (e.g., "p", "complex", "tloc").
	DetailKeyFunction = "function"

	// DetailKeyRelation is the relation keyword involved (e.g., "increases").
	DetailKeyRelation = "relation"

	// DetailKeyValue is the specific value that failed validation (annotation
	// value, citation field, identifier).
	DetailKeyValue = "value"

	// DetailKeyReason is the failure reason discriminant.
	DetailKeyReason = "reason"

	// DetailKeyDetail is the specific error description (grammar violation,
	// resolver failure, parse error).
	DetailKeyDetail = "detail"

	// DetailKeyDirective is the control-statement keyword (SET, DEFINE, UNSET).
	DetailKeyDirective = "directive"

	// DetailKeyCitationType is the citation Type field (for citation-shape errors).
	DetailKeyCitationType = "citation_type"

	// DetailKeyContext is contextual information (e.g., "lexer", "resolver").
	DetailKeyContext = "context"

	// DetailKeyId is the identifier value (e.g., synthetic SourceID, node key).
	DetailKeyId = "id"

	// DetailKeyLine is a raw line number, used when no Span is available.
	DetailKeyLine = "line"
)

// ExpectedGot creates a pair of details for type/form mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// NamespaceValue creates detail entries for namespace+value diagnostics.
//
// Use for diagnostics like E_ILLEGAL_ANNOTATION_VALUE and
// E_NAMESPACE_KEYWORD_MISMATCH.
func NamespaceValue(namespace, value string) []Detail {
	return []Detail{
		{Key: DetailKeyNamespace, Value: namespace},
		{Key: DetailKeyValue, Value: value},
	}
}

// AnnotationValue creates detail entries for annotation+value diagnostics.
//
// Use for diagnostics involving a specific annotation keyword and the
// offending value.
func AnnotationValue(annotation, value string) []Detail {
	return []Detail{
		{Key: DetailKeyAnnotation, Value: annotation},
		{Key: DetailKeyValue, Value: value},
	}
}

// FunctionArg creates detail entries for function-shape diagnostics.
//
// Use for diagnostics like E_INVALID_FUNCTION_SEMANTIC and
// E_MALFORMED_TRANSLOCATION.
func FunctionArg(function, detail string) []Detail {
	return []Detail{
		{Key: DetailKeyFunction, Value: function},
		{Key: DetailKeyDetail, Value: detail},
	}
}

// CitationField creates detail entries for malformed citation diagnostics.
//
// Use with E_INVALID_CITATION and E_INVALID_CITATION_TYPE.
func CitationField(citationType, detail string) []Detail {
	return []Detail{
		{Key: DetailKeyCitationType, Value: citationType},
		{Key: DetailKeyDetail, Value: detail},
	}
}
