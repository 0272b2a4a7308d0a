package diag

// CodeCategory represents the semantic domain of a diagnostic code.
//
// Categories represent the semantic domain of an error, not necessarily the
// compiler stage that emits it. Most codes are emitted exclusively by their
// category's stage, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryLexical is for line-preprocessing and tokenization errors.
	CategoryLexical

	// CategoryControl is for metadata/control statement errors (SET, DEFINE, UNSET).
	CategoryControl

	// CategoryResource is for namespace and annotation resource resolution errors.
	CategoryResource

	// CategorySyntax is for term and relation grammar errors.
	CategorySyntax

	// CategorySemantic is for semantic validation of resolved terms and relations.
	CategorySemantic

	// CategoryGraph is for graph-layer errors (duplicate nodes/edges, invariants).
	CategoryGraph

	// CategoryAdapter is for wire-format (node-link JSON) parsing errors.
	CategoryAdapter
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryLexical:
		return "lexical"
	case CategoryControl:
		return "control"
	case CategoryResource:
		return "resource"
	case CategorySyntax:
		return "syntax"
	case CategorySemantic:
		return "semantic"
	case CategoryGraph:
		return "graph"
	case CategoryAdapter:
		return "adapter"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_UNDEFINED_NAMESPACE").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Lexical codes.
var (
	// E_UNTERMINATED_QUOTE indicates a quoted string runs past end of line
	// without a closing quote and without a continuation backslash.
	E_UNTERMINATED_QUOTE = code("E_UNTERMINATED_QUOTE", CategoryLexical)

	// E_LINE_TOO_LONG indicates a logical line (after continuation joining)
	// exceeds the configured maximum length.
	E_LINE_TOO_LONG = code("E_LINE_TOO_LONG", CategoryLexical)

	// E_DANGLING_CONTINUATION indicates a trailing backslash on the final
	// line of a document, with no following line to join.
	E_DANGLING_CONTINUATION = code("E_DANGLING_CONTINUATION", CategoryLexical)
)

// Control/metadata codes.
var (
	// E_UNKNOWN_DIRECTIVE indicates an unrecognized SET/DEFINE/UNSET keyword.
	E_UNKNOWN_DIRECTIVE = code("E_UNKNOWN_DIRECTIVE", CategoryControl)

	// E_UNSET_UNDEFINED indicates an UNSET targets an annotation that was
	// never SET.
	E_UNSET_UNDEFINED = code("E_UNSET_UNDEFINED", CategoryControl)

	// E_MISSING_NAMESPACE_NAME indicates a DEFINE NAMESPACE directive is
	// missing its required Keyword field.
	E_MISSING_NAMESPACE_NAME = code("E_MISSING_NAMESPACE_NAME", CategoryControl)

	// E_MISSING_NAMESPACE_REGEX indicates a DEFINE NAMESPACE directive is
	// missing both a URL and a Pattern.
	E_MISSING_NAMESPACE_REGEX = code("E_MISSING_NAMESPACE_REGEX", CategoryControl)

	// E_MISSING_ANNOTATION_REGEX indicates a DEFINE ANNOTATION directive is
	// missing both a URL/list and a Pattern.
	E_MISSING_ANNOTATION_REGEX = code("E_MISSING_ANNOTATION_REGEX", CategoryControl)

	// E_VERSION_FORMAT indicates a SET DOCUMENT Version value does not match
	// semantic-version-like formatting conventions.
	E_VERSION_FORMAT = code("E_VERSION_FORMAT", CategoryControl)

	// E_NAMESPACE_KEYWORD_MISMATCH indicates a namespace prefix used in a
	// term does not match any DEFINE NAMESPACE keyword in scope.
	E_NAMESPACE_KEYWORD_MISMATCH = code("E_NAMESPACE_KEYWORD_MISMATCH", CategoryControl)

	// E_MISSING_DOCUMENT_METADATA indicates a document reached EOF without
	// ever setting both SET DOCUMENT Name and SET DOCUMENT Version.
	E_MISSING_DOCUMENT_METADATA = code("E_MISSING_DOCUMENT_METADATA", CategoryControl)
)

// Resource resolution codes.
var (
	// E_UNDEFINED_NAMESPACE indicates a namespace prefix is referenced
	// before being defined via DEFINE NAMESPACE.
	E_UNDEFINED_NAMESPACE = code("E_UNDEFINED_NAMESPACE", CategoryResource)

	// E_UNDEFINED_ANNOTATION indicates an annotation keyword is referenced
	// before being defined via DEFINE ANNOTATION.
	E_UNDEFINED_ANNOTATION = code("E_UNDEFINED_ANNOTATION", CategoryResource)

	// E_NAKED_NAME indicates an identifier is used without a namespace
	// prefix where one is required.
	E_NAKED_NAME = code("E_NAKED_NAME", CategoryResource)

	// E_ILLEGAL_ANNOTATION_VALUE indicates an annotation value is not a
	// member of its namespace's enumerated value set and does not match
	// its regex pattern.
	E_ILLEGAL_ANNOTATION_VALUE = code("E_ILLEGAL_ANNOTATION_VALUE", CategoryResource)

	// E_RESOURCE_UNAVAILABLE indicates a namespace or annotation resource
	// could not be fetched or parsed.
	E_RESOURCE_UNAVAILABLE = code("E_RESOURCE_UNAVAILABLE", CategoryResource)

	// E_UNDEFINED_NAME indicates a name was used under a defined namespace
	// but is not a member of that namespace's resolved vocabulary.
	E_UNDEFINED_NAME = code("E_UNDEFINED_NAME", CategoryResource)
)

// Syntax codes (term/relation grammar).
var (
	// E_BEL_SYNTAX indicates a malformed term or relation statement.
	E_BEL_SYNTAX = code("E_BEL_SYNTAX", CategorySyntax)

	// E_NESTED_RELATION indicates a relation nested more than one level deep
	// inside a term argument, which BEL does not permit.
	E_NESTED_RELATION = code("E_NESTED_RELATION", CategorySyntax)

	// E_MALFORMED_TRANSLOCATION indicates a tloc() or translocation modifier
	// has the wrong number or shape of arguments.
	E_MALFORMED_TRANSLOCATION = code("E_MALFORMED_TRANSLOCATION", CategorySyntax)
)

// Semantic codes.
var (
	// E_INVALID_FUNCTION_SEMANTIC indicates a function is applied to an
	// argument type it does not accept (e.g., p() wrapping a list).
	E_INVALID_FUNCTION_SEMANTIC = code("E_INVALID_FUNCTION_SEMANTIC", CategorySemantic)

	// E_PLACEHOLDER_AMINO_ACID indicates a protein substitution variant uses
	// a non-standard or placeholder amino acid code.
	E_PLACEHOLDER_AMINO_ACID = code("E_PLACEHOLDER_AMINO_ACID", CategorySemantic)

	// E_MISSING_CITATION indicates a qualified edge has Evidence or
	// Annotations but no Citation, which the source grammar requires.
	E_MISSING_CITATION = code("E_MISSING_CITATION", CategorySemantic)

	// E_INVALID_CITATION indicates a citation is missing its required Type,
	// Name, or Reference fields.
	E_INVALID_CITATION = code("E_INVALID_CITATION", CategorySemantic)

	// E_INVALID_CITATION_TYPE indicates a citation's Type field is not one
	// of the recognized values (PubMed, Book, Journal, Online Resource...).
	E_INVALID_CITATION_TYPE = code("E_INVALID_CITATION_TYPE", CategorySemantic)

	// E_INVALID_PUBMED_IDENTIFIER indicates a PubMed citation's Reference is
	// not a numeric PMID.
	E_INVALID_PUBMED_IDENTIFIER = code("E_INVALID_PUBMED_IDENTIFIER", CategorySemantic)

	// E_MISSING_EVIDENCE indicates a qualified edge has a Citation but no
	// supporting Evidence text.
	E_MISSING_EVIDENCE = code("E_MISSING_EVIDENCE", CategorySemantic)

	// E_MISSING_ANNOTATION_KEY indicates an annotation value is set without
	// a recognized annotation keyword.
	E_MISSING_ANNOTATION_KEY = code("E_MISSING_ANNOTATION_KEY", CategorySemantic)

	// E_UNQUALIFIED_TRANSLOCATION_DISALLOWED indicates a tloc()/sec()/surf()
	// subject or object modifier was asserted on a statement with no
	// citation and evidence, while disallow_unqualified_translocations is on.
	E_UNQUALIFIED_TRANSLOCATION_DISALLOWED = code("E_UNQUALIFIED_TRANSLOCATION_DISALLOWED", CategorySemantic)

	// E_REQUIRED_ANNOTATION_MISSING indicates a qualified edge was asserted
	// without one of the keys in options.required_annotations currently set.
	E_REQUIRED_ANNOTATION_MISSING = code("E_REQUIRED_ANNOTATION_MISSING", CategorySemantic)
)

// Graph codes.
var (
	// E_DUPLICATE_NODE indicates two terms canonicalize to the same node
	// identity but were added with conflicting content.
	E_DUPLICATE_NODE = code("E_DUPLICATE_NODE", CategoryGraph)

	// E_DUPLICATE_EDGE indicates an edge with identical source, target,
	// relation, and qualifiers was already present (informational in most
	// configurations, but closed-set for callers that want to treat it as
	// an error).
	E_DUPLICATE_EDGE = code("E_DUPLICATE_EDGE", CategoryGraph)

	// E_SELF_LOOP indicates an edge whose source and target canonicalize to
	// the same node, which is rejected unless explicitly allowed.
	E_SELF_LOOP = code("E_SELF_LOOP", CategoryGraph)

	// E_UNRESOLVED_NODE indicates an edge endpoint references a node that
	// was never added to the graph.
	E_UNRESOLVED_NODE = code("E_UNRESOLVED_NODE", CategoryGraph)
)

// Adapter (node-link JSON) codes.
var (
	// E_ADAPTER_PARSE indicates a node-link JSON document is malformed.
	E_ADAPTER_PARSE = code("E_ADAPTER_PARSE", CategoryAdapter)

	// E_ADAPTER_UNKNOWN_NODE indicates an edge references a node ID absent
	// from the document's node list.
	E_ADAPTER_UNKNOWN_NODE = code("E_ADAPTER_UNKNOWN_NODE", CategoryAdapter)
)

// Legacy normalization info codes.
//
// These are informational (Severity Info or Hint) codes; see
// E_NAMESPACE_KEYWORD_MISMATCH for the namespace keyword hard error.
var (
	// I_LEGACY_KEYWORD_USED indicates a term used a legacy BEL form (a
	// direct activity keyword such as kin(), or sub()/trunc()) that the
	// parser normalized to its current form.
	I_LEGACY_KEYWORD_USED = code("I_LEGACY_KEYWORD_USED", CategoryControl)

	// I_NAMESPACE_DEPRECATED indicates a resolved namespace resource is
	// marked deprecated by its metadata.
	I_NAMESPACE_DEPRECATED = code("I_NAMESPACE_DEPRECATED", CategoryControl)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Lexical
	E_UNTERMINATED_QUOTE,
	E_LINE_TOO_LONG,
	E_DANGLING_CONTINUATION,
	// Control
	E_UNKNOWN_DIRECTIVE,
	E_UNSET_UNDEFINED,
	E_MISSING_NAMESPACE_NAME,
	E_MISSING_NAMESPACE_REGEX,
	E_MISSING_ANNOTATION_REGEX,
	E_VERSION_FORMAT,
	E_NAMESPACE_KEYWORD_MISMATCH,
	E_MISSING_DOCUMENT_METADATA,
	// Resource
	E_UNDEFINED_NAMESPACE,
	E_UNDEFINED_ANNOTATION,
	E_NAKED_NAME,
	E_ILLEGAL_ANNOTATION_VALUE,
	E_RESOURCE_UNAVAILABLE,
	E_UNDEFINED_NAME,
	// Syntax
	E_BEL_SYNTAX,
	E_NESTED_RELATION,
	E_MALFORMED_TRANSLOCATION,
	// Semantic
	E_INVALID_FUNCTION_SEMANTIC,
	E_PLACEHOLDER_AMINO_ACID,
	E_MISSING_CITATION,
	E_INVALID_CITATION,
	E_INVALID_CITATION_TYPE,
	E_INVALID_PUBMED_IDENTIFIER,
	E_MISSING_EVIDENCE,
	E_MISSING_ANNOTATION_KEY,
	E_UNQUALIFIED_TRANSLOCATION_DISALLOWED,
	E_REQUIRED_ANNOTATION_MISSING,
	// Graph
	E_DUPLICATE_NODE,
	E_DUPLICATE_EDGE,
	E_SELF_LOOP,
	E_UNRESOLVED_NODE,
	// Adapter
	E_ADAPTER_PARSE,
	E_ADAPTER_UNKNOWN_NODE,
	// Legacy normalization
	I_LEGACY_KEYWORD_USED,
	I_NAMESPACE_DEPRECATED,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
