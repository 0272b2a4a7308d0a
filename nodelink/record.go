package nodelink

// DocumentMetadata mirrors the SET DOCUMENT fields a compiled
// [directive.Context] accumulates. Field tags drive [normalize.Normalize]'s
// flattening into the wire format's "metadata" object.
type DocumentMetadata struct {
	Name        string `bel:"name"`
	Version     string `bel:"version"`
	Description string `bel:"description,omitempty"`
	Authors     string `bel:"authors,omitempty"`
	Licenses    string `bel:"licenses,omitempty"`
	ContactInfo string `bel:"contactInfo,omitempty"`
	Copyright   string `bel:"copyright,omitempty"`
	Disclaimer  string `bel:"disclaimer,omitempty"`
	Project     string `bel:"project,omitempty"`
}

// document is the top-level JSON shape (spec.md §6.3).
type document struct {
	Metadata    map[string]any    `json:"metadata"`
	Namespaces  []string          `json:"namespaces,omitempty"`
	Annotations []string          `json:"annotations,omitempty"`
	Nodes       []nodeRecord      `json:"nodes"`
	Edges       []edgeRecord      `json:"edges"`
	Warnings    []warningRecord   `json:"warnings,omitempty"`
}

// nodeRecord carries one graph node: its canonical BEL term text (the
// entity's complete, grammar-valid source form) and the content hash it
// produces.
type nodeRecord struct {
	Hash      string `json:"hash"`
	Function  string `json:"function"`
	Canonical string `json:"canonical"`
}

// edgeRecord carries one graph edge, referencing its endpoints by node hash.
type edgeRecord struct {
	Hash           string              `json:"hash"`
	SourceHash     string              `json:"source_hash"`
	TargetHash     string              `json:"target_hash"`
	Relation       string              `json:"relation"`
	SourceModifier *modifierRecord     `json:"source_modifier,omitempty"`
	TargetModifier *modifierRecord     `json:"target_modifier,omitempty"`
	Citation       *citationRecord     `json:"citation,omitempty"`
	Evidence       string              `json:"evidence,omitempty"`
	Annotations    map[string][]string `json:"annotations,omitempty"`
	Line           int                 `json:"line,omitempty"`
	Qualified      bool                `json:"qualified"`
}

// conceptRecord is the wire shape of a [concept.Concept].
type conceptRecord struct {
	Namespace  string `json:"namespace,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Name       string `json:"name,omitempty"`
}

// modifierRecord is the wire shape of a [relation.Modifier].
type modifierRecord struct {
	Kind         string         `json:"kind"`
	Effect       *conceptRecord `json:"effect,omitempty"`
	FromLocation *conceptRecord `json:"from_location,omitempty"`
	ToLocation   *conceptRecord `json:"to_location,omitempty"`
	Location     *conceptRecord `json:"location,omitempty"`
}

// citationRecord is the wire shape of a [graph.Citation].
type citationRecord struct {
	Type      string   `json:"type"`
	Name      string   `json:"name,omitempty"`
	Reference string   `json:"reference"`
	Date      string   `json:"date,omitempty"`
	Authors   []string `json:"authors,omitempty"`
	Comment   string   `json:"comment,omitempty"`
}

// warningRecord is the wire shape of a [graph.Warning].
type warningRecord struct {
	Line     int    `json:"line"`
	Original string `json:"original"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}
