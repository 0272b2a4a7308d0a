package directive

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/internal/textlit"
	"github.com/belgraph/bel/location"
	"github.com/belgraph/bel/resource"
)

var (
	setDocumentRe  = regexp.MustCompile(`(?i)^SET\s+DOCUMENT\s+(\w+)\s*=\s*(.+)$`)
	defineRe       = regexp.MustCompile(`(?i)^DEFINE\s+(NAMESPACE|ANNOTATION)\s+(\S+)\s+AS\s+(URL|PATTERN|LIST)\s+(.+)$`)
	setCitationRe  = regexp.MustCompile(`(?i)^SET\s+Citation\s*=\s*\{(.+)\}$`)
	setEvidenceRe  = regexp.MustCompile(`(?i)^SET\s+(Evidence|SupportingText)\s*=\s*"(.*)"$`)
	setGroupRe     = regexp.MustCompile(`(?i)^SET\s+STATEMENT_GROUP\s*=\s*"(.*)"$`)
	setKeyValueRe  = regexp.MustCompile(`(?s)^SET\s+(\w+)\s*=\s*(.+)$`)
	unsetRe        = regexp.MustCompile(`(?i)^UNSET\s+(.+)$`)
	quotedSegment  = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// Dispatch attempts to interpret text as a SET/DEFINE/UNSET directive
// against c, resolving any DEFINE ... AS URL through resolver. It reports
// whether text was consumed as a directive; when false, the caller should
// forward the line to the term/relation parser instead (spec.md §4.2's
// "anything else" fallthrough rule).
func Dispatch(goCtx context.Context, line string, c *Context, resolver *resource.Resolver, source location.SourceID, lineNumber int, issues *diag.Collector) bool {
	switch {
	case setDocumentRe.MatchString(line):
		c.handleSetDocument(setDocumentRe.FindStringSubmatch(line))
		return true
	case defineRe.MatchString(line):
		c.handleDefine(goCtx, defineRe.FindStringSubmatch(line), resolver, source, lineNumber, issues)
		return true
	case setCitationRe.MatchString(line):
		c.handleSetCitation(setCitationRe.FindStringSubmatch(line), source, lineNumber, issues)
		return true
	case setEvidenceRe.MatchString(line):
		m := setEvidenceRe.FindStringSubmatch(line)
		c.Evidence = unquote(m[2])
		return true
	case setGroupRe.MatchString(line):
		m := setGroupRe.FindStringSubmatch(line)
		c.StatementGroup = unquote(m[1])
		return true
	case unsetRe.MatchString(line):
		m := unsetRe.FindStringSubmatch(line)
		c.handleUnset(strings.TrimSpace(m[1]), source, lineNumber, issues)
		return true
	case setKeyValueRe.MatchString(line):
		m := setKeyValueRe.FindStringSubmatch(line)
		c.handleSetAnnotation(m[1], m[2], source, lineNumber, issues)
		return true
	default:
		return false
	}
}

func (c *Context) handleSetDocument(m []string) {
	key, value := m[1], unquote(strings.TrimSpace(m[2]))
	switch strings.ToLower(key) {
	case "name":
		c.DocumentName = value
	case "version":
		c.DocumentVersion = value
	case "description":
		c.DocumentDescription = value
	case "authors":
		c.DocumentAuthors = value
	case "licenses":
		c.DocumentLicenses = value
	case "contactinfo":
		c.DocumentContactInfo = value
	case "copyright":
		c.DocumentCopyright = value
	case "disclaimer":
		c.DocumentDisclaimer = value
	case "project":
		c.DocumentProject = value
	}
}

func (c *Context) handleDefine(goCtx context.Context, m []string, resolver *resource.Resolver, source location.SourceID, lineNumber int, issues *diag.Collector) {
	kind, keyword, form, rest := strings.ToUpper(m[1]), m[2], strings.ToUpper(m[3]), strings.TrimSpace(m[4])

	target := &c.namespaces
	code := diag.E_MISSING_NAMESPACE_REGEX
	if kind == "ANNOTATION" {
		target = &c.annotations
		code = diag.E_MISSING_ANNOTATION_REGEX
	}

	if _, exists := (*target)[keyword]; exists {
		issues.Collect(diag.NewIssue(diag.Fatal, diag.E_UNKNOWN_DIRECTIVE,
			fmt.Sprintf("namespace or annotation keyword %q is already defined", keyword)).
			WithSpan(location.Point(source, lineNumber, 1)).
			WithDetail(diag.DetailKeyDirective, kind).
			Build())
		return
	}

	switch form {
	case "URL":
		url := unquote(strings.Trim(rest, `"`))
		if resolver == nil {
			issues.Collect(diag.NewIssue(diag.Fatal, diag.E_RESOURCE_UNAVAILABLE,
				"no resource resolver configured for DEFINE ... AS URL").
				WithSpan(location.Point(source, lineNumber, 1)).
				Build())
			return
		}
		v, err := resolver.Resolve(goCtx, url)
		if err != nil {
			issues.Collect(diag.NewIssue(diag.Fatal, diag.E_RESOURCE_UNAVAILABLE,
				fmt.Sprintf("failed to resolve %s: %v", url, err)).
				WithSpan(location.Point(source, lineNumber, 1)).
				Build())
			return
		}
		(*target)[keyword] = v
	case "PATTERN":
		pattern := unquote(strings.Trim(rest, `"`))
		v, err := resource.NewRegex(pattern)
		if err != nil {
			issues.Collect(diag.NewIssue(diag.Fatal, code,
				fmt.Sprintf("invalid pattern for %s: %v", keyword, err)).
				WithSpan(location.Point(source, lineNumber, 1)).
				Build())
			return
		}
		(*target)[keyword] = v
	case "LIST":
		names := parseQuotedList(rest)
		(*target)[keyword] = resource.NewEnumerated(names, nil)
	}
}

func (c *Context) handleSetCitation(m []string, source location.SourceID, lineNumber int, issues *diag.Collector) {
	fields := parseQuotedList(m[1])
	if len(fields) < 3 {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_CITATION,
			"SET Citation requires at least type, name, and reference").
			WithSpan(location.Point(source, lineNumber, 1)).
			Build())
		return
	}
	if c.CitationClearing {
		c.clearCitationScope()
	}
	state := CitationState{Type: fields[0], Name: fields[1], Reference: fields[2]}
	if len(fields) > 3 {
		state.Date = fields[3]
	}
	if len(fields) > 4 {
		state.Authors = strings.Split(fields[4], "|")
	}
	if len(fields) > 5 {
		state.Comment = fields[5]
	}
	if strings.EqualFold(state.Type, "PubMed") {
		if _, err := strconv.Atoi(state.Reference); err != nil {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_PUBMED_IDENTIFIER,
				fmt.Sprintf("PubMed citation reference %q is not numeric", state.Reference)).
				WithSpan(location.Point(source, lineNumber, 1)).
				Build())
		}
	}
	c.Citation = state
}

func (c *Context) handleSetAnnotation(key, rawValue string, source location.SourceID, lineNumber int, issues *diag.Collector) {
	if _, ok := c.annotations[key]; !ok {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_UNDEFINED_ANNOTATION,
			fmt.Sprintf("annotation keyword %q was never declared with DEFINE ANNOTATION", key)).
			WithSpan(location.Point(source, lineNumber, 1)).
			WithDetails(diag.AnnotationValue(key, rawValue)...).
			Build())
		return
	}
	values := parseQuotedList(strings.TrimSpace(rawValue))
	if len(values) == 0 {
		values = []string{unquote(strings.TrimSpace(rawValue))}
	}
	validator := c.annotations[key]
	for _, v := range values {
		if err := validator.Validate(v, entity.Function{}); err != nil {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_ANNOTATION_VALUE,
				fmt.Sprintf("value %q is not legal for annotation %q", v, key)).
				WithSpan(location.Point(source, lineNumber, 1)).
				WithDetails(diag.AnnotationValue(key, v)...).
				Build())
			continue
		}
	}
	sort.Strings(values)
	c.Annotations[key] = values
}

func (c *Context) handleUnset(target string, source location.SourceID, lineNumber int, issues *diag.Collector) {
	switch {
	case strings.EqualFold(target, "ALL"):
		c.Citation = CitationState{}
		c.Evidence = ""
		c.StatementGroup = ""
		for k := range c.Annotations {
			delete(c.Annotations, k)
		}
	case strings.EqualFold(target, "STATEMENT_GROUP"):
		c.StatementGroup = ""
	case strings.HasPrefix(target, "{"):
		for _, key := range parseQuotedList(strings.Trim(target, "{}")) {
			c.unsetKey(key, source, lineNumber, issues)
		}
	default:
		c.unsetKey(strings.Trim(target, `"`), source, lineNumber, issues)
	}
}

func (c *Context) unsetKey(key string, source location.SourceID, lineNumber int, issues *diag.Collector) {
	if strings.EqualFold(key, "Evidence") || strings.EqualFold(key, "SupportingText") {
		c.Evidence = ""
		return
	}
	if strings.EqualFold(key, "Citation") {
		c.Citation = CitationState{}
		return
	}
	if _, ok := c.Annotations[key]; !ok {
		issues.Collect(diag.NewIssue(diag.Warning, diag.E_MISSING_ANNOTATION_KEY,
			fmt.Sprintf("UNSET %s: key was never set", key)).
			WithSpan(location.Point(source, lineNumber, 1)).
			Build())
		return
	}
	delete(c.Annotations, key)
}

// parseQuotedList extracts the ordered list of quoted-string values found in
// s, unescaping each. Used for DEFINE ... AS LIST {...}, SET Citation {...},
// and set-valued SET <annotation> = {...}.
func parseQuotedList(s string) []string {
	matches := quotedSegment.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, unquote(`"`+m[1]+`"`))
	}
	return out
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	v, err := textlit.ConvertString(s)
	if err != nil {
		return strings.Trim(s, `"`)
	}
	return v
}
