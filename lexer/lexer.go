// Package lexer implements the line preprocessor: it turns a raw sequence
// of source lines into a sequence of logical lines ready for the directive
// and term parsers (spec.md §4.1).
//
// The lexer is a pure function over its input iterator: it performs no IO
// and never suspends. Backslash continuation and quote-spanning may merge
// several physical lines into one logical line; Line always reports the
// first physical line of the merge.
package lexer

import (
	"strconv"
	"strings"

	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/location"
)

// MaxLineLength is the default logical-line length threshold (spec.md §7
// supplement, E_LINE_TOO_LONG). A logical line exceeding this many bytes
// after continuation joining produces a warning but is still processed.
const MaxLineLength = 64 * 1024

// Line is one logical line of BEL source: possibly several physical lines
// joined by backslash continuation or an embedded newline inside a quoted
// string.
type Line struct {
	// Number is the 1-based physical line number of the first line this
	// logical line was assembled from.
	Number int

	// Text is the assembled, whitespace-trimmed logical line. Comment-only
	// and blank physical lines never appear here; they are dropped before
	// reaching the caller.
	Text string

	// Debug reports whether this is a "#:" debug comment line, preserved
	// verbatim (minus the "#:" prefix) rather than dropped like an
	// ordinary "#" comment.
	Debug bool
}

// Preprocess assembles raw into logical lines, reporting lexical issues
// into issues. source identifies the originating document for diagnostics.
func Preprocess(raw []string, source location.SourceID, issues *diag.Collector) []Line {
	p := &preprocessor{raw: raw, source: source, issues: issues}
	return p.run()
}

type preprocessor struct {
	raw    []string
	source location.SourceID
	issues *diag.Collector
	lines  []Line
}

func (p *preprocessor) run() []Line {
	i := 0
	for i < len(p.raw) {
		startLine := i + 1
		text, consumed, ok := p.assemble(i)
		i += consumed
		if !ok {
			continue
		}
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#:") {
			p.lines = append(p.lines, Line{
				Number: startLine,
				Text:   strings.TrimSpace(strings.TrimPrefix(text, "#:")),
				Debug:  true,
			})
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}
		if len(text) > MaxLineLength {
			p.issues.Collect(diag.NewIssue(diag.Warning, diag.E_LINE_TOO_LONG,
				"logical line exceeds maximum length").
				WithSpan(location.Point(p.source, startLine, 1)).
				WithDetail(diag.DetailKeyLine, strconv.Itoa(startLine)).
				Build())
		}
		p.lines = append(p.lines, Line{Number: startLine, Text: text})
	}
	return p.lines
}

// assemble builds one logical line starting at raw[i], following backslash
// continuation and quote-spanning rules. It returns the joined text, the
// number of physical lines consumed, and whether a usable line resulted
// (false for an unterminated quote at EOF, which is discarded per spec.md
// §4.1 after recording a warning).
func (p *preprocessor) assemble(i int) (string, int, bool) {
	var b strings.Builder
	consumed := 0
	inQuote := false

	for i+consumed < len(p.raw) {
		physical := strings.TrimRight(p.raw[i+consumed], "\r\n")
		consumed++

		if !inQuote {
			physical = strings.TrimSpace(physical)
		}

		if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			b.WriteString(" ")
		}

		trimmed, continues, quoteOpenAtEnd := scanPhysicalLine(physical, inQuote)
		b.WriteString(trimmed)
		inQuote = quoteOpenAtEnd

		if inQuote {
			continue
		}
		if continues {
			continue
		}
		return strings.TrimSpace(b.String()), consumed, true
	}

	if inQuote {
		p.issues.Collect(diag.NewIssue(diag.Warning, diag.E_UNTERMINATED_QUOTE,
			"quoted string is unterminated at end of input").
			WithSpan(location.Point(p.source, i+1, 1)).
			Build())
		return "", consumed, false
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", consumed, false
	}
	// Outside a quote, the loop only runs out of input when the last
	// physical line ended with a continuation backslash; scanPhysicalLine
	// has already stripped it from text.
	p.issues.Collect(diag.NewIssue(diag.Warning, diag.E_DANGLING_CONTINUATION,
		"trailing backslash continuation has no following line").
		WithSpan(location.Point(p.source, i+1, 1)).
		Build())
	return text, consumed, true
}

// scanPhysicalLine walks one physical line tracking quote state (carried
// in via startInQuote), and reports whether the line ends mid-quote or
// ends with a continuation backslash outside of a quote. A backslash
// immediately preceding the closing quote escapes it, per normal quoted
// string conventions.
func scanPhysicalLine(s string, startInQuote bool) (text string, continues bool, endInQuote bool) {
	inQuote := startInQuote
	runes := []rune(s)
	for idx := 0; idx < len(runes); idx++ {
		r := runes[idx]
		if r == '"' {
			if inQuote && idx > 0 && runes[idx-1] == '\\' {
				continue
			}
			inQuote = !inQuote
		}
	}
	if inQuote {
		return s, false, true
	}
	if strings.HasSuffix(s, `\`) && !strings.HasSuffix(s, `\\`) {
		return strings.TrimSuffix(s, `\`), true, false
	}
	return s, false, false
}
