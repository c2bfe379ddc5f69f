package outlinetext

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

// ErrSyntax marks every parse error. Use errors.Is to detect it.
var ErrSyntax = errors.New("outlinetext: syntax error")

// ParseOptions controls Parse.
type ParseOptions struct {
	// InputEncoding is used when the input has no byte order mark.
	// Empty means UTF-8.
	InputEncoding string

	// RequireHeader rejects input whose first non-comment line is not Header.
	RequireHeader bool
}

// line is one item line after indentation and marker handling.
type line struct {
	num      int
	depth    int
	item     string
	expanded bool
	group    bool
}

// Parse reads outline text into a snapshot.
func Parse(data []byte, opts ParseOptions) (*outline.Snapshot[string], error) {
	text, err := decodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}

	s := outline.New[string]()
	var parents []string // parents[d] is the last item seen at depth d
	seenHeader := false
	first := true

	scanner := bufio.NewScanner(bytes.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	num := 0
	for scanner.Scan() {
		num++
		raw := strings.TrimRight(scanner.Text(), CR)
		trim := strings.TrimSpace(raw)
		if trim == "" || strings.HasPrefix(trim, CommentPrefix) {
			continue
		}
		if first {
			first = false
			if trim == Header {
				seenHeader = true
				continue
			}
			if opts.RequireHeader {
				return nil, syntaxErrorf(num, "missing header %q", Header)
			}
		}

		ln, err := lexLine(num, raw)
		if err != nil {
			return nil, err
		}
		if ln.depth > len(parents) {
			return nil, syntaxErrorf(num, "indented %d levels below its parent", ln.depth-len(parents))
		}
		if s.Contains(ln.item) {
			return nil, syntaxErrorf(num, "duplicate item %q", ln.item)
		}
		parents = parents[:ln.depth]

		if ln.depth == 0 {
			s.Append(ln.item)
		} else {
			if ln.group {
				return nil, syntaxErrorf(num, "group item %q below root level", ln.item)
			}
			s.AppendChildren(parents[ln.depth-1], ln.item)
		}
		if ln.expanded {
			s.Expand(ln.item)
		}
		if ln.group {
			s.MarkGroups(ln.item)
		}
		parents = append(parents, ln.item)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "outlinetext: read")
	}
	if opts.RequireHeader && !seenHeader {
		return nil, syntaxErrorf(num, "missing header %q", Header)
	}
	return s, nil
}

// lexLine splits raw into depth, marker and item text. Text after a marker is
// taken verbatim; unmarked items are trimmed.
func lexLine(num int, raw string) (line, error) {
	ln := line{num: num}
	rest := raw
	for {
		if strings.HasPrefix(rest, Indent) {
			rest = rest[len(Indent):]
		} else if rest != "" && rest[0] == Tab {
			rest = rest[1:]
		} else {
			break
		}
		ln.depth++
	}
	if strings.HasPrefix(rest, " ") {
		return ln, syntaxErrorf(num, "indentation is not a multiple of %d spaces", len(Indent))
	}

	switch {
	case strings.HasPrefix(rest, MarkerExpandedGroup):
		ln.group, ln.expanded = true, true
		rest = rest[len(MarkerExpandedGroup):]
	case strings.HasPrefix(rest, MarkerGroup):
		ln.group = true
		rest = rest[len(MarkerGroup):]
	case strings.HasPrefix(rest, MarkerExpanded):
		ln.expanded = true
		rest = rest[len(MarkerExpanded):]
	case strings.HasPrefix(rest, MarkerCollapsed):
		rest = rest[len(MarkerCollapsed):]
	default:
		rest = strings.TrimSpace(rest)
	}
	if rest == "" {
		return ln, syntaxErrorf(num, "empty item")
	}
	ln.item = rest
	return ln, nil
}

func syntaxErrorf(num int, format string, args ...any) error {
	return errors.Mark(errors.Newf("outlinetext: line %d: "+format, append([]any{num}, args...)...), ErrSyntax)
}
