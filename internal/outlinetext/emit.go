package outlinetext

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

// ErrUnrepresentable is returned for items the text format cannot hold:
// empty items and items containing line breaks.
var ErrUnrepresentable = errors.New("outlinetext: item cannot be written as text")

// EmitOptions controls Emit.
type EmitOptions struct {
	// OutputEncoding selects the output encoding. Empty means UTF-8.
	OutputEncoding string

	// WithBOM prefixes the output with the encoding's byte order mark.
	WithBOM bool

	// OmitHeader skips the Header line.
	OmitHeader bool
}

// Emit writes snap as outline text. Every item carries a marker so item text
// is preserved verbatim.
func Emit(snap *outline.Snapshot[string], opts EmitOptions) ([]byte, error) {
	var buf bytes.Buffer
	if !opts.OmitHeader {
		buf.WriteString(Header + LF)
	}

	var err error
	snap.Walk(func(item string, level int) bool {
		if item == "" || strings.ContainsAny(item, "\r\n") {
			err = errors.Wrapf(ErrUnrepresentable, "%q", item)
			return false
		}
		for range level {
			buf.WriteString(Indent)
		}
		buf.WriteString(marker(snap, item))
		buf.WriteString(item)
		buf.WriteString(LF)
		return true
	})
	if err != nil {
		return nil, err
	}
	return encodeOutput(buf.Bytes(), opts.OutputEncoding, opts.WithBOM)
}

func marker(snap *outline.Snapshot[string], item string) string {
	switch {
	case snap.IsGroup(item) && snap.IsExpanded(item):
		return MarkerExpandedGroup
	case snap.IsGroup(item):
		return MarkerGroup
	case snap.IsExpanded(item):
		return MarkerExpanded
	default:
		return MarkerCollapsed
	}
}
