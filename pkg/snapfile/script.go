package snapfile

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

// ErrInvalidScript is returned for script documents that do not describe a
// valid instruction sequence.
var ErrInvalidScript = errors.New("snapfile: invalid script")

type scriptDocument struct {
	Instructions []instruction `json:"instructions"`
	Expand       []string      `json:"expand,omitempty"`
	Collapse     []string      `json:"collapse,omitempty"`
}

// instruction is the JSON form of outline.Instruction. A nil parent is the
// root level.
type instruction struct {
	Op       string  `json:"op"`
	Item     string  `json:"item"`
	Index    int     `json:"index"`
	Parent   *string `json:"parent"`
	ToIndex  *int    `json:"to_index,omitempty"`
	ToParent *string `json:"to_parent,omitempty"`
}

// MarshalScript encodes an edit script as JSON.
func MarshalScript(script []outline.Instruction[string]) ([]byte, error) {
	return MarshalUpdate(outline.Update[string]{Script: script})
}

// UnmarshalScript decodes a script written by MarshalScript.
func UnmarshalScript(data []byte) ([]outline.Instruction[string], error) {
	u, err := UnmarshalUpdate(data)
	if err != nil {
		return nil, err
	}
	return u.Script, nil
}

// MarshalUpdate encodes a script plus its expansion delta as JSON.
func MarshalUpdate(u outline.Update[string]) ([]byte, error) {
	doc := scriptDocument{
		Instructions: make([]instruction, 0, len(u.Script)),
		Expand:       u.Expand,
		Collapse:     u.Collapse,
	}
	for _, in := range u.Script {
		out := instruction{
			Op:     in.Kind.String(),
			Item:   in.Item,
			Index:  in.Index,
			Parent: refItem(in.Parent),
		}
		if in.Kind == outline.KindMove {
			to := in.ToIndex
			out.ToIndex = &to
			out.ToParent = refItem(in.ToParent)
		}
		doc.Instructions = append(doc.Instructions, out)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "snapfile: encode script")
	}
	return append(data, '\n'), nil
}

// UnmarshalUpdate decodes a document written by MarshalUpdate.
func UnmarshalUpdate(data []byte) (outline.Update[string], error) {
	var doc scriptDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return outline.Update[string]{}, errors.Wrap(err, "snapfile: decode script")
	}

	u := outline.Update[string]{Expand: doc.Expand, Collapse: doc.Collapse}
	for i, in := range doc.Instructions {
		out := outline.Instruction[string]{
			Item:   in.Item,
			Index:  in.Index,
			Parent: itemRef(in.Parent),
		}
		switch in.Op {
		case outline.KindInsert.String():
			out.Kind = outline.KindInsert
		case outline.KindRemove.String():
			out.Kind = outline.KindRemove
		case outline.KindMove.String():
			if in.ToIndex == nil {
				return outline.Update[string]{}, errors.Wrapf(ErrInvalidScript, "instruction %d: move without to_index", i)
			}
			out.Kind = outline.KindMove
			out.ToIndex = *in.ToIndex
			out.ToParent = itemRef(in.ToParent)
		default:
			return outline.Update[string]{}, errors.Wrapf(ErrInvalidScript, "instruction %d: unknown op %q", i, in.Op)
		}
		if out.Index < 0 || out.ToIndex < 0 {
			return outline.Update[string]{}, errors.Wrapf(ErrInvalidScript, "instruction %d: negative index", i)
		}
		u.Script = append(u.Script, out)
	}
	return u, nil
}

func refItem(ref outline.Ref[string]) *string {
	item, ok := ref.Item()
	if !ok {
		return nil
	}
	return &item
}

func itemRef(item *string) outline.Ref[string] {
	if item == nil {
		return outline.Root[string]()
	}
	return outline.Under(*item)
}
