package snapfile

import "github.com/joshuapare/outlinekit/pkg/outline"

// documentVersion is written to every structured snapshot file.
const documentVersion = 1

// document is the structured (YAML/TOML/JSON) file layout.
type document struct {
	Version           int    `json:"version" yaml:"version" toml:"version"`
	GroupsCollapsible bool   `json:"groups_collapsible,omitempty" yaml:"groups_collapsible,omitempty" toml:"groups_collapsible,omitempty"`
	Items             []node `json:"items" yaml:"items" toml:"items"`
}

type node struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Expanded bool   `json:"expanded,omitempty" yaml:"expanded,omitempty" toml:"expanded,omitempty"`
	Group    bool   `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Children []node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

func toDocument(snap *outline.Snapshot[string]) document {
	return document{
		Version:           documentVersion,
		GroupsCollapsible: snap.GroupsCollapsible(),
		Items:             append([]node{}, toNodes(snap.Branches())...),
	}
}

func toNodes(branches []outline.Branch[string]) []node {
	if len(branches) == 0 {
		return nil
	}
	out := make([]node, 0, len(branches))
	for _, b := range branches {
		out = append(out, node{
			Name:     b.Item,
			Expanded: b.Expanded,
			Group:    b.Group,
			Children: toNodes(b.Children),
		})
	}
	return out
}

func toBranches(nodes []node) []outline.Branch[string] {
	out := make([]outline.Branch[string], 0, len(nodes))
	for _, n := range nodes {
		out = append(out, outline.Branch[string]{
			Item:     n.Name,
			Expanded: n.Expanded,
			Group:    n.Group,
			Children: toBranches(n.Children),
		})
	}
	return out
}
