package dictionary

import (
	"bytes"
	"encoding/json"
)

// NodeKind identifies the shape of a defining-text content node.
type NodeKind int

const (
	// NodeOther covers numbers, booleans, nulls and tagged records
	// without a text field. These yield no fragments.
	NodeOther NodeKind = iota
	NodeText
	NodeSequence
	NodeTagged
)

// ContentNode is a single node of the dictionary API's defining-text
// content. The raw JSON mixes plain strings, nested arrays and tagged
// objects carrying prose under the "t" key; each node is decoded into
// exactly one of the closed set of kinds so the traversal below never
// has to re-inspect raw JSON.
type ContentNode struct {
	Kind  NodeKind
	Text  string        // set for NodeText and NodeTagged
	Items []ContentNode // set for NodeSequence
}

// taggedRecord is the object form of a content node. Only the "t"
// field matters; everything else is formatting markup.
type taggedRecord struct {
	T *string `json:"t"`
}

// UnmarshalJSON decodes a content node by its JSON shape. Unknown
// shapes become NodeOther rather than an error, matching the API
// contract that malformed leaves are silently skipped.
func (n *ContentNode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		n.Kind = NodeOther
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			n.Kind = NodeOther
			return nil
		}
		n.Kind = NodeText
		n.Text = s
	case '[':
		var items []ContentNode
		if err := json.Unmarshal(trimmed, &items); err != nil {
			n.Kind = NodeOther
			return nil
		}
		n.Kind = NodeSequence
		n.Items = items
	case '{':
		var rec taggedRecord
		if err := json.Unmarshal(trimmed, &rec); err != nil || rec.T == nil {
			n.Kind = NodeOther
			return nil
		}
		n.Kind = NodeTagged
		n.Text = *rec.T
	default:
		n.Kind = NodeOther
	}

	return nil
}

// Fragments flattens the node into its plain-text fragments in
// document order. The traversal is pure and terminates because decoded
// nodes form a finite tree.
func (n ContentNode) Fragments() []string {
	return n.appendFragments(nil)
}

func (n ContentNode) appendFragments(dst []string) []string {
	switch n.Kind {
	case NodeText, NodeTagged:
		return append(dst, n.Text)
	case NodeSequence:
		for _, item := range n.Items {
			dst = item.appendFragments(dst)
		}
	}
	return dst
}
