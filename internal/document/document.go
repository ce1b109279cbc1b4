package document

import (
	"encoding/json"
	"fmt"
	"os"
)

// Node is one position in a parsed JSON document, held as an untyped
// tree. Accessors never fail on absent or mistyped fields; they return
// a zero Node or the caller-supplied default instead, so callers can
// descend optimistic paths like minutes.paragraphs without checking
// every level.
type Node struct {
	value any
}

// Parse decodes raw JSON into a document tree.
func Parse(data []byte) (Node, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return Node{}, fmt.Errorf("parse document: %w", err)
	}
	return Node{value: root}, nil
}

// Load reads and parses the JSON document at path.
func Load(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, fmt.Errorf("read document: %w", err)
	}
	return Parse(data)
}

// Exists reports whether the node holds a value.
func (n Node) Exists() bool {
	return n.value != nil
}

// Get descends into a mapping by key. Returns a zero Node when the
// node is not a mapping or the key is absent.
func (n Node) Get(key string) Node {
	m, ok := n.value.(map[string]any)
	if !ok {
		return Node{}
	}
	return Node{value: m[key]}
}

// Items returns the elements of a sequence node in order, or nil when
// the node is not a sequence.
func (n Node) Items() []Node {
	s, ok := n.value.([]any)
	if !ok {
		return nil
	}
	items := make([]Node, len(s))
	for i, v := range s {
		items[i] = Node{value: v}
	}
	return items
}

// StringOr returns the node's string value, or def when the node is
// absent or not a string.
func (n Node) StringOr(def string) string {
	s, ok := n.value.(string)
	if !ok {
		return def
	}
	return s
}

// FloatOr returns the node's numeric value, or def when the node is
// absent or not a number. JSON integers and floats both decode to
// float64.
func (n Node) FloatOr(def float64) float64 {
	f, ok := n.value.(float64)
	if !ok {
		return def
	}
	return f
}
