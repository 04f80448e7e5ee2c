// Package tree provides convenience helpers over raw query reply
// payloads: a preorder walk of the decoded JSON and extraction of the
// focused node or workspace. The protocol client stays JSON-agnostic;
// everything here is layered on top of its raw bytes.
package tree

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Node is one decoded JSON object of a layout tree or workspace list.
type Node = map[string]interface{}

// Visit inspects one object node. Returning true stops the walk.
type Visit func(node Node) bool

// Preorder walks decoded JSON depth-first, visiting every object node,
// and reports whether a visit stopped the walk. Array elements are
// visited in order; key order within an object is unspecified.
func Preorder(value interface{}, visit Visit) bool {
	switch v := value.(type) {
	case Node:
		if visit(v) {
			return true
		}
		for _, child := range v {
			if Preorder(child, visit) {
				return true
			}
		}
	case []interface{}:
		for _, child := range v {
			if Preorder(child, visit) {
				return true
			}
		}
	}
	return false
}

// Focused decodes a get_tree reply and returns the focused node. The
// second return value is false when no node is focused.
func Focused(treePayload []byte) (Node, bool, error) {
	var root interface{}
	if err := json.Unmarshal(treePayload, &root); err != nil {
		return nil, false, fmt.Errorf("unmarshal tree: %w", err)
	}

	var found Node
	Preorder(root, func(node Node) bool {
		if focused, ok := node["focused"].(bool); ok && focused {
			found = node
			return true
		}
		return false
	})
	return found, found != nil, nil
}

// FocusedWorkspace decodes a get_workspaces reply and returns the
// focused workspace. The second return value is false when none is
// focused.
func FocusedWorkspace(workspacesPayload []byte) (Node, bool, error) {
	var workspaces []Node
	if err := json.Unmarshal(workspacesPayload, &workspaces); err != nil {
		return nil, false, fmt.Errorf("unmarshal workspaces: %w", err)
	}

	for _, ws := range workspaces {
		if focused, ok := ws["focused"].(bool); ok && focused {
			return ws, true, nil
		}
	}
	return nil, false, nil
}

// ConID returns the container ID of a node, when present. Tree node IDs
// arrive as JSON numbers.
func ConID(node Node) (uint64, bool) {
	id, ok := node["id"].(float64)
	if !ok || id < 0 {
		return 0, false
	}
	return uint64(id), true
}
