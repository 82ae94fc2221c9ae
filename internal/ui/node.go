package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label or button. Class and ID select CSS rules.
// When Manual is set the owner positions the node through Bounds and the stylesheet only
// supplies colours, padding and font size.
type Node struct {
	Type    string // "panel", "label", "button"
	Class   string // "title" for .title
	ID      string // "close" for #close
	Bounds  rl.Rectangle
	Text    string // may contain '\n'
	Hidden  bool
	Manual  bool
	OnClick func()
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Contains reports whether the point lies inside the node's bounds.
func (n *Node) Contains(p rl.Vector2) bool {
	return !n.Hidden && rl.CheckCollisionPointRec(p, n.Bounds)
}
