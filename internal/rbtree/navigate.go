package rbtree

import "fmt"

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree) Min() *Node {
	if t.root == nil {
		return nil
	}
	return t.minimum(t.root)
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree) Max() *Node {
	if t.root == nil {
		return nil
	}
	return t.maximum(t.root)
}

// Maximum returns the rightmost node of the subtree rooted at n.
func (t *Tree) Maximum(n *Node) (*Node, error) {
	if !t.owns(n) {
		return nil, fmt.Errorf("maximum: %w", ErrInvalidHandle)
	}
	return t.maximum(n), nil
}

func (t *Tree) maximum(x *Node) *Node {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Successor returns the next node in key order, or nil after the last one.
func (t *Tree) Successor(n *Node) (*Node, error) {
	if !t.owns(n) {
		return nil, fmt.Errorf("successor: %w", ErrInvalidHandle)
	}
	return t.next(n), nil
}

// Predecessor returns the previous node in key order, or nil before the
// first one.
func (t *Tree) Predecessor(n *Node) (*Node, error) {
	if !t.owns(n) {
		return nil, fmt.Errorf("predecessor: %w", ErrInvalidHandle)
	}
	return t.prev(n), nil
}

func (t *Tree) next(n *Node) *Node {
	if n.right != nil {
		return t.minimum(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *Tree) prev(n *Node) *Node {
	if n.left != nil {
		return t.maximum(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
