// Package rbtree implements a Red-Black Tree ordered map over int keys
// with insertion, deletion and search operations.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) time complexity for basic operations. Absent children and the
// parent of the root are plain nil pointers; a nil node reads as black.
//
// A Tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must serialize access themselves.
package rbtree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Color is the one-bit balance tag carried by every node.
type Color bool

const (
	Red   Color = true
	Black Color = false
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Node is a handle to a key stored in a Tree. Handles stay valid until
// the node is deleted.
type Node struct {
	key                 int
	color               Color
	left, right, parent *Node
	owner               *Tree
}

// Key returns the key stored in the node.
func (n *Node) Key() int { return n.key }

// Color returns the node's color.
func (n *Node) Color() Color { return n.color }

// IsRed reports whether the node is red.
func (n *Node) IsRed() bool { return n.color == Red }

func (n *Node) String() string {
	abbrev := "Blk"
	if n.color == Red {
		abbrev = "Red"
	}
	return fmt.Sprintf("%s-Node %d, left %s, right %s, parent %s",
		abbrev, n.key, keyString(n.left), keyString(n.right), keyString(n.parent))
}

func keyString(n *Node) string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprint(n.key)
}

// colorOf treats absent leaves as black.
func colorOf(n *Node) Color {
	if n == nil {
		return Black
	}
	return n.color
}

// Tree represents a Red-Black Tree instance.
// Use New() to create a new tree instance.
type Tree struct {
	root *Node
	size int

	unique bool
	debug  bool
	log    logrus.FieldLogger
}

// New creates and returns a new empty Red-Black Tree.
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return t.size }

// Find returns the node holding key, or nil if there is none. With
// duplicate keys the one closest to the root is returned.
func (t *Tree) Find(key int) *Node {
	current := t.root
	for current != nil {
		switch {
		case key < current.key:
			current = current.left
		case key > current.key:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// Insert adds a new key to the tree while maintaining
// Red-Black Tree properties and returns the new node.
//
// Equal keys are routed right, so duplicates are kept in insertion
// order. With WithUniqueKeys a duplicate yields ErrDuplicateKey instead.
func (t *Tree) Insert(key int) (*Node, error) {
	var parent *Node
	current := t.root

	for current != nil {
		parent = current
		if key < current.key {
			current = current.left
		} else {
			if t.unique && key == current.key {
				return nil, fmt.Errorf("insert %d: %w", key, ErrDuplicateKey)
			}
			current = current.right
		}
	}

	newNode := &Node{
		key:    key,
		color:  Red,
		parent: parent,
		owner:  t,
	}

	if parent == nil {
		t.root = newNode
	} else if key < parent.key {
		parent.left = newNode
	} else {
		parent.right = newNode
	}
	t.size++

	t.insertFixup(newNode)
	t.check("insert")

	return newNode, nil
}

func (t *Tree) insertFixup(x *Node) {
	// The root is black, so a red parent always has a grandparent.
	for colorOf(x.parent) == Red {
		p := x.parent
		g := p.parent
		if p == g.left {
			y := g.right
			if colorOf(y) == Red {
				t.trace("insert", "uncle red", x)
				p.color = Black
				y.color = Black
				g.color = Red
				x = g
			} else {
				if x == p.right {
					t.trace("insert", "inner grandchild", x)
					x = p
					t.leftRotate(x)
				}
				t.trace("insert", "outer grandchild", x)
				x.parent.color = Black
				x.parent.parent.color = Red
				t.rightRotate(x.parent.parent)
			}
		} else {
			y := g.left
			if colorOf(y) == Red {
				t.trace("insert", "uncle red", x)
				p.color = Black
				y.color = Black
				g.color = Red
				x = g
			} else {
				if x == p.left {
					t.trace("insert", "inner grandchild", x)
					x = p
					t.rightRotate(x)
				}
				t.trace("insert", "outer grandchild", x)
				x.parent.color = Black
				x.parent.parent.color = Red
				t.leftRotate(x.parent.parent)
			}
		}
	}
	t.root.color = Black
}

func (t *Tree) leftRotate(x *Node) {
	// x's right child y takes x's place; x becomes y's left child and
	// y's old left subtree moves under x. A nil parent means x was the
	// root, so y becomes the root.
	//
	//	   x                y
	//	  / \              / \
	//	 a   y     =>     x   c
	//	    / \          / \
	//	   b   c        a   b
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree) rightRotate(y *Node) {
	// Mirror of leftRotate: y's left child x is lifted above it.
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// Delete removes node z from the tree while maintaining
// Red-Black Tree properties. z must be a live node of this tree;
// anything else yields ErrInvalidHandle and leaves the tree untouched.
func (t *Tree) Delete(z *Node) error {
	if !t.owns(z) {
		return fmt.Errorf("delete: %w", ErrInvalidHandle)
	}

	var x, xParent *Node
	y := z
	yOriginalColor := y.color

	if z.left == nil {
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	} else if z.right == nil {
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	} else {
		y = t.minimum(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == Black {
		t.deleteFixup(x, xParent)
	}

	z.left, z.right, z.parent, z.owner = nil, nil, nil, nil
	t.size--
	t.check("delete")

	return nil
}

// DeleteKey removes one node holding key. If key doesn't exist,
// ErrKeyNotFound is returned.
func (t *Tree) DeleteKey(key int) error {
	z := t.Find(key)
	if z == nil {
		return fmt.Errorf("delete %d: %w", key, ErrKeyNotFound)
	}
	return t.Delete(z)
}

// transplant puts v, which may be nil, where u hangs from u's parent.
func (t *Tree) transplant(u, v *Node) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// Minimum returns the leftmost node of the subtree rooted at n.
func (t *Tree) Minimum(n *Node) (*Node, error) {
	if !t.owns(n) {
		return nil, fmt.Errorf("minimum: %w", ErrInvalidHandle)
	}
	return t.minimum(n), nil
}

func (t *Tree) minimum(x *Node) *Node {
	for x.left != nil {
		x = x.left
	}
	return x
}

// deleteFixup resolves the extra black carried by x. x may be nil, so its
// parent is passed alongside.
func (t *Tree) deleteFixup(x, parent *Node) {
	for x != t.root && colorOf(x) == Black {
		if x == parent.left {
			w := parent.right
			if colorOf(w) == Red {
				t.trace("delete", "sibling red", parent)
				w.color = Black
				parent.color = Red
				t.leftRotate(parent)
				w = parent.right
			}
			if colorOf(w.left) == Black && colorOf(w.right) == Black {
				t.trace("delete", "sibling children black", parent)
				w.color = Red
				x = parent
				parent = x.parent
			} else {
				if colorOf(w.right) == Black {
					t.trace("delete", "sibling near child red", parent)
					w.left.color = Black
					w.color = Red
					t.rightRotate(w)
					w = parent.right
				}
				t.trace("delete", "sibling far child red", parent)
				w.color = parent.color
				parent.color = Black
				w.right.color = Black
				t.leftRotate(parent)
				x = t.root
				parent = nil
			}
		} else {
			w := parent.left
			if colorOf(w) == Red {
				t.trace("delete", "sibling red", parent)
				w.color = Black
				parent.color = Red
				t.rightRotate(parent)
				w = parent.left
			}
			if colorOf(w.right) == Black && colorOf(w.left) == Black {
				t.trace("delete", "sibling children black", parent)
				w.color = Red
				x = parent
				parent = x.parent
			} else {
				if colorOf(w.left) == Black {
					t.trace("delete", "sibling near child red", parent)
					w.right.color = Black
					w.color = Red
					t.leftRotate(w)
					w = parent.left
				}
				t.trace("delete", "sibling far child red", parent)
				w.color = parent.color
				parent.color = Black
				w.left.color = Black
				t.rightRotate(parent)
				x = t.root
				parent = nil
			}
		}
	}
	if x != nil {
		x.color = Black
	}
}

func (t *Tree) owns(n *Node) bool {
	return n != nil && n.owner == t
}

func (t *Tree) trace(op, fixCase string, at *Node) {
	if t.log == nil {
		return
	}
	t.log.WithFields(logrus.Fields{
		"op":   op,
		"case": fixCase,
		"key":  at.key,
	}).Debug("fixup")
}

// check runs the invariant walk after a mutation when debug checks are on.
func (t *Tree) check(op string) {
	if !t.debug {
		return
	}
	if err := t.Verify(); err != nil {
		panic(fmt.Sprintf("rbtree: invariant broken after %s: %v", op, err))
	}
}
