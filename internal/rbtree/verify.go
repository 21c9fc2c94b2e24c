package rbtree

import (
	"errors"
	"fmt"
)

// Verify validates Red-Black Tree invariants over the whole tree:
// 1. Keys are in search-tree order (strictly, unless duplicates are allowed)
// 2. Root is always black
// 3. Red nodes must have black children
// 4. All paths from a node to its leaves have the same black node count
//
// It also checks that every parent pointer matches the child that holds
// it and that Len agrees with the number of reachable nodes. Returns nil
// if all properties are satisfied.
func (t *Tree) Verify() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("empty tree reports %d nodes", t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.New("root has a parent")
	}
	if t.root.color != Black {
		return errors.New("root is red")
	}

	count := 0
	var prev *Node
	for n := range t.nodes() {
		if prev != nil && (n.key < prev.key || t.unique && n.key == prev.key) {
			return fmt.Errorf("key %d follows %d in order", n.key, prev.key)
		}
		prev = n
		count++
	}
	if count != t.size {
		return fmt.Errorf("tree reports %d nodes, %d reachable", t.size, count)
	}

	_, err := t.checkSubtree(t.root)
	return err
}

// checkSubtree returns the black-height of n, counting the absent leaf.
func (t *Tree) checkSubtree(n *Node) (int, error) {
	if n == nil {
		return 1, nil
	}
	if n.owner != t {
		return 0, fmt.Errorf("node %d is owned by another tree", n.key)
	}
	for _, child := range []*Node{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("node %d has a stale parent link", child.key)
		}
		if n.color == Red && child.color == Red {
			return 0, fmt.Errorf("red node %d has red child %d", n.key, child.key)
		}
	}

	leftCount, err := t.checkSubtree(n.left)
	if err != nil {
		return 0, err
	}
	rightCount, err := t.checkSubtree(n.right)
	if err != nil {
		return 0, err
	}
	if leftCount != rightCount {
		return 0, fmt.Errorf("node %d black-height differs: left %d, right %d", n.key, leftCount, rightCount)
	}

	if n.color == Black {
		leftCount++
	}
	return leftCount, nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// BlackHeight returns the number of black nodes on any path from the root
// down to an absent leaf, counting the leaf but not the root.
func (t *Tree) BlackHeight() int {
	if t.root == nil {
		return 0
	}
	bh := 1
	for n := t.root.left; n != nil; n = n.left {
		if n.color == Black {
			bh++
		}
	}
	return bh
}
