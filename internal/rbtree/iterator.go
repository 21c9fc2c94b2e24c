package rbtree

import (
	"iter"
)

// InOrder yields every (key, color) pair in ascending key order. The tree
// must not be modified while iterating.
func (t *Tree) InOrder() iter.Seq2[int, Color] {
	return func(yield func(int, Color) bool) {
		for n := range t.nodes() {
			if !yield(n.key, n.color) {
				return
			}
		}
	}
}

// Keys yields the keys in ascending order.
func (t *Tree) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := range t.nodes() {
			if !yield(n.key) {
				return
			}
		}
	}
}

func (t *Tree) nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{}
		current := t.root
		for current != nil || len(stack) > 0 {

			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current) {
				return
			}

			current = current.right
		}
	}
}
