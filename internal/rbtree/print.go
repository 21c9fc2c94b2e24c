package rbtree

import (
	"fmt"
	"io"
)

// Fprint writes one line per node to w in key order, for example
//
//	Red-Node 5, left 2, right 7, parent 18
func (t *Tree) Fprint(w io.Writer) error {
	for n := range t.nodes() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return fmt.Errorf("print node %d: %w", n.key, err)
		}
	}
	return nil
}
