package rbtree

import "github.com/sirupsen/logrus"

// Option configures a Tree created by New.
type Option func(*Tree)

// WithUniqueKeys makes Insert reject keys that are already present
// with ErrDuplicateKey.
func WithUniqueKeys() Option {
	return func(t *Tree) {
		t.unique = true
	}
}

// WithDebugChecks verifies every invariant after each Insert and Delete
// and panics on the first violation. The walk is O(n), so it is meant for
// tests and debugging only.
func WithDebugChecks() Option {
	return func(t *Tree) {
		t.debug = true
	}
}

// WithLogger traces fixup cases at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tree) {
		t.log = log
	}
}
