package rbtree

import "errors"

// Errors returned by the tree at its boundary. Internal balancing never
// fails on a valid tree.
var (
	ErrInvalidHandle = errors.New("node does not belong to this tree")
	ErrDuplicateKey  = errors.New("key already present")
	ErrKeyNotFound   = errors.New("key not found")
)
