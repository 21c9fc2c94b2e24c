package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape records every link of the tree so two shapes can be compared.
type shape map[int][3]int

const absent = -1

func keyOrAbsent(n *Node) int {
	if n == nil {
		return absent
	}
	return n.key
}

func snapshot(t *Tree) shape {
	s := shape{}
	for n := range t.nodes() {
		s[n.key] = [3]int{keyOrAbsent(n.left), keyOrAbsent(n.right), keyOrAbsent(n.parent)}
	}
	return s
}

func buildTree(t *testing.T, keys ...int) *Tree {
	t.Helper()
	tree := New()
	for _, k := range keys {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	return tree
}

func TestRotationRoundTrip(t *testing.T) {
	keys := []int{24, 18, 26, 5, 20, 27, 2, 7, 23, 21}

	t.Run("LeftThenRight", func(t *testing.T) {
		tree := buildTree(t, keys...)
		for _, k := range keys {
			x := tree.Find(k)
			if x.right == nil {
				continue
			}
			before := snapshot(tree)
			wantKeys := collect(tree)

			tree.leftRotate(x)
			y := x.parent
			require.NotNil(t, y)
			assert.Same(t, x, y.left)
			assert.Equal(t, wantKeys, collect(tree), "left rotate at %d broke order", k)

			tree.rightRotate(y)
			assert.Equal(t, before, snapshot(tree), "round trip at %d", k)
		}
		require.NoError(t, tree.Verify())
	})

	t.Run("RightThenLeft", func(t *testing.T) {
		tree := buildTree(t, keys...)
		for _, k := range keys {
			y := tree.Find(k)
			if y.left == nil {
				continue
			}
			before := snapshot(tree)
			wantKeys := collect(tree)

			tree.rightRotate(y)
			x := y.parent
			require.NotNil(t, x)
			assert.Same(t, y, x.right)
			assert.Equal(t, wantKeys, collect(tree), "right rotate at %d broke order", k)

			tree.leftRotate(x)
			assert.Equal(t, before, snapshot(tree), "round trip at %d", k)
		}
		require.NoError(t, tree.Verify())
	})
}

func TestLeftRotateAtRoot(t *testing.T) {
	tree := buildTree(t, 10, 5, 20, 15, 25)
	root := tree.root
	pivot := root.right

	tree.leftRotate(root)

	assert.Same(t, pivot, tree.root)
	assert.Nil(t, pivot.parent)
	assert.Same(t, root, pivot.left)
	assert.Same(t, pivot, root.parent)
	assert.Equal(t, 15, root.right.key)
	assert.Same(t, root, root.right.parent)
	assert.Equal(t, []int{5, 10, 15, 20, 25}, collect(tree))
}

func TestRightRotateAtRoot(t *testing.T) {
	tree := buildTree(t, 20, 10, 25, 5, 15)
	root := tree.root
	pivot := root.left

	tree.rightRotate(root)

	assert.Same(t, pivot, tree.root)
	assert.Nil(t, pivot.parent)
	assert.Same(t, root, pivot.right)
	assert.Same(t, pivot, root.parent)
	assert.Equal(t, 15, root.left.key)
	assert.Same(t, root, root.left.parent)
	assert.Equal(t, []int{5, 10, 15, 20, 25}, collect(tree))
}

func TestTransplant(t *testing.T) {
	t.Run("Root", func(t *testing.T) {
		tree := buildTree(t, 10, 5)
		child := tree.root.left
		tree.transplant(tree.root, child)
		assert.Same(t, child, tree.root)
		assert.Nil(t, child.parent)
	})

	t.Run("RightChildWithNil", func(t *testing.T) {
		tree := buildTree(t, 10, 5, 20)
		tree.transplant(tree.root.right, nil)
		assert.Nil(t, tree.root.right)
		assert.Equal(t, 5, tree.root.left.key)
	})

	t.Run("LeftChild", func(t *testing.T) {
		tree := buildTree(t, 10, 5, 20, 3)
		five := tree.Find(5)
		three := tree.Find(3)
		tree.transplant(five, three)
		assert.Same(t, three, tree.root.left)
		assert.Same(t, tree.root, three.parent)
	})
}

func TestDeleteSuccessorIsDirectChild(t *testing.T) {
	// 10's successor 20 is its right child and has no children of its own,
	// so the fixup starts from an absent leaf whose parent is 20.
	tree := buildTree(t, 10, 5, 20, 1)
	require.NoError(t, tree.Delete(tree.Find(10)))

	require.NoError(t, tree.Verify())
	assert.Equal(t, 5, tree.root.key)
	assert.Equal(t, []int{1, 5, 20}, collect(tree))
}

func TestBlackHeightMatchesWalk(t *testing.T) {
	tree := buildTree(t, 24, 18, 26, 5, 20, 27, 2, 7, 23, 21)
	walked, err := tree.checkSubtree(tree.root)
	require.NoError(t, err)
	assert.Equal(t, walked-1, tree.BlackHeight())
}

func TestVerifyReportsViolations(t *testing.T) {
	tree := buildTree(t, 24, 18, 26, 5, 20, 27, 2, 7, 23, 21)

	tree.root.color = Red
	assert.ErrorContains(t, tree.Verify(), "root is red")
	tree.root.color = Black

	tree.Find(5).color = Red
	assert.ErrorContains(t, tree.Verify(), "red node 18 has red child 5")
	tree.Find(5).color = Black

	tree.Find(27).color = Black
	assert.ErrorContains(t, tree.Verify(), "node 26 black-height differs")
	tree.Find(27).color = Red

	tree.Find(2).parent = tree.root
	assert.ErrorContains(t, tree.Verify(), "stale parent link")
	tree.Find(2).parent = tree.Find(5)

	require.NoError(t, tree.Verify())
}

func TestDebugChecksPanic(t *testing.T) {
	tree := New(WithDebugChecks())
	_, err := tree.Insert(1)
	require.NoError(t, err)

	tree.size += 3
	assert.Panics(t, func() {
		_, _ = tree.Insert(2)
	})
}

func collect(t *Tree) []int {
	keys := []int{}
	for k := range t.Keys() {
		keys = append(keys, k)
	}
	return keys
}
