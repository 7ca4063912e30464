package set

import (
	"iter"

	"github.com/amp-labs/natural-sort/sortable"
)

// color represents the color of a node in the red-black tree.
type color bool

const (
	// black is true so that the zero node color is red, matching the
	// convention that freshly inserted nodes start red, while nil leaves
	// count as black.
	black, red color = true, false
)

// node is a single node in the red-black tree.
type node[K sortable.Sortable[K]] struct {
	key    K
	color  color
	left   *node[K]
	right  *node[K]
	parent *node[K]
}

// Tree is an ordered set backed by a red-black tree. Elements are kept in
// the order defined by their Sortable implementation, so a Tree keyed on
// natural.String iterates file names in natural order.
//
// Red-black trees are self-balancing binary search trees maintaining these
// properties:
//  1. Every node is either red or black.
//  2. The root is black.
//  3. All leaves (nil) are black.
//  4. If a node is red, then both its children are black.
//  5. Every path from a node to its descendant nil nodes contains the same
//     number of black nodes.
//
// The properties keep the tree approximately balanced, guaranteeing
// O(log n) insertion, deletion, and lookup. The rebalancing follows the
// algorithms from "Introduction to Algorithms" (CLRS).
//
// A Tree is not safe for concurrent use.
type Tree[K sortable.Sortable[K]] struct {
	root *node[K]
	size int
}

// NewTree creates an empty ordered set holding the given elements.
func NewTree[K sortable.Sortable[K]](elements ...K) *Tree[K] {
	t := &Tree[K]{}

	t.AddAll(elements...)

	return t
}

// Add inserts an element. Adding an element that is already present leaves
// the set unchanged.
func (t *Tree[K]) Add(element K) {
	if t.root == nil {
		t.root = &node[K]{key: element, color: black}
		t.size = 1

		return
	}

	parent := t.root

	for {
		switch {
		case element.Equals(parent.key):
			return
		case element.LessThan(parent.key):
			if parent.left == nil {
				inserted := &node[K]{key: element, parent: parent}
				parent.left = inserted
				t.size++
				t.fixupInsert(inserted)

				return
			}

			parent = parent.left
		default:
			if parent.right == nil {
				inserted := &node[K]{key: element, parent: parent}
				parent.right = inserted
				t.size++
				t.fixupInsert(inserted)

				return
			}

			parent = parent.right
		}
	}
}

// AddAll inserts multiple elements.
func (t *Tree[K]) AddAll(elements ...K) {
	for _, element := range elements {
		t.Add(element)
	}
}

// Remove deletes an element. Removing an absent element is a no-op.
//
// The deletion follows CLRS chapter 13: locate the node (z), identify the
// node that is spliced out or moved (y), track the node that takes y's place
// (x), then rebalance if a black node was removed. x can be a nil leaf, so
// its position is tracked through xParent rather than through x.parent.
//
//nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *Tree[K]) Remove(element K) {
	z := t.find(element)
	if z == nil {
		return
	}

	y := z
	yWasBlack := y.color == black

	var x, xParent *node[K]

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yWasBlack = y.color == black
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

	t.size--

	if yWasBlack {
		t.fixupDelete(x, xParent)
	}
}

// Contains reports whether the element is in the set.
func (t *Tree[K]) Contains(element K) bool {
	return t.find(element) != nil
}

// Size returns the number of elements in the set.
func (t *Tree[K]) Size() int {
	return t.size
}

// Clear removes all elements from the set.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Min returns the smallest element, or false when the set is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K

		return zero, false
	}

	return minimum(t.root).key, true
}

// Max returns the largest element, or false when the set is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K

		return zero, false
	}

	return maximum(t.root).key, true
}

// Entries returns all elements as a slice in ascending order.
func (t *Tree[K]) Entries() []K {
	if t.size == 0 {
		return nil
	}

	entries := make([]K, 0, t.size)

	for k := range t.Seq() {
		entries = append(entries, k)
	}

	return entries
}

// Seq returns an iterator yielding elements in ascending order, enabling
// range-over-func syntax: for element := range tree.Seq() { ... }.
func (t *Tree[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		inorder(t.root, yield)
	}
}

// Union returns a new set containing all elements from both sets.
func (t *Tree[K]) Union(other *Tree[K]) *Tree[K] {
	out := NewTree[K]()

	for k := range t.Seq() {
		out.Add(k)
	}

	for k := range other.Seq() {
		out.Add(k)
	}

	return out
}

// Intersection returns a new set containing only elements present in both
// sets.
func (t *Tree[K]) Intersection(other *Tree[K]) *Tree[K] {
	out := NewTree[K]()

	for k := range t.Seq() {
		if other.Contains(k) {
			out.Add(k)
		}
	}

	return out
}

// Clone returns a copy of the set.
func (t *Tree[K]) Clone() *Tree[K] {
	out := NewTree[K]()

	for k := range t.Seq() {
		out.Add(k)
	}

	return out
}

// inorder yields the subtree under n in ascending key order, stopping early
// when yield returns false.
func inorder[K sortable.Sortable[K]](n *node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}

	return inorder(n.left, yield) && yield(n.key) && inorder(n.right, yield)
}

// find descends from the root to the node holding the key, or nil.
func (t *Tree[K]) find(key K) *node[K] {
	current := t.root

	for current != nil {
		switch {
		case key.Equals(current.key):
			return current
		case key.LessThan(current.key):
			current = current.left
		default:
			current = current.right
		}
	}

	return nil
}

// rotateLeft rotates the subtree around x so that x's right child takes its
// place:
//
//	  x                y
//	 / \              / \
//	a   y     =>     x   c
//	   / \          / \
//	  b   c        a   b
//
//nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *Tree[K]) rotateLeft(x *node[K]) {
	if x == nil || x.right == nil {
		return
	}

	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft.
//
//nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *Tree[K]) rotateRight(y *node[K]) {
	if y == nil || y.left == nil {
		return
	}

	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}

	x.right = y
	y.parent = x
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
// Parent pointers are updated; v's children are left alone.
func (t *Tree[K]) transplant(u *node[K], v *node[K]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// fixupInsert restores the red-black properties after inserting z, which
// starts red. A red parent violates property 4; depending on the uncle's
// color the violation is recolored away or rotated out. The loop ends when
// the parent is black or z reaches the root.
//
//nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *Tree[K]) fixupInsert(z *node[K]) {
	for z.parent != nil && z.parent.color == red {
		grandparent := z.parent.parent

		if z.parent == grandparent.left {
			uncle := grandparent.right

			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}

				z.parent.color = black
				grandparent.color = red
				t.rotateRight(grandparent)
			}
		} else {
			uncle := grandparent.left

			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}

				z.parent.color = black
				grandparent.color = red
				t.rotateLeft(grandparent)
			}
		}
	}

	t.root.color = black
}

// fixupDelete restores the red-black properties after removing a black
// node. The node x that took the removed node's place carries an extra
// black; the loop moves the extra black up the tree until it lands on a red
// node or the root, resolving one of the four CLRS sibling cases at each
// step, mirrored for both sides. x may be a nil leaf, so its position comes
// from parent. The sibling examined at each step is never nil: the subtree
// under x is one black short, so the sibling subtree has black height at
// least one.
//
//nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *Tree[K]) fixupDelete(x, parent *node[K]) {
	for x != t.root && !isRed(x) {
		if x == parent.left {
			w := parent.right

			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, parent = parent, parent.parent
			} else {
				if !isRed(w.right) {
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = parent.right
				}

				w.color = parent.color
				parent.color = black
				w.right.color = black
				t.rotateLeft(parent)
				x = t.root
			}
		} else {
			w := parent.left

			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, parent = parent, parent.parent
			} else {
				if !isRed(w.left) {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = parent.left
				}

				w.color = parent.color
				parent.color = black
				w.left.color = black
				t.rotateRight(parent)
				x = t.root
			}
		}
	}

	if x != nil {
		x.color = black
	}
}

// isRed reports whether a node is red. Nil leaves count as black.
func isRed[K sortable.Sortable[K]](n *node[K]) bool {
	if n == nil {
		return false
	}

	return n.color == red
}

// minimum returns the leftmost node of the subtree rooted at n.
func minimum[K sortable.Sortable[K]](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// maximum returns the rightmost node of the subtree rooted at n.
func maximum[K sortable.Sortable[K]](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}

	return n
}
