// tree.go — the ordered store backing both the node set and the edge set.
//
// A hand-rolled AVL tree with parent pointers. Two properties are
// load-bearing for the container's iterator contract:
//
//   - Items never move between slots. Rotations relink slots, and removal
//     splices the victim's slot out structurally, transplanting the in-order
//     successor's slot rather than copying its item. A *tnode is therefore a
//     stable identity for its item until that item is removed.
//   - Bound seeks take a comparison closure, so callers can descend on a
//     partial key (a prefix of the edge key) as well as on a full item.
//
// Complexity: insertNode, remove, lookup, lowerBound O(log n); next and prev
// amortized O(1) over a full walk.

package core

// tnode is one slot of a tree.
type tnode[T any] struct {
	item   T
	left   *tnode[T]
	right  *tnode[T]
	parent *tnode[T]
	height int
}

// tree is an ordered set of T; compare imposes the total order and equal
// items collapse (set semantics).
type tree[T any] struct {
	root    *tnode[T]
	size    int
	compare func(a, b T) int
}

func newTree[T any](compare func(a, b T) int) *tree[T] {
	return &tree[T]{compare: compare}
}

func height[T any](n *tnode[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// insertNode links n into the tree unless an item equal to n.item is already
// resident. It returns the resident slot (n itself on success) and whether n
// was linked. n's links are reset, so a slot detached by remove can be
// reinserted.
func (t *tree[T]) insertNode(n *tnode[T]) (*tnode[T], bool) {
	n.left, n.right, n.parent = nil, nil, nil
	n.height = 1
	if t.root == nil {
		t.root = n
		t.size++
		return n, true
	}
	cur := t.root
	for {
		c := t.compare(n.item, cur.item)
		if c == 0 {
			return cur, false
		}
		if c < 0 {
			if cur.left == nil {
				cur.left = n
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				break
			}
			cur = cur.right
		}
	}
	n.parent = cur
	t.size++
	t.retrace(cur)
	return n, true
}

// remove unlinks n, which must be a current slot of this tree. No other
// slot's item moves: when n has two children its in-order successor is
// transplanted structurally into n's place.
func (t *tree[T]) remove(n *tnode[T]) {
	var fixFrom *tnode[T]
	if n.left == nil || n.right == nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		t.replaceChild(n.parent, n, child)
		if child != nil {
			child.parent = n.parent
		}
		fixFrom = n.parent
	} else {
		s := n.right
		for s.left != nil {
			s = s.left
		}
		if s.parent == n {
			fixFrom = s
		} else {
			fixFrom = s.parent
			t.replaceChild(s.parent, s, s.right)
			if s.right != nil {
				s.right.parent = s.parent
			}
			s.right = n.right
			s.right.parent = s
		}
		s.left = n.left
		s.left.parent = s
		t.replaceChild(n.parent, n, s)
		s.parent = n.parent
		s.height = n.height
	}
	n.left, n.right, n.parent = nil, nil, nil
	n.height = 0
	t.size--
	t.retrace(fixFrom)
}

// replaceChild rewires p's link to child over to repl; a nil p means child
// was the root. repl may be nil.
func (t *tree[T]) replaceChild(p, child, repl *tnode[T]) {
	switch {
	case p == nil:
		t.root = repl
	case p.left == child:
		p.left = repl
	default:
		p.right = repl
	}
}

// retrace recomputes heights from n up to the root, rotating wherever the
// AVL balance is violated. Removal can cascade rotations all the way up, so
// the walk never stops early.
func (t *tree[T]) retrace(n *tnode[T]) {
	for n != nil {
		n = t.rebalance(n)
		n = n.parent
	}
}

// rebalance fixes the subtree rooted at n and returns its root afterwards.
func (t *tree[T]) rebalance(n *tnode[T]) *tnode[T] {
	n.height = 1 + max(height(n.left), height(n.right))
	switch bf := height(n.left) - height(n.right); {
	case bf > 1:
		if height(n.left.left) < height(n.left.right) {
			t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	case bf < -1:
		if height(n.right.right) < height(n.right.left) {
			t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	}
	return n
}

func (t *tree[T]) rotateLeft(x *tnode[T]) *tnode[T] {
	y := x.right
	p := x.parent
	x.right = y.left
	if x.right != nil {
		x.right.parent = x
	}
	y.left = x
	x.parent = y
	y.parent = p
	t.replaceChild(p, x, y)
	x.height = 1 + max(height(x.left), height(x.right))
	y.height = 1 + max(height(y.left), height(y.right))
	return y
}

func (t *tree[T]) rotateRight(x *tnode[T]) *tnode[T] {
	y := x.left
	p := x.parent
	x.left = y.right
	if x.left != nil {
		x.left.parent = x
	}
	y.right = x
	x.parent = y
	y.parent = p
	t.replaceChild(p, x, y)
	x.height = 1 + max(height(x.left), height(x.right))
	y.height = 1 + max(height(y.left), height(y.right))
	return y
}

// lookup returns the slot whose item compares equal under cmpItem, or nil.
// cmpItem must be monotone over the tree order: negative while the item
// sorts before the key, zero on a match, positive after.
func (t *tree[T]) lookup(cmpItem func(T) int) *tnode[T] {
	n := t.root
	for n != nil {
		switch c := cmpItem(n.item); {
		case c == 0:
			return n
		case c < 0:
			n = n.right
		default:
			n = n.left
		}
	}
	return nil
}

// lowerBound returns the leftmost slot with cmpItem(item) >= 0, or nil when
// every item sorts before the key. With a prefix comparison this lands on
// the first slot of the prefix's contiguous block.
func (t *tree[T]) lowerBound(cmpItem func(T) int) *tnode[T] {
	var res *tnode[T]
	n := t.root
	for n != nil {
		if cmpItem(n.item) >= 0 {
			res = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return res
}

func (t *tree[T]) min() *tnode[T] {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *tree[T]) max() *tnode[T] {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns n's in-order successor, nil past the maximum.
func (n *tnode[T]) next() *tnode[T] {
	if n.right != nil {
		s := n.right
		for s.left != nil {
			s = s.left
		}
		return s
	}
	s := n
	for s.parent != nil && s.parent.right == s {
		s = s.parent
	}
	return s.parent
}

// prev returns n's in-order predecessor, nil before the minimum.
func (n *tnode[T]) prev() *tnode[T] {
	if n.left != nil {
		s := n.left
		for s.right != nil {
			s = s.right
		}
		return s
	}
	s := n
	for s.parent != nil && s.parent.left == s {
		s = s.parent
	}
	return s.parent
}

// clear drops every slot wholesale. The tree object itself stays, so
// positions that only name the tree (end sentinels) remain comparable.
func (t *tree[T]) clear() {
	t.root = nil
	t.size = 0
}

// buildFrom links the pre-allocated slots, which must be in ascending item
// order, into a height-balanced tree, discarding previous contents. O(n).
func (t *tree[T]) buildFrom(slots []*tnode[T]) {
	t.root = buildSpan(slots, 0, len(slots), nil)
	t.size = len(slots)
}

func buildSpan[T any](slots []*tnode[T], lo, hi int, parent *tnode[T]) *tnode[T] {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	n := slots[mid]
	n.parent = parent
	n.left = buildSpan(slots, lo, mid, n)
	n.right = buildSpan(slots, mid+1, hi, n)
	n.height = 1 + max(height(n.left), height(n.right))
	return n
}
