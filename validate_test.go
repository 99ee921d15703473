package ordtree

// isValid walks n and confirms invariants P1-P4: BST order, no
// red-red, equal black-height on every root-to-empty path, and (at
// the top-level call site) a black root. Grounded on the structural
// checks in bst.Tree.IsTreeValid / rbtree.Tree.IsTreeValid, adapted
// from a parent-pointer walk to a plain recursive one.
func isValid[R Record[K], K Key[K]](root *node[R, K]) bool {
	if root != nil && root.color != black {
		return false
	}
	if !inOrderMonotonic(root) {
		return false
	}
	_, ok := checkNode(root)
	return ok
}

// inOrderMonotonic confirms P1 across the whole tree, not just between
// a node and its immediate children: it walks in-order and compares
// every consecutive pair of keys, exactly as bst.Tree.IsTreeValid does
// over its own TraverseInOrder. A rotation bug that preserves every
// local parent/child relation but scrambles a deeper subtree's order
// would pass a purely local check but fails this one, since any
// scrambling surfaces as a non-monotonic adjacent pair somewhere in
// the in-order sequence.
func inOrderMonotonic[R Record[K], K Key[K]](root *node[R, K]) bool {
	var prev *K
	ok := true
	var walk func(n *node[R, K])
	walk = func(n *node[R, K]) {
		if n == nil || !ok {
			return
		}
		walk(n.left)
		if !ok {
			return
		}
		curr := n.rec.Key()
		if prev != nil && (*prev).Compare(curr) == BelongsRight {
			ok = false
			return
		}
		prev = &curr
		walk(n.right)
	}
	walk(root)
	return ok
}

// checkNode returns the black-height of n and whether the subtree
// rooted at n satisfies P2-P3 (red-red and black-height); P1 is
// checked separately, globally, by inOrderMonotonic.
func checkNode[R Record[K], K Key[K]](n *node[R, K]) (int, bool) {
	if n == nil {
		return 1, true
	}

	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, false
	}

	lh, lok := checkNode(n.left)
	rh, rok := checkNode(n.right)
	if !lok || !rok || lh != rh {
		return 0, false
	}

	bh := lh
	if n.color == black {
		bh++
	}
	return bh, true
}
