package ordtree

// recursiveRemove descends looking for a record matching key, removes
// at most one, and rebalances on the way back up. It returns the new
// subtree, a fixHeight signal (true iff the returning subtree is one
// black level short and the parent must repair it), and the removed
// record, or nil if key was not found.
func recursiveRemove[R Record[K], K Key[K]](n *node[R, K], key K) (*node[R, K], bool, *R) {
	if n == nil {
		return nil, false, nil
	}

	switch key.Compare(n.rec.Key()) {
	case Matches:
		if n.rec.Key().Duplicates() == Refuse {
			newSub, fh := replace(n)
			removed := n.rec
			return newSub, fh, &removed
		}

		// Duplicates are permitted: prefer the leftmost matching
		// record, so search deeper into the left subtree first.
		deepLeft, deepFixHeight, deepRemoved := recursiveRemove(n.left, key)
		if deepRemoved != nil {
			// A deeper duplicate was found and removed. The new left
			// subtree may be one black level short, so it gets the
			// same fixup as a belongsLeft descent.
			result, newFixHeight := combineLeft(n, deepLeft, deepFixHeight)
			return result, newFixHeight, deepRemoved
		}

		// No duplicate found deeper left: this node itself is the match.
		newSub, fh := replace(n)
		removed := n.rec
		return newSub, fh, &removed

	case BelongsLeft:
		return leftDelete(n, key)

	default: // BelongsRight
		return rightDelete(n, key)
	}
}

// replace removes n's own record by fusing its two subtrees together.
func replace[R Record[K], K Key[K]](n *node[R, K]) (*node[R, K], bool) {
	if n == nil {
		return nil, false
	}
	return fused(n.left, n.right), n.color == black
}

// leftDelete removes key from n.left and rebuilds/rebalances n.
func leftDelete[R Record[K], K Key[K]](n *node[R, K], key K) (*node[R, K], bool, *R) {
	newLeft, fh, removed := recursiveRemove(n.left, key)
	result, newFixHeight := combineLeft(n, newLeft, fh)
	return result, newFixHeight, removed
}

// rightDelete removes key from n.right and rebuilds/rebalances n.
func rightDelete[R Record[K], K Key[K]](n *node[R, K], key K) (*node[R, K], bool, *R) {
	newRight, fh, removed := recursiveRemove(n.right, key)
	result, newFixHeight := combineRight(n, newRight, fh)
	return result, newFixHeight, removed
}

func combineLeft[R Record[K], K Key[K]](n *node[R, K], newLeft *node[R, K], fh bool) (*node[R, K], bool) {
	if !fh {
		return &node[R, K]{color: n.color, rec: n.rec, left: newLeft, right: n.right}, false
	}
	if isBlack(n) {
		return leftBalanced(n.color, n.rec, newLeft, n.right)
	}
	// n is red: the deficit is absorbed by recoloring this node black.
	result, _ := leftBalanced(n.color, n.rec, newLeft, n.right)
	return result, false
}

func combineRight[R Record[K], K Key[K]](n *node[R, K], newRight *node[R, K], fh bool) (*node[R, K], bool) {
	if !fh {
		return &node[R, K]{color: n.color, rec: n.rec, left: n.left, right: newRight}, false
	}
	if isBlack(n) {
		return rightBalanced(n.color, n.rec, n.left, newRight)
	}
	result, _ := rightBalanced(n.color, n.rec, n.left, newRight)
	return result, false
}
