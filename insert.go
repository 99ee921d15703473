package ordtree

// insert descends recursively to place rec, rebalancing on the way
// back up. It returns the new subtree and, when rec is refused as a
// duplicate, the already-stored matching record, which stays in the
// tree (nil meaning the insert succeeded outright). The public
// Tree.Insert reports success as "no bumped record."
func insert[R Record[K], K Key[K]](n *node[R, K], rec R) (*node[R, K], *R) {
	if n == nil {
		return &node[R, K]{color: red, rec: rec}, nil
	}

	switch rec.Key().Compare(n.rec.Key()) {
	case BelongsLeft:
		newLeft, bumped := insert(n.left, rec)
		if bumped != nil {
			return n, bumped
		}
		return redBalanced(n.color, n.rec, newLeft, n.right), nil

	case BelongsRight:
		newRight, bumped := insert(n.right, rec)
		if bumped != nil {
			return n, bumped
		}
		return redBalanced(n.color, n.rec, n.left, newRight), nil

	default: // Matches
		switch rec.Key().Duplicates() {
		case Refuse:
			existing := n.rec
			return n, &existing
		case UseLIFO:
			newLeft, bumped := insert(n.left, rec)
			if bumped != nil {
				return n, bumped
			}
			return redBalanced(n.color, n.rec, newLeft, n.right), nil
		default: // UseFIFO
			newRight, bumped := insert(n.right, rec)
			if bumped != nil {
				return n, bumped
			}
			return redBalanced(n.color, n.rec, n.left, newRight), nil
		}
	}
}
