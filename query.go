package ordtree

// contains reports whether a record with key exists in n, by ordinary
// BST descent on the comparator.
func contains[R Record[K], K Key[K]](n *node[R, K], key K) bool {
	for n != nil {
		switch key.Compare(n.rec.Key()) {
		case Matches:
			return true
		case BelongsLeft:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// fetch returns a record matching key. With Refuse duplicates the
// first match found is the only one. With FIFO/LIFO it recurses into
// the left subtree first, to prefer the leftmost duplicate, falling
// back to the current node if the left branch yields nothing.
func fetch[R Record[K], K Key[K]](n *node[R, K], key K) (R, bool) {
	var zero R
	if n == nil {
		return zero, false
	}
	switch key.Compare(n.rec.Key()) {
	case BelongsLeft:
		return fetch(n.left, key)
	case BelongsRight:
		return fetch(n.right, key)
	default: // Matches
		if n.rec.Key().Duplicates() == Refuse {
			return n.rec, true
		}
		if r, ok := fetch(n.left, key); ok {
			return r, true
		}
		return n.rec, true
	}
}

// fetchAll returns every record matching key, in in-order sequence.
// At a matching node, all three of its subtrees are visited: matches
// may occur on either side when duplicates are permitted.
func fetchAll[R Record[K], K Key[K]](n *node[R, K], key K) []R {
	if n == nil {
		return nil
	}
	switch key.Compare(n.rec.Key()) {
	case BelongsLeft:
		return fetchAll(n.left, key)
	case BelongsRight:
		return fetchAll(n.right, key)
	default: // Matches
		var out []R
		out = append(out, fetchAll(n.left, key)...)
		out = append(out, n.rec)
		out = append(out, fetchAll(n.right, key)...)
		return out
	}
}

func leftmost[R Record[K], K Key[K]](n *node[R, K]) (R, bool) {
	var zero R
	if n == nil {
		return zero, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.rec, true
}

func rightmost[R Record[K], K Key[K]](n *node[R, K]) (R, bool) {
	var zero R
	if n == nil {
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.rec, true
}

// predecessorOf returns the closest record whose key compares strictly
// less than key — i.e. the in-order predecessor, skipping over any
// run of records that match key exactly. A matching node can never
// itself be a neighbour, and nothing in its right subtree can be a
// predecessor (everything there compares matches or belongsRight), so
// the search need only continue left from a match.
func predecessorOf[R Record[K], K Key[K]](n *node[R, K], key K) (R, bool) {
	var zero R
	if n == nil {
		return zero, false
	}
	switch key.Compare(n.rec.Key()) {
	case BelongsLeft:
		return predecessorOf(n.left, key)
	case BelongsRight:
		if r, ok := predecessorOf(n.right, key); ok {
			return r, true
		}
		return n.rec, true
	default: // Matches
		return predecessorOf(n.left, key)
	}
}

// successorOf is the mirror of predecessorOf.
func successorOf[R Record[K], K Key[K]](n *node[R, K], key K) (R, bool) {
	var zero R
	if n == nil {
		return zero, false
	}
	switch key.Compare(n.rec.Key()) {
	case BelongsRight:
		return successorOf(n.right, key)
	case BelongsLeft:
		if l, ok := successorOf(n.left, key); ok {
			return l, true
		}
		return n.rec, true
	default: // Matches
		return successorOf(n.right, key)
	}
}

// neighboursFor returns the in-order predecessor and successor of key,
// whether or not key itself is present, excluding any duplicate of key.
func neighboursFor[R Record[K], K Key[K]](n *node[R, K], key K) (left, right R, hasLeft, hasRight bool) {
	left, hasLeft = predecessorOf(n, key)
	right, hasRight = successorOf(n, key)
	return
}

func neighboursOf[R Record[K], K Key[K]](n *node[R, K], key K) (left, right R, hasLeft, hasRight, ok bool) {
	if !contains(n, key) {
		return
	}
	left, right, hasLeft, hasRight = neighboursFor(n, key)
	return left, right, hasLeft, hasRight, true
}

func count[R Record[K], K Key[K]](n *node[R, K]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.left) + count(n.right)
}

func height[R Record[K], K Key[K]](n *node[R, K]) int {
	if n == nil {
		return 0
	}
	lh, rh := height(n.left), height(n.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}
