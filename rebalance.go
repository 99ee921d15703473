package ordtree

// redBalanced removes a red-red violation introduced by a child one
// level below. Given the prospective color/record/children of a node
// that may have just acquired a red child with its own red child, it
// produces the balanced shape
//
//	red(y, black(x, a, b), black(z, c, d))
//
// with the three original records repositioned so in-order traversal
// is preserved. On any non-matching shape it is the identity. The four
// rotations (left-left, left-right, right-left, right-right) are
// Okasaki's canonical balance cases; the guard on c == black reflects
// that a red node can never legitimately have a red child to begin
// with, so the rewrite is only ever reachable from a black context.
func redBalanced[R Record[K], K Key[K]](c color, rec R, l, r *node[R, K]) *node[R, K] {
	if c == black {
		if isRed(l) && isRed(l.left) {
			return &node[R, K]{
				color: red,
				rec:   l.rec,
				left:  &node[R, K]{color: black, rec: l.left.rec, left: l.left.left, right: l.left.right},
				right: &node[R, K]{color: black, rec: rec, left: l.right, right: r},
			}
		}
		if isRed(l) && isRed(l.right) {
			return &node[R, K]{
				color: red,
				rec:   l.right.rec,
				left:  &node[R, K]{color: black, rec: l.rec, left: l.left, right: l.right.left},
				right: &node[R, K]{color: black, rec: rec, left: l.right.right, right: r},
			}
		}
		if isRed(r) && isRed(r.left) {
			return &node[R, K]{
				color: red,
				rec:   r.left.rec,
				left:  &node[R, K]{color: black, rec: rec, left: l, right: r.left.left},
				right: &node[R, K]{color: black, rec: r.rec, left: r.left.right, right: r.right},
			}
		}
		if isRed(r) && isRed(r.right) {
			return &node[R, K]{
				color: red,
				rec:   r.rec,
				left:  &node[R, K]{color: black, rec: rec, left: l, right: r.left},
				right: &node[R, K]{color: black, rec: r.right.rec, left: r.right.left, right: r.right.right},
			}
		}
	}
	return &node[R, K]{color: c, rec: rec, left: l, right: r}
}

// leftBalanced restores the black-height invariant when the left
// child (l) has returned one black level short of the right sibling
// (r) after a deletion. parentColor is the color this node had before
// the deletion that produced the shortfall.
//
// In every rebalancing case the result has the black-height of r, so
// it is one level short of the original node exactly when parentColor
// was black, and that is the returned fixHeight.
//
// Cases:
//  1. l is red-rooted (possibly with a red child, as fused can
//     return): recolor l's root black and put a red node over it and r.
//  2. r is itself red-rooted with a non-empty left child (which is
//     necessarily black, by the red-red invariant): a compound
//     rotation produces a red root over a black left and a
//     redBalanced black right.
//  3. otherwise, r is black-rooted (it must be, since a red node can
//     never be the child of another red node and parentColor == red
//     forces r black): recolor r's root red and redBalance the
//     result. If parentColor was red, demoting this node to black
//     exactly compensates for the lost black level (fixHeight = false,
//     the deficit is absorbed here). If parentColor was already
//     black, there is no color left to spend, so the net black-height
//     below this node is now one less than before the deletion and
//     the caller must keep propagating (fixHeight = true).
//  4. r is nil: nothing to rebalance against; the node is rebuilt
//     black with no rotation and no propagation (this only arises
//     from a malformed call and is kept purely defensive).
func leftBalanced[R Record[K], K Key[K]](parentColor color, rec R, l, r *node[R, K]) (*node[R, K], bool) {
	if isRed(l) {
		return &node[R, K]{color: red, rec: rec, left: recolor(l, black), right: r}, parentColor == black
	}
	if r == nil {
		return &node[R, K]{color: black, rec: rec, left: l, right: r}, false
	}
	if isRed(r) && r.left != nil {
		return &node[R, K]{
			color: red,
			rec:   r.left.rec,
			left:  &node[R, K]{color: black, rec: rec, left: l, right: r.left.left},
			right: redBalanced(black, r.rec, r.left.right, recolor(r.right, red)),
		}, parentColor == black
	}
	return redBalanced(black, rec, l, recolor(r, red)), parentColor == black
}

// rightBalanced is the mirror of leftBalanced: the right child has
// returned one black level short.
func rightBalanced[R Record[K], K Key[K]](parentColor color, rec R, l, r *node[R, K]) (*node[R, K], bool) {
	if isRed(r) {
		return &node[R, K]{color: red, rec: rec, left: l, right: recolor(r, black)}, parentColor == black
	}
	if l == nil {
		return &node[R, K]{color: black, rec: rec, left: l, right: r}, false
	}
	if isRed(l) && l.right != nil {
		return &node[R, K]{
			color: red,
			rec:   l.right.rec,
			left:  redBalanced(black, l.rec, recolor(l.left, red), l.right.left),
			right: &node[R, K]{color: black, rec: rec, left: l.right.right, right: r},
		}, parentColor == black
	}
	return redBalanced(black, rec, recolor(l, red), r), parentColor == black
}
