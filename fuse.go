package ordtree

// fused merges the left and right subtrees of a just-removed node into
// a single tree preserving order and the inputs' black-height, which
// is one black level short of a removed black node; replace reports
// that deficit as fixHeight and the parent's leftBalanced/rightBalanced
// repairs it. Below the result's root no red node has a red child.
// When either input is red-rooted (so the removed node was black) the
// root itself may be red with a red child; the parent's
// leftBalanced/rightBalanced recolors such a root black.
func fused[R Record[K], K Key[K]](l, r *node[R, K]) *node[R, K] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case isRed(l) && isRed(r):
		s := fused(l.right, r.left)
		if isRed(s) {
			return &node[R, K]{
				color: red,
				rec:   s.rec,
				left:  &node[R, K]{color: red, rec: l.rec, left: l.left, right: s.left},
				right: &node[R, K]{color: red, rec: r.rec, left: s.right, right: r.right},
			}
		}
		return &node[R, K]{
			color: red,
			rec:   l.rec,
			left:  l.left,
			right: &node[R, K]{color: red, rec: r.rec, left: s, right: r.right},
		}
	case isBlack(l) && isBlack(r):
		s := fused(l.right, r.left)
		if isRed(s) {
			return &node[R, K]{
				color: red,
				rec:   s.rec,
				left:  &node[R, K]{color: black, rec: l.rec, left: l.left, right: s.left},
				right: &node[R, K]{color: black, rec: r.rec, left: s.right, right: r.right},
			}
		}
		return redBalanced(black, l.rec, l.left, &node[R, K]{color: red, rec: r.rec, left: s, right: r.right})
	case isRed(r):
		return &node[R, K]{color: red, rec: r.rec, left: fused(l, r.left), right: r.right}
	default:
		// isRed(l), r black
		return &node[R, K]{color: red, rec: l.rec, left: l.left, right: fused(l.right, r)}
	}
}
