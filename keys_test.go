package ordtree

import "fmt"

// ascKey orders ascending and refuses duplicates.
type ascKey int

func (k ascKey) Compare(o ascKey) Ordering {
	switch {
	case k < o:
		return BelongsLeft
	case k > o:
		return BelongsRight
	default:
		return Matches
	}
}
func (k ascKey) Duplicates() DuplicatePolicy { return Refuse }

// descKey orders descending (larger keys sort left) and refuses
// duplicates — used to pin down that neighbour semantics are defined
// in tree in-order terms regardless of the comparator's direction.
type descKey int

func (k descKey) Compare(o descKey) Ordering {
	switch {
	case k > o:
		return BelongsLeft
	case k < o:
		return BelongsRight
	default:
		return Matches
	}
}
func (k descKey) Duplicates() DuplicatePolicy { return Refuse }

// fifoKey orders ascending and keeps duplicates in insertion order.
type fifoKey int

func (k fifoKey) Compare(o fifoKey) Ordering {
	switch {
	case k < o:
		return BelongsLeft
	case k > o:
		return BelongsRight
	default:
		return Matches
	}
}
func (k fifoKey) Duplicates() DuplicatePolicy { return UseFIFO }

// lifoKey orders ascending and keeps duplicates in reverse insertion order.
type lifoKey int

func (k lifoKey) Compare(o lifoKey) Ordering {
	switch {
	case k < o:
		return BelongsLeft
	case k > o:
		return BelongsRight
	default:
		return Matches
	}
}
func (k lifoKey) Duplicates() DuplicatePolicy { return UseLIFO }

// taggedRecord pairs any key type with a string payload, so
// duplicate-policy tests can tell records with equal keys apart.
type taggedRecord[K Key[K]] struct {
	k   K
	tag string
}

func (r taggedRecord[K]) Key() K { return r.k }

func (r taggedRecord[K]) String() string {
	return fmt.Sprintf("%v:%s", r.k, r.tag)
}

func tagged[K Key[K]](k K, tag string) taggedRecord[K] {
	return taggedRecord[K]{k: k, tag: tag}
}
