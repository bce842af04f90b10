package xform

import (
	"iter"
)

// Intersperse forwards delim before every item except the first.
func Intersperse[T any](delim T) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		started := false
		return func(item T) {
			if started {
				next(delim)
			}
			started = true
			next(item)
		}
	})
}

// Join flattens slice-like groups one level: every element of every group is
// forwarded in order. Empty groups contribute nothing.
func Join[R ~[]E, E any]() Transducer[R, E] {
	return newTransducer(func(next sink[E]) sink[R] {
		return func(group R) {
			for _, e := range group {
				next(e)
			}
		}
	})
}

// JoinSeq is Join for groups given as iter.Seq.
func JoinSeq[E any]() Transducer[iter.Seq[E], E] {
	return newTransducer(func(next sink[E]) sink[iter.Seq[E]] {
		return func(group iter.Seq[E]) {
			for e := range group {
				next(e)
			}
		}
	})
}

// JoinWith is Join with the elements of delim forwarded between consecutive
// groups, but not before the first or after the last.
func JoinWith[R ~[]E, E any](delim R) Transducer[R, E] {
	return newTransducer(func(next sink[E]) sink[R] {
		started := false
		return func(group R) {
			if started {
				for _, e := range delim {
					next(e)
				}
			}
			started = true
			for _, e := range group {
				next(e)
			}
		}
	})
}
