package xform

import (
	"iter"
)

// Reduce folds every item of in into state with r.
func Reduce[S, T any](state S, r Reducer[S, T], in iter.Seq[T]) S {
	for item := range in {
		state = r(state, item)
	}
	return state
}

// Reduce2 folds two ranges in lock step and stops at the end of the shorter.
func Reduce2[S, A, B any](state S, r Reducer2[S, A, B], a iter.Seq[A], b iter.Seq[B]) S {
	return Reduce(state, r.Tupled(), Zip2(a, b))
}

// Reduce3 folds three ranges in lock step and stops at the end of the shortest.
func Reduce3[S, A, B, C any](state S, r Reducer3[S, A, B, C], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) S {
	return Reduce(state, r.Tupled(), Zip3(a, b, c))
}

// Reduce4 folds four ranges in lock step and stops at the end of the shortest.
func Reduce4[S, A, B, C, D any](state S, r Reducer4[S, A, B, C, D], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], d iter.Seq[D]) S {
	return Reduce(state, r.Tupled(), Zip4(a, b, c, d))
}

// Transduce applies t to r and reduces in with the result.
func Transduce[S, In, Out any](state S, t Transducer[In, Out], r Reducer[S, Out], in iter.Seq[In]) S {
	return Reduce(state, Apply(t, r), in)
}

// Transduce2 transduces two zipped ranges. Items reach t as Tuple2 values.
func Transduce2[S, A, B, Out any](state S, t Transducer[Tuple2[A, B], Out], r Reducer[S, Out], a iter.Seq[A], b iter.Seq[B]) S {
	return Reduce(state, Apply(t, r), Zip2(a, b))
}

// Transduce3 transduces three zipped ranges.
func Transduce3[S, A, B, C, Out any](state S, t Transducer[Tuple3[A, B, C], Out], r Reducer[S, Out], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) S {
	return Reduce(state, Apply(t, r), Zip3(a, b, c))
}

// Transduce4 transduces four zipped ranges.
func Transduce4[S, A, B, C, D, Out any](state S, t Transducer[Tuple4[A, B, C, D], Out], r Reducer[S, Out], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], d iter.Seq[D]) S {
	return Reduce(state, Apply(t, r), Zip4(a, b, c, d))
}

// Zip2 pairs items of a and b positionally and ends with the shorter range.
// When b runs out first, the item already pulled from a is discarded.
func Zip2[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[Tuple2[A, B]] {
	return func(yield func(Tuple2[A, B]) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()
		for va := range a {
			vb, ok := nextB()
			if !ok || !yield(Tuple2[A, B]{V0: va, V1: vb}) {
				return
			}
		}
	}
}

// Zip3 is Zip2 for three ranges.
func Zip3[A, B, C any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) iter.Seq[Tuple3[A, B, C]] {
	return func(yield func(Tuple3[A, B, C]) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()
		nextC, stopC := iter.Pull(c)
		defer stopC()
		for va := range a {
			vb, ok := nextB()
			if !ok {
				return
			}
			vc, ok := nextC()
			if !ok || !yield(Tuple3[A, B, C]{V0: va, V1: vb, V2: vc}) {
				return
			}
		}
	}
}

// Zip4 is Zip2 for four ranges.
func Zip4[A, B, C, D any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], d iter.Seq[D]) iter.Seq[Tuple4[A, B, C, D]] {
	return func(yield func(Tuple4[A, B, C, D]) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()
		nextC, stopC := iter.Pull(c)
		defer stopC()
		nextD, stopD := iter.Pull(d)
		defer stopD()
		for va := range a {
			vb, ok := nextB()
			if !ok {
				return
			}
			vc, ok := nextC()
			if !ok {
				return
			}
			vd, ok := nextD()
			if !ok || !yield(Tuple4[A, B, C, D]{V0: va, V1: vb, V2: vc, V3: vd}) {
				return
			}
		}
	}
}

// Runes ranges over the runes of s.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
