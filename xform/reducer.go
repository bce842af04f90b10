package xform

import (
	"golang.org/x/exp/constraints"
)

// Reducer folds one item into the accumulated state and returns the new state.
type Reducer[S, T any] func(state S, item T) S

// Reducer2 folds one item from each of two zipped ranges.
type Reducer2[S, A, B any] func(state S, a A, b B) S

// Reducer3 folds one item from each of three zipped ranges.
type Reducer3[S, A, B, C any] func(state S, a A, b B, c C) S

// Reducer4 folds one item from each of four zipped ranges.
type Reducer4[S, A, B, C, D any] func(state S, a A, b B, c C, d D) S

// Tupled returns the equivalent single-item reducer over Tuple2.
func (r Reducer2[S, A, B]) Tupled() Reducer[S, Tuple2[A, B]] {
	return func(s S, t Tuple2[A, B]) S { return r(s, t.V0, t.V1) }
}

// Tupled returns the equivalent single-item reducer over Tuple3.
func (r Reducer3[S, A, B, C]) Tupled() Reducer[S, Tuple3[A, B, C]] {
	return func(s S, t Tuple3[A, B, C]) S { return r(s, t.V0, t.V1, t.V2) }
}

// Tupled returns the equivalent single-item reducer over Tuple4.
func (r Reducer4[S, A, B, C, D]) Tupled() Reducer[S, Tuple4[A, B, C, D]] {
	return func(s S, t Tuple4[A, B, C, D]) S { return r(s, t.V0, t.V1, t.V2, t.V3) }
}

// Fork feeds every item to each reducer in turn, threading the state through
// them in registration order. A branch finishes with an item before the next
// one sees it.
func Fork[S, T any](first Reducer[S, T], rest ...Reducer[S, T]) Reducer[S, T] {
	branches := append([]Reducer[S, T]{first}, rest...)
	return func(s S, item T) S {
		for _, r := range branches {
			s = r(s, item)
		}
		return s
	}
}

// Fork2 feeds every item to two reducers with independent states, bundled as
// a Tuple2.
func Fork2[S1, S2, T any](r1 Reducer[S1, T], r2 Reducer[S2, T]) Reducer[Tuple2[S1, S2], T] {
	return func(s Tuple2[S1, S2], item T) Tuple2[S1, S2] {
		s.V0 = r1(s.V0, item)
		s.V1 = r2(s.V1, item)
		return s
	}
}

// Fork3 feeds every item to three reducers with independent states.
func Fork3[S1, S2, S3, T any](r1 Reducer[S1, T], r2 Reducer[S2, T], r3 Reducer[S3, T]) Reducer[Tuple3[S1, S2, S3], T] {
	return func(s Tuple3[S1, S2, S3], item T) Tuple3[S1, S2, S3] {
		s.V0 = r1(s.V0, item)
		s.V1 = r2(s.V1, item)
		s.V2 = r3(s.V2, item)
		return s
	}
}

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Discard ignores every item and returns the state unchanged.
func Discard[S, T any]() Reducer[S, T] {
	return func(s S, _ T) S { return s }
}

// Append collects items into a slice.
func Append[T any]() Reducer[[]T, T] {
	return func(s []T, item T) []T { return append(s, item) }
}

// Count counts items.
func Count[T any]() Reducer[int, T] {
	return func(n int, _ T) int { return n + 1 }
}

// Sum adds items to the state.
func Sum[N Number]() Reducer[N, N] {
	return func(s, x N) N { return s + x }
}

// Product multiplies the state by each item.
func Product[N Number]() Reducer[N, N] {
	return func(s, x N) N { return s * x }
}

// Min keeps the smallest of the state and each item.
func Min[T constraints.Ordered]() Reducer[T, T] {
	return func(s, x T) T {
		if x < s {
			return x
		}
		return s
	}
}

// Max keeps the largest of the state and each item.
func Max[T constraints.Ordered]() Reducer[T, T] {
	return func(s, x T) T {
		if x > s {
			return x
		}
		return s
	}
}

// Last keeps the most recent item.
func Last[T any]() Reducer[T, T] {
	return func(_ T, x T) T { return x }
}
