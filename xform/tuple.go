package xform

// Tuple2 carries one item from each of two zipped ranges.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 carries one item from each of three zipped ranges.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 carries one item from each of four zipped ranges.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Unpack2 adapts a two-argument function to accept a Tuple2, so callables
// written against zipped arguments can be passed to Filter, Transform and
// friends.
func Unpack2[A, B, R any](f func(A, B) R) func(Tuple2[A, B]) R {
	return func(t Tuple2[A, B]) R { return f(t.V0, t.V1) }
}

// Unpack3 is Unpack2 for three arguments.
func Unpack3[A, B, C, R any](f func(A, B, C) R) func(Tuple3[A, B, C]) R {
	return func(t Tuple3[A, B, C]) R { return f(t.V0, t.V1, t.V2) }
}

// Unpack4 is Unpack2 for four arguments.
func Unpack4[A, B, C, D, R any](f func(A, B, C, D) R) func(Tuple4[A, B, C, D]) R {
	return func(t Tuple4[A, B, C, D]) R { return f(t.V0, t.V1, t.V2, t.V3) }
}
