package xform

import (
	"iter"
	"strings"
)

// Appender is a growable output container.
type Appender[T any] interface {
	Append(item T)
}

// Output returns a reducer that appends every item to the container held as
// state.
func Output[A Appender[T], T any]() Reducer[A, T] {
	return func(out A, item T) A {
		out.Append(item)
		return out
	}
}

// Copy transduces in into out and returns out.
func Copy[A Appender[Out], In, Out any](out A, t Transducer[In, Out], in iter.Seq[In]) A {
	return Transduce(out, t, Output[A, Out](), in)
}

// Copy2 transduces two zipped ranges into out.
func Copy2[O Appender[Out], A, B, Out any](out O, t Transducer[Tuple2[A, B], Out], a iter.Seq[A], b iter.Seq[B]) O {
	return Transduce2(out, t, Output[O, Out](), a, b)
}

// Copy3 transduces three zipped ranges into out.
func Copy3[O Appender[Out], A, B, C, Out any](out O, t Transducer[Tuple3[A, B, C], Out], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) O {
	return Transduce3(out, t, Output[O, Out](), a, b, c)
}

// Copy4 transduces four zipped ranges into out.
func Copy4[O Appender[Out], A, B, C, D, Out any](out O, t Transducer[Tuple4[A, B, C, D], Out], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], d iter.Seq[D]) O {
	return Transduce4(out, t, Output[O, Out](), a, b, c, d)
}

// Into transduces in and appends the results to dst.
func Into[In, Out any](dst []Out, t Transducer[In, Out], in iter.Seq[In]) []Out {
	return Transduce(dst, t, Append[Out](), in)
}

// Into2 transduces two zipped ranges and appends the results to dst.
func Into2[A, B, Out any](dst []Out, t Transducer[Tuple2[A, B], Out], a iter.Seq[A], b iter.Seq[B]) []Out {
	return Transduce2(dst, t, Append[Out](), a, b)
}

// Into3 transduces three zipped ranges and appends the results to dst.
func Into3[A, B, C, Out any](dst []Out, t Transducer[Tuple3[A, B, C], Out], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) []Out {
	return Transduce3(dst, t, Append[Out](), a, b, c)
}

// Into4 transduces four zipped ranges and appends the results to dst.
func Into4[A, B, C, D, Out any](dst []Out, t Transducer[Tuple4[A, B, C, D], Out], a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], d iter.Seq[D]) []Out {
	return Transduce4(dst, t, Append[Out](), a, b, c, d)
}

// ToSlice transduces in into a new slice.
func ToSlice[In, Out any](t Transducer[In, Out], in iter.Seq[In]) []Out {
	return Into[In, Out](nil, t, in)
}

// SliceSink is an Appender backed by a slice.
type SliceSink[T any] struct {
	Items []T
}

// Append adds item to the sink.
func (s *SliceSink[T]) Append(item T) { s.Items = append(s.Items, item) }

// StringSink is an Appender that writes runes into a string.
type StringSink struct {
	b strings.Builder
}

// Append writes r.
func (s *StringSink) Append(r rune) { s.b.WriteRune(r) }

// String returns everything written so far.
func (s *StringSink) String() string { return s.b.String() }

// ReducerSink adapts a reducer and its state into an Appender, so a reduction
// can be driven by anything that pushes items into a container.
type ReducerSink[S, T any] struct {
	state S
	r     Reducer[S, T]
}

// NewReducerSink creates a ReducerSink starting from state.
func NewReducerSink[S, T any](state S, r Reducer[S, T]) *ReducerSink[S, T] {
	return &ReducerSink[S, T]{state: state, r: r}
}

// Append folds item into the sink's state.
func (s *ReducerSink[S, T]) Append(item T) { s.state = s.r(s.state, item) }

// State returns the accumulated state.
func (s *ReducerSink[S, T]) State() S { return s.state }
