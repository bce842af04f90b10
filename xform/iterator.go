package xform

import (
	"context"
	"iter"
)

// Iterator is a fallible, context-aware pull source. Next returns false once
// the source is exhausted. Close releases any held resources and must be safe
// to call more than once.
type Iterator[T any] interface {
	Next(ctx context.Context) (T, bool, error)
	Close() error
}

// ReduceIterator folds every item produced by it into state. It stops at the
// first source error or when ctx is done, and always closes it. The state
// reached before the failure is returned alongside the error.
func ReduceIterator[S, T any](ctx context.Context, state S, r Reducer[S, T], it Iterator[T]) (result S, err error) {
	defer func() {
		if cerr := it.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for {
		if cerr := ctx.Err(); cerr != nil {
			return state, cerr
		}
		item, ok, nerr := it.Next(ctx)
		if nerr != nil {
			return state, nerr
		}
		if !ok {
			return state, nil
		}
		state = r(state, item)
	}
}

// Values adapts it to an iter.Seq. The returned func reports the error that
// ended the sequence, if any, once ranging is finished. The iterator is
// closed when the sequence ends or the consumer stops early.
func Values[T any](ctx context.Context, it Iterator[T]) (iter.Seq[T], func() error) {
	var seqErr error
	seq := func(yield func(T) bool) {
		defer func() {
			if cerr := it.Close(); cerr != nil && seqErr == nil {
				seqErr = cerr
			}
		}()
		for {
			if err := ctx.Err(); err != nil {
				seqErr = err
				return
			}
			item, ok, err := it.Next(ctx)
			if err != nil {
				seqErr = err
				return
			}
			if !ok || !yield(item) {
				return
			}
		}
	}
	return seq, func() error { return seqErr }
}

// FromSlice returns an Iterator over items.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

type sliceIter[T any] struct {
	items []T
	pos   int
}

func (s *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false, nil
	}
	item := s.items[s.pos]
	s.pos++
	return item, true, nil
}

func (s *sliceIter[T]) Close() error { return nil }
