package xform

// counter yields 0, 1, 2, ... one value per input item.
type counter struct{ n int }

func (c *counter) next() int {
	i := c.n
	c.n++
	return i
}

// Filter forwards items for which pred returns true.
func Filter[T any](pred func(T) bool) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		return func(item T) {
			if pred(item) {
				next(item)
			}
		}
	})
}

// FilterI is Filter with the zero-based position of the item. The position
// advances on every item, forwarded or not.
func FilterI[T any](pred func(i int, item T) bool) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		var c counter
		return func(item T) {
			if pred(c.next(), item) {
				next(item)
			}
		}
	})
}

// Transform forwards f(item).
func Transform[In, Out any](f func(In) Out) Transducer[In, Out] {
	return newTransducer(func(next sink[Out]) sink[In] {
		return func(item In) { next(f(item)) }
	})
}

// TransformI forwards f(i, item) where i is the zero-based position.
func TransformI[In, Out any](f func(i int, item In) Out) Transducer[In, Out] {
	return newTransducer(func(next sink[Out]) sink[In] {
		var c counter
		return func(item In) { next(f(c.next(), item)) }
	})
}

// TransformMaybe forwards the value f returns when ok is true and drops the
// item otherwise.
func TransformMaybe[In, Out any](f func(In) (Out, bool)) Transducer[In, Out] {
	return newTransducer(func(next sink[Out]) sink[In] {
		return func(item In) {
			if v, ok := f(item); ok {
				next(v)
			}
		}
	})
}

// TransformMaybeI is TransformMaybe with the zero-based position of the item.
func TransformMaybeI[In, Out any](f func(i int, item In) (Out, bool)) Transducer[In, Out] {
	return newTransducer(func(next sink[Out]) sink[In] {
		var c counter
		return func(item In) {
			if v, ok := f(c.next(), item); ok {
				next(v)
			}
		}
	})
}

// Inspect calls f for its side effect and forwards the item unchanged.
func Inspect[T any](f func(T)) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		return func(item T) {
			f(item)
			next(item)
		}
	})
}

// InspectI is Inspect with the zero-based position of the item.
func InspectI[T any](f func(i int, item T)) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		var c counter
		return func(item T) {
			f(c.next(), item)
			next(item)
		}
	})
}

// Indexed pairs an item with its position in the input.
type Indexed[T any] struct {
	Index int
	Value T
}

// Index tags each item with a running position starting at start.
func Index[T any](start int) Transducer[T, Indexed[T]] {
	return newTransducer(func(next sink[Indexed[T]]) sink[T] {
		i := start
		return func(item T) {
			next(Indexed[T]{Index: i, Value: item})
			i++
		}
	})
}
