package xform

import (
	"fmt"

	apperrors "github.com/kbukum/xduce/errors"
)

// Take forwards the first n items and drops the rest. The upstream range is
// still consumed in full; Take only stops forwarding.
//
// The counter saturates at zero rather than being decremented on every item,
// so it never wraps on long inputs. What gets forwarded is the same as
// decrement-then-compare.
func Take[T any](n int) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		remaining := n
		return func(item T) {
			if remaining > 0 {
				remaining--
				next(item)
			}
		}
	})
}

// Drop skips the first n items and forwards the rest.
func Drop[T any](n int) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		remaining := n
		return func(item T) {
			if remaining > 0 {
				remaining--
				return
			}
			next(item)
		}
	})
}

// TakeWhile forwards items until pred first returns false. The failing item
// and everything after it are dropped, even if pred would accept them.
func TakeWhile[T any](pred func(T) bool) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		done := false
		return func(item T) {
			if done {
				return
			}
			if !pred(item) {
				done = true
				return
			}
			next(item)
		}
	})
}

// DropWhile skips items until pred first returns false, then forwards that
// item and everything after it. pred is not called once the latch trips.
func DropWhile[T any](pred func(T) bool) Transducer[T, T] {
	return newTransducer(func(next sink[T]) sink[T] {
		done := false
		return func(item T) {
			if !done && pred(item) {
				return
			}
			done = true
			next(item)
		}
	})
}

// Stride forwards the items at positions 0, n, 2n, ... It panics with a
// contract violation when n < 1.
func Stride[T any](n int) Transducer[T, T] {
	if n < 1 {
		panic(apperrors.ContractViolation("stride", fmt.Sprintf("step must be at least 1, got %d", n)))
	}
	return newTransducer(func(next sink[T]) sink[T] {
		var c counter
		return func(item T) {
			if c.next()%n == 0 {
				next(item)
			}
		}
	})
}
