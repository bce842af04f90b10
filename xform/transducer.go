package xform

import (
	apperrors "github.com/kbukum/xduce/errors"
)

// sink receives items pushed by the stage upstream of it. The terminal sink
// folds into the reduction state; every other sink belongs to a stage.
type sink[T any] func(item T)

// stage builds one link of a chain. next is the downstream sink[X]; the
// result is the upstream sink[Y] that feeds it. The concrete types are
// fixed by the typed constructor that created the stage.
type stage func(next any) any

// Transducer turns a Reducer over Out into a Reducer over In.
//
// A Transducer only carries configuration. Counters, latches and other
// per-pass state are created each time it is applied, so one Transducer
// value can back any number of independent reductions.
type Transducer[In, Out any] struct {
	stages []stage
}

// New builds a Transducer from a stage function. build is called once per
// application with the downstream push function and returns the upstream
// one; any state the stage needs belongs inside build so that every
// application starts fresh. The returned function is called once per input
// item and may call next zero or more times.
func New[In, Out any](build func(next func(Out)) func(In)) Transducer[In, Out] {
	if build == nil {
		panic(apperrors.ContractViolation("new", "nil stage builder"))
	}
	return newTransducer(func(next sink[Out]) sink[In] {
		return sink[In](build(next))
	})
}

func newTransducer[In, Out any](build func(next sink[Out]) sink[In]) Transducer[In, Out] {
	return Transducer[In, Out]{stages: []stage{
		func(next any) any { return build(next.(sink[Out])) },
	}}
}

// Len returns the number of primitive stages after flattening.
func (t Transducer[In, Out]) Len() int { return len(t.stages) }

// Then appends a type-preserving transducer after t.
func (t Transducer[In, Out]) Then(next Transducer[Out, Out]) Transducer[In, Out] {
	return Compose(t, next)
}

// Apply wraps r with t, producing a reducer over t's input type.
//
// The returned reducer owns fresh stage state. It threads the incoming state
// through every call r receives for one input item and returns the result;
// stages never look at the state themselves. Applying a zero Transducer
// panics with a contract violation.
func Apply[S, In, Out any](t Transducer[In, Out], r Reducer[S, Out]) Reducer[S, In] {
	if len(t.stages) == 0 {
		panic(apperrors.ContractViolation("apply", "transducer has no stages"))
	}

	var state S
	var next any = sink[Out](func(item Out) { state = r(state, item) })
	for i := len(t.stages) - 1; i >= 0; i-- {
		next = t.stages[i](next)
	}
	head := next.(sink[In])

	return func(s S, item In) S {
		state = s
		head(item)
		return state
	}
}

// Compose joins two transducers. t1 is the outer one: it sees raw input and
// its output feeds t2. Composed inputs are flattened, so grouping never
// changes behaviour. Composing a zero Transducer panics.
func Compose[A, B, C any](t1 Transducer[A, B], t2 Transducer[B, C]) Transducer[A, C] {
	return Transducer[A, C]{stages: concat(t1.stages, t2.stages)}
}

// Compose3 joins three transducers, outermost first.
func Compose3[A, B, C, D any](t1 Transducer[A, B], t2 Transducer[B, C], t3 Transducer[C, D]) Transducer[A, D] {
	return Transducer[A, D]{stages: concat(t1.stages, t2.stages, t3.stages)}
}

// Compose4 joins four transducers, outermost first.
func Compose4[A, B, C, D, E any](t1 Transducer[A, B], t2 Transducer[B, C], t3 Transducer[C, D], t4 Transducer[D, E]) Transducer[A, E] {
	return Transducer[A, E]{stages: concat(t1.stages, t2.stages, t3.stages, t4.stages)}
}

// Chain joins any number of type-preserving transducers, outermost first.
func Chain[T any](first Transducer[T, T], rest ...Transducer[T, T]) Transducer[T, T] {
	parts := make([][]stage, 0, len(rest)+1)
	parts = append(parts, first.stages)
	for _, t := range rest {
		parts = append(parts, t.stages)
	}
	return Transducer[T, T]{stages: concat(parts...)}
}

func concat(parts ...[]stage) []stage {
	n := 0
	for _, p := range parts {
		if len(p) == 0 {
			panic(apperrors.ContractViolation("compose", "transducer has no stages"))
		}
		n += len(p)
	}
	out := make([]stage, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
