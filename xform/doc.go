// Package xform provides composable transducers and a reduction engine.
//
// A Reducer folds one item into an accumulated state. A Transducer wraps a
// reducer to produce a new one, so transformation logic (filtering, mapping,
// windowing, joining) is written once and reused against any source and any
// sink. Sources are iter.Seq ranges; sinks are reducers or Appender
// containers.
//
// # Transducers
//
//   - Filter / FilterI: forward items matching a predicate
//   - Transform / TransformI: map items
//   - TransformMaybe / TransformMaybeI: fused filter and map
//   - Take / Drop: positional windows
//   - TakeWhile / DropWhile: predicate windows with a latch
//   - Stride: every n-th item
//   - Intersperse, Join, JoinSeq, JoinWith: delimiting and flattening
//   - Inspect / InspectI, Index: taps and position tagging
//
// New turns a stage function into a Transducer, so callers can add their own
// windows and taps that compose like the built-in ones.
//
// # Composition
//
// Compose, Compose3, Compose4 and Chain flatten their arguments into one
// ordered stage list. The first transducer listed is the outermost and sees
// raw input first.
//
// # Usage
//
//	t := xform.Compose(
//	    xform.Filter(func(x int) bool { return x%2 == 0 }),
//	    xform.Transform(strconv.Itoa),
//	)
//	out := xform.ToSlice(t, slices.Values([]int{1, 2, 3, 4}))
//	// out == []string{"2", "4"}
//
// Zipped inputs are reduced with Reduce2..4 / Transduce2..4; reduction stops
// as soon as the shortest range is exhausted.
//
// Reducers built by Apply hold unsynchronised per-stage state. Use each one
// for a single reduction on a single goroutine and call Apply again for the
// next pass.
package xform
