package xform

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func isEven(x int) bool { return x%2 == 0 }

func TestCanonicalTransducers(t *testing.T) {
	tests := []struct {
		name string
		t    Transducer[int, int]
		want []int
	}{
		{"filter", Filter(isEven), []int{2, 12, 14}},
		{"filter_i", FilterI(func(i, x int) bool { return i%3 == 0 && x < 10 }), []int{2, 7}},
		{"take", Take[int](3), []int{2, 3, 5}},
		{"take more than available", Take[int](100), sample},
		{"take zero", Take[int](0), nil},
		{"take negative", Take[int](-1), nil},
		{"drop", Drop[int](3), []int{7, 9, 11, 12, 13, 14}},
		{"drop everything", Drop[int](100), nil},
		{"stride", Stride[int](3), []int{2, 7, 12}},
		{"stride one", Stride[int](1), sample},
		{"take_while", TakeWhile(func(x int) bool { return x < 10 }), []int{2, 3, 5, 7, 9}},
		{"drop_while", DropWhile(func(x int) bool { return x < 10 }), []int{11, 12, 13, 14}},
		{"transform", Transform(func(x int) int { return x * 10 }), []int{20, 30, 50, 70, 90, 110, 120, 130, 140}},
		{"transform_i", TransformI(func(i, x int) int { return i }), []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertEqual(t, ToSlice(tc.t, slices.Values(sample)), tc.want)
		})
	}
}

func TestFilter_SumOfEvens(t *testing.T) {
	if got := Transduce(0, Filter(isEven), Sum[int](), slices.Values(sample)); got != 28 {
		t.Errorf("got %d, want 28", got)
	}
}

func TestTakeWhile_LatchesOnFirstFailure(t *testing.T) {
	got := ToSlice(TakeWhile(func(x int) bool { return x < 5 }), slices.Values([]int{1, 2, 9, 3, 4}))
	assertEqual(t, got, []int{1, 2})
}

func TestDropWhile_ForwardsFailingItemAndRest(t *testing.T) {
	calls := 0
	pred := func(x int) bool { calls++; return x < 5 }
	got := ToSlice(DropWhile(pred), slices.Values([]int{1, 2, 9, 3, 4}))
	assertEqual(t, got, []int{9, 3, 4})
	if calls != 3 {
		t.Errorf("predicate should stop being called after the latch, got %d calls", calls)
	}
}

func TestTake_ConsumesWholeRange(t *testing.T) {
	pulled := 0
	in := func(yield func(int) bool) {
		for _, x := range sample {
			pulled++
			if !yield(x) {
				return
			}
		}
	}
	got := ToSlice(Take[int](2), in)
	assertEqual(t, got, []int{2, 3})
	if pulled != len(sample) {
		t.Errorf("engine should keep pulling, got %d of %d", pulled, len(sample))
	}
}

func TestStride_InvalidStep(t *testing.T) {
	expectContractViolation(t, func() { Stride[int](0) })
	expectContractViolation(t, func() { Stride[int](-2) })
}

func TestApply_ZeroTransducer(t *testing.T) {
	expectContractViolation(t, func() {
		var zero Transducer[int, int]
		Apply(zero, Sum[int]())
	})
	expectContractViolation(t, func() {
		var zero Transducer[int, int]
		Compose(Take[int](1), zero)
	})
}

func TestTransformMaybe(t *testing.T) {
	evens := TransformMaybe(func(x int) (string, bool) {
		if x%2 != 0 {
			return "", false
		}
		return strconv.Itoa(x), true
	})
	assertEqual(t, ToSlice(evens, slices.Values([]int{1, 2, 3, 4, 5, 6})), []string{"2", "4", "6"})

	evenPositions := TransformMaybeI(func(i, x int) (string, bool) {
		if i%2 != 0 {
			return "", false
		}
		return strconv.Itoa(x), true
	})
	assertEqual(t, ToSlice(evenPositions, slices.Values([]int{1, 2, 3, 4, 5, 6})), []string{"1", "3", "5"})
}

func TestIntersperse(t *testing.T) {
	got := ToSlice(Intersperse(-1), slices.Values([]int{2, 4, 6, 8}))
	assertEqual(t, got, []int{2, -1, 4, -1, 6, -1, 8})

	assertEqual(t, ToSlice(Intersperse(-1), slices.Values([]int{7})), []int{7})
}

func TestJoin(t *testing.T) {
	words := slices.Values([]string{"Alpha", "Beta", "Gamma"})
	toRunes := Transform(func(s string) []rune { return []rune(s) })

	out := Copy(&StringSink{}, Compose(toRunes, Join[[]rune]()), words)
	if out.String() != "AlphaBetaGamma" {
		t.Errorf("join: got %q", out.String())
	}

	out = Copy(&StringSink{}, Compose(toRunes, JoinWith([]rune(", "))), words)
	if out.String() != "Alpha, Beta, Gamma" {
		t.Errorf("join_with: got %q", out.String())
	}

	groups := slices.Values([][]int{{1, 2}, {}, {3}})
	assertEqual(t, ToSlice(Join[[]int](), groups), []int{1, 2, 3})
	assertEqual(t, ToSlice(JoinWith([]int{0}), groups), []int{1, 2, 0, 0, 3})

	seqs := Transform(func(s string) iter.Seq[string] { return strings.SplitSeq(s, " ") })
	got := ToSlice(Compose(seqs, JoinSeq[string]()), slices.Values([]string{"a b", "c"}))
	assertEqual(t, got, []string{"a", "b", "c"})
}

func TestInspect(t *testing.T) {
	var b strings.Builder
	Reduce(0, Apply(Inspect(func(x int) { fmt.Fprintf(&b, "%d ", x) }), Discard[int, int]()), slices.Values([]int{1, 2, 3, 4, 5, 6}))
	if b.String() != "1 2 3 4 5 6 " {
		t.Errorf("inspect: got %q", b.String())
	}

	b.Reset()
	tap := InspectI(func(i, x int) {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d ... ", x)
		}
	})
	got := ToSlice(tap, slices.Values([]int{1, 2, 3, 4, 5, 6}))
	if b.String() != "1 ... 3 ... 5 ... " {
		t.Errorf("inspect_i: got %q", b.String())
	}
	assertEqual(t, got, []int{1, 2, 3, 4, 5, 6})
}

func TestIndex(t *testing.T) {
	got := ToSlice(Index[string](1), slices.Values([]string{"a", "b", "c"}))
	want := []Indexed[string]{{1, "a"}, {2, "b"}, {3, "c"}}
	assertEqual(t, got, want)
}

func TestCompose_Order(t *testing.T) {
	var order []string
	tag := func(name string) Transducer[int, int] {
		return Inspect(func(int) { order = append(order, name) })
	}
	ToSlice(Chain(tag("outer"), tag("middle"), tag("inner")), slices.Values([]int{1}))
	assertEqual(t, order, []string{"outer", "middle", "inner"})
}

func TestCompose_Pipeline(t *testing.T) {
	in := func(yield func(int) bool) {
		for i := 1; i < 20; i++ {
			if !yield(i) {
				return
			}
		}
	}
	xf := Compose4(
		Filter(isEven),
		Transform(strconv.Itoa),
		DropWhile(func(s string) bool { return len(s) < 2 }),
		Take[string](3),
	)
	assertEqual(t, ToSlice(xf, in), []string{"10", "12", "14"})

	if got := Transduce("", xf, delimit[string]("|"), in); got != "10|12|14" {
		t.Errorf("got %q, want 10|12|14", got)
	}

	tenfold := Compose4(
		Filter(isEven),
		Transform(func(x int) int { return x * 10 }),
		Transform(strconv.Itoa),
		Take[string](2),
	)
	if got := Transduce("", tenfold, delimit[string](", "), slices.Values([]int{2, 3, 4, 5, 6, 7})); got != "20, 40" {
		t.Errorf("got %q, want 20, 40", got)
	}

	summed := Compose3(
		Filter(isEven),
		Transform(func(x int) int { return x * 10 }),
		Take[int](2),
	)
	if got := Transduce(0, summed, Sum[int](), slices.Values([]int{2, 3, 4, 5, 6, 7})); got != 60 {
		t.Errorf("got %d, want 60", got)
	}
}

func TestCompose_Associative(t *testing.T) {
	a := Filter(isEven)
	b := Transform(func(x int) int { return x + 1 })
	c := Take[int](3)

	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	flat := Compose3(a, b, c)
	chained := a.Then(b).Then(c)

	for name, xf := range map[string]Transducer[int, int]{"left": left, "right": right, "flat": flat, "chained": chained} {
		if xf.Len() != 3 {
			t.Errorf("%s: expected 3 flattened stages, got %d", name, xf.Len())
		}
		assertEqual(t, ToSlice(xf, slices.Values(sample)), []int{3, 13, 15})
	}
}

func TestApply_FreshStatePerApplication(t *testing.T) {
	xf := Compose(Take[int](2), Intersperse(0))

	first := ToSlice(xf, slices.Values([]int{1, 2, 3}))
	second := ToSlice(xf, slices.Values([]int{4, 5, 6}))
	assertEqual(t, first, []int{1, 0, 2})
	assertEqual(t, second, []int{4, 0, 5})

	// A single applied reducer keeps its counters across calls.
	r := Apply(Take[int](1), Append[int]())
	s := r(nil, 1)
	s = r(s, 2)
	assertEqual(t, s, []int{1})
}

func TestApply_ThreadsCallerState(t *testing.T) {
	r := Apply(Intersperse(0), Append[int]())
	a := r([]int{9}, 1)
	b := r([]int{8}, 2)
	assertEqual(t, a, []int{9, 1})
	assertEqual(t, b, []int{8, 0, 2})
}
