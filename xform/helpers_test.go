package xform

import (
	"fmt"
	"slices"
	"testing"

	apperrors "github.com/kbukum/xduce/errors"
)

var sample = []int{2, 3, 5, 7, 9, 11, 12, 13, 14}

// delimit joins items into a string, separating them with sep.
func delimit[T any](sep string) Reducer[string, T] {
	return func(s string, item T) string {
		if s == "" {
			return fmt.Sprint(item)
		}
		return s + sep + fmt.Sprint(item)
	}
}

func assertEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func expectContractViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T", r)
		}
		if !apperrors.HasCode(err, apperrors.ErrCodeContractViolation) {
			t.Fatalf("expected contract violation, got %v", err)
		}
	}()
	fn()
}
