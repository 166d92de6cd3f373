package flow

import (
	"testing"

	"github.com/ib-77/maybe3/pkg/maybe"
)

func TestStartAndMaybe(t *testing.T) {
	t.Parallel()
	c := Start(maybe.Just(5))
	if m := c.Maybe(); !m.IsJust() || m.Value() != 5 {
		t.Fatalf("expected Just(5), got: %v", m)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	c := FromValue(7)
	if m := c.Maybe(); !m.IsJust() || m.Value() != 7 {
		t.Fatalf("expected Just(7), got: %v", m)
	}
}

func TestThen_ShortCircuitOnNothing(t *testing.T) {
	t.Parallel()
	called := false
	c := Start(maybe.Nothing[int]()).Then(func(v int) maybe.Maybe[int] {
		called = true
		return maybe.Just(v + 1)
	})

	if !c.Maybe().IsNothing() {
		t.Fatalf("expected Nothing, got: %v", c.Maybe())
	}
	if called {
		t.Fatalf("onJust should not be called when chain is Nothing")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	c := FromValue(3).
		Then(func(v int) maybe.Maybe[int] { return maybe.Just(v * 2) })

	if m := c.Maybe(); !m.IsJust() || m.Value() != 6 {
		t.Fatalf("expected Just(6), got: %v", m)
	}
}

func TestMapAndWhere(t *testing.T) {
	t.Parallel()
	c := FromValue(3).
		Map(func(v int) int { return v + 2 }).
		Where(func(v int) bool { return v == 5 })

	if m := c.Maybe(); !m.IsJust() || m.Value() != 5 {
		t.Fatalf("expected Just(5), got: %v", m)
	}

	c = c.Where(func(v int) bool { return v == 4 })
	if !c.Maybe().IsNothing() {
		t.Fatalf("rejecting predicate should drop the value, got: %v", c.Maybe())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	var seen []int
	c := FromValue(5).Ensure(func(v int) { seen = append(seen, v) })
	if m := c.Maybe(); !m.IsJust() || m.Value() != 5 {
		t.Fatalf("Ensure should not change the chain, got: %v", m)
	}
	if len(seen) != 1 || seen[0] != 5 {
		t.Fatalf("expected side effect with 5, got: %v", seen)
	}

	Start(maybe.Nothing[int]()).Ensure(func(v int) { seen = append(seen, v) })
	if len(seen) != 1 {
		t.Fatalf("Ensure should not fire on Nothing, got: %v", seen)
	}
}

func TestEnsure_NilCallbackPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("Ensure with nil callback should panic")
		}
	}()
	_ = FromValue(1).Ensure(nil)
}

func TestOr(t *testing.T) {
	t.Parallel()
	first := FromValue(1)
	second := FromValue(2)
	none := Start(maybe.Nothing[int]())

	if got := first.Or(second).Maybe(); got.Value() != 1 {
		t.Fatalf("occupied receiver should win, got: %v", got)
	}
	if got := none.Or(second).Maybe(); got.Value() != 2 {
		t.Fatalf("first occupied alternative should win, got: %v", got)
	}
	if got := none.Or(Start(maybe.Nothing[int]())).Maybe(); !got.IsNothing() {
		t.Fatalf("all-Nothing should stay Nothing, got: %v", got)
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()
	first := FromValue(1)
	second := FromValue(2)
	none := Start(maybe.Nothing[int]())

	if got := first.And(second).Maybe(); got.Value() != 2 {
		t.Fatalf("all-occupied should keep the last chain, got: %v", got)
	}
	if got := first.And(none, second).Maybe(); !got.IsNothing() {
		t.Fatalf("any Nothing should win, got: %v", got)
	}
	if got := none.And(second).Maybe(); !got.IsNothing() {
		t.Fatalf("Nothing receiver should win, got: %v", got)
	}
}

func TestValueOr(t *testing.T) {
	t.Parallel()
	if got := FromValue(5).ValueOr(7); got != 5 {
		t.Fatalf("expected 5, got: %v", got)
	}
	if got := Start(maybe.Nothing[int]()).ValueOr(7); got != 7 {
		t.Fatalf("expected fallback 7, got: %v", got)
	}
}

func TestTypeSwitchingThenAndMap(t *testing.T) {
	t.Parallel()
	c := Then(FromValue(5), func(v int) maybe.Maybe[string] {
		if v > 0 {
			return maybe.Just("positive")
		}
		return maybe.Nothing[string]()
	})
	if m := c.Maybe(); !m.IsJust() || m.Value() != "positive" {
		t.Fatalf("expected Just(positive), got: %v", m)
	}

	lengths := Map(c, func(s string) int { return len(s) })
	if m := lengths.Maybe(); !m.IsJust() || m.Value() != 8 {
		t.Fatalf("expected Just(8), got: %v", m)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	onJust := func(v int) string { return "got" }
	onNothing := func() string { return "missed" }

	if got := Finally(FromValue(1), onJust, onNothing); got != "got" {
		t.Fatalf("expected 'got', got: %q", got)
	}
	if got := Finally(Start(maybe.Nothing[int]()), onJust, onNothing); got != "missed" {
		t.Fatalf("expected 'missed', got: %q", got)
	}
}

func TestFinally_HandlersAreLazy(t *testing.T) {
	t.Parallel()
	calls := 0
	_ = Finally(FromValue(1),
		func(v int) int { return v },
		func() int {
			calls++
			return -1
		})
	if calls != 0 {
		t.Fatalf("onNothing should not run for an occupied chain, calls=%d", calls)
	}
}
