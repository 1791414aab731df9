package chain

import (
	"testing"

	"github.com/ib-77/outcome/pkg/trial"
)

func TestStartAndTrial_Success(t *testing.T) {
	t.Parallel()
	c := Start(trial.Success[int, string](5))

	out := c.Trial()
	if !out.IsSuccess() || trial.MustValue(out) != 5 {
		t.Fatalf("expected success with 5, got: success=%v", out.IsSuccess())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](7).Trial()
	if !out.IsSuccess() || trial.MustValue(out) != 7 {
		t.Fatalf("expected success with 7, got: success=%v", out.IsSuccess())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false

	c := Then(Start(trial.Fail[int]("boom")), func(v int) trial.Trial[int, string] {
		called = true
		return trial.Success[int, string](v + 1)
	})

	out := c.Trial()
	if out.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if called {
		t.Fatalf("onSuccess should not be called when the chain already failed")
	}
	reasons := trial.Finally(out,
		func(int) []string { return nil },
		func(rs []string) []string { return rs })
	if len(reasons) != 1 || reasons[0] != "boom" {
		t.Fatalf("expected reasons [boom], got %v", reasons)
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	c := Then(FromValue[int, string](3), func(v int) trial.Trial[int, string] {
		return trial.Success[int, string](v * 2)
	})

	out := c.Trial()
	if !out.IsSuccess() || trial.MustValue(out) != 6 {
		t.Fatalf("expected success with 6, got: success=%v", out.IsSuccess())
	}
}

func TestThenSame_MethodChaining(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](2).
		ThenSame(func(v int) trial.Trial[int, string] { return trial.Success[int, string](v + 1) }).
		ThenSame(func(v int) trial.Trial[int, string] { return trial.Success[int, string](v * 10) }).
		Trial()

	if !out.IsSuccess() || trial.MustValue(out) != 30 {
		t.Fatalf("expected success with 30, got: success=%v", out.IsSuccess())
	}
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()
	c := Map(FromValue[int, string](5), func(v int) string {
		if v > 0 {
			return "positive"
		}
		return "non-positive"
	})

	out := c.Trial()
	if !out.IsSuccess() || trial.MustValue(out) != "positive" {
		t.Fatalf("expected success with 'positive', got: success=%v", out.IsSuccess())
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()

	sCalled := false
	fCalled := false
	out1 := FromValue[int, string](11).
		Ensure(func(v int) { sCalled = true }, func(reasons []string) { fCalled = true }).
		Trial()
	if !out1.IsSuccess() {
		t.Fatalf("expected success, got failure")
	}
	if !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	sCalled = false
	var gotReasons []string
	out2 := Start(trial.FailAll[int]([]string{"a", "b"})).
		Ensure(func(v int) { sCalled = true }, func(reasons []string) { gotReasons = reasons }).
		Trial()
	if out2.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if sCalled || len(gotReasons) != 2 {
		t.Fatalf("expected failure side-effect with 2 reasons; sCalled=%v, reasons=%v", sCalled, gotReasons)
	}

	// nil callbacks should be safe
	out3 := FromValue[int, string](1).Ensure(nil, nil).Trial()
	if !out3.IsSuccess() || trial.MustValue(out3) != 1 {
		t.Fatalf("expected unchanged success result")
	}
}

func TestFinally_SuccessAndFailure(t *testing.T) {
	t.Parallel()

	s := Finally(FromValue[int, string](3),
		func(v int) int { return v + 100 },
		func(reasons []string) int { return -1 })
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Finally(Start(trial.Fail[int]("x")),
		func(v int) int { return v },
		func(reasons []string) int { return -1 })
	if f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}
