package trial

import (
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/pkg/maybe"
)

// Trial holds either a success value of type T or an ordered slice of
// failure reasons of type R. Reasons are opaque to this package: error
// codes, messages, or errors-as-values are all fine.
//
// Values are canonical by construction: a single reason and a one-element
// reason list are the same stored shape, and an empty reason slice is kept
// nil, so structural equality holds regardless of the construction route.
// The zero value is Success of the zero T. Instances are immutable.
type Trial[T, R any] struct {
	value   T
	reasons []R
	failed  bool
}

func Success[T, R any](v T) Trial[T, R] {
	return Trial[T, R]{value: v}
}

func Fail[T, R any](reason R) Trial[T, R] {
	return Trial[T, R]{reasons: []R{reason}, failed: true}
}

// FailAll builds a failure from any number of reasons. An empty slice is a
// valid, reason-less failure.
func FailAll[T, R any](reasons []R) Trial[T, R] {
	if len(reasons) == 0 {
		return Trial[T, R]{failed: true}
	}
	rs := make([]R, len(reasons))
	copy(rs, reasons)
	return Trial[T, R]{reasons: rs, failed: true}
}

// Normalize coerces raw into canonical form: nil (or a typed nil pointer)
// becomes Fail(absentReason), an existing Trial passes through unchanged,
// a maybe.Maybe is bridged, and a bare T becomes Success. Feeding the output
// back in is a no-op. Any other dynamic type is a programming error at the
// call site and panics.
func Normalize[T, R any](raw any, absentReason R) Trial[T, R] {
	if isNil(raw) {
		return Fail[T, R](absentReason)
	}
	switch v := raw.(type) {
	case Trial[T, R]:
		return v
	case maybe.Maybe[T]:
		return FromMaybe(v, absentReason)
	case T:
		return Success[T, R](v)
	}
	panic(fmt.Sprintf("trial: cannot normalize value of type %T", raw))
}

// Match invokes exactly one of the two handlers. It is the only operation
// that inspects the outcome. The failure handler receives the reason slice:
// length 1 for a single-reason failure, possibly empty for an explicit
// reason-less one.
func Match[T, R, Out any](t Trial[T, R], onSuccess func(v T) Out, onFailure func(reasons []R) Out) Out {
	if t.failed {
		return onFailure(t.reasons)
	}
	return onSuccess(t.value)
}

func (t Trial[T, R]) IsSuccess() bool {
	return Match(t, func(T) bool { return true }, func([]R) bool { return false })
}

func (t Trial[T, R]) IsFailure() bool {
	return !t.IsSuccess()
}

// Switch composes a Trial-returning function onto the success track. A
// failure never invokes onSuccess; its reasons ride through verbatim.
func Switch[In, Out, R any](t Trial[In, R], onSuccess func(v In) Trial[Out, R]) Trial[Out, R] {
	return Match(t, onSuccess, FailAll[Out, R])
}

// Map composes a pure transformation onto the success track.
func Map[In, Out, R any](t Trial[In, R], onSuccess func(v In) Out) Trial[Out, R] {
	return Switch(t, func(v In) Trial[Out, R] { return Success[Out, R](onSuccess(v)) })
}

// MustValue returns the success value, panicking with maybe.NotFoundError on
// any failure. Same contract as maybe.MustValue: only for call sites that
// have already proven success.
func MustValue[T, R any](t Trial[T, R]) T {
	return Match(t, func(v T) T { return v }, func([]R) T {
		panic(maybe.NotFoundError{Op: "trial.MustValue"})
	})
}

func isNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
