package trial

import "github.com/ib-77/outcome/pkg/maybe"

// FromMaybe converts presence to Success and absence to a single-reason
// failure carrying absentReason; there is no universal default reason, the
// caller supplies the agreed one.
func FromMaybe[T, R any](m maybe.Maybe[T], absentReason R) Trial[T, R] {
	return maybe.Match(m, Success[T, R], func() Trial[T, R] {
		return Fail[T, R](absentReason)
	})
}

// ToMaybe converts Success to Just and any failure to Nothing. Lossy: all
// carried reasons are discarded.
func ToMaybe[T, R any](t Trial[T, R]) maybe.Maybe[T] {
	return Match(t, maybe.Just[T], func([]R) maybe.Maybe[T] {
		return maybe.Nothing[T]()
	})
}
