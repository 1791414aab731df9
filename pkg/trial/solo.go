package trial

// Validate keeps a success only if valid holds for its value, failing with
// reason otherwise. Failures pass through untouched.
func Validate[T, R any](t Trial[T, R], valid func(v T) bool, reason R) Trial[T, R] {
	return Switch(t, func(v T) Trial[T, R] {
		if valid(v) {
			return Success[T, R](v)
		}
		return Fail[T, R](reason)
	})
}

// Try lifts a conventional (value, error) function onto the success track,
// converting a non-nil error into a reason via wrap.
func Try[In, Out, R any](t Trial[In, R], onTry func(v In) (Out, error), wrap func(err error) R) Trial[Out, R] {
	return Switch(t, func(v In) Trial[Out, R] {
		out, err := onTry(v)
		if err != nil {
			return Fail[Out, R](wrap(err))
		}
		return Success[Out, R](out)
	})
}

// Tee runs a side effect on the success value and returns the input
// unchanged. Failures skip the side effect.
func Tee[T, R any](t Trial[T, R], onSuccess func(v T)) Trial[T, R] {
	return Match(t, func(v T) Trial[T, R] {
		onSuccess(v)
		return t
	}, func([]R) Trial[T, R] { return t })
}

// Finally collapses the trial into a plain value via the two handlers.
func Finally[T, R, Out any](t Trial[T, R], onSuccess func(v T) Out, onFailure func(reasons []R) Out) Out {
	return Match(t, onSuccess, onFailure)
}
