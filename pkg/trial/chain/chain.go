package chain

import "github.com/ib-77/outcome/pkg/trial"

// Chain wraps a trial.Trial to enable fluent chaining.
type Chain[T, R any] struct {
	res trial.Trial[T, R]
}

// Start creates a new chain from a trial.Trial.
func Start[T, R any](t trial.Trial[T, R]) Chain[T, R] {
	return Chain[T, R]{res: t}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, R any](v T) Chain[T, R] {
	return Chain[T, R]{res: trial.Success[T, R](v)}
}

// Trial returns the underlying trial.Trial.
func (c Chain[T, R]) Trial() trial.Trial[T, R] {
	return c.res
}

// Then chains a function that returns trial.Trial[U, R].
func Then[T, U, R any](c Chain[T, R], onSuccess func(v T) trial.Trial[U, R]) Chain[U, R] {
	return Chain[U, R]{res: trial.Switch(c.res, onSuccess)}
}

// ThenSame chains a function that keeps the value type, allowing the
// method-call form.
func (c Chain[T, R]) ThenSame(onSuccess func(v T) trial.Trial[T, R]) Chain[T, R] {
	return Chain[T, R]{res: trial.Switch(c.res, onSuccess)}
}

// Map chains a pure transformation function.
func Map[T, U, R any](c Chain[T, R], onSuccess func(v T) U) Chain[U, R] {
	return Chain[U, R]{res: trial.Map(c.res, onSuccess)}
}

// Ensure performs side effects without changing the result. Nil handlers
// are skipped.
func (c Chain[T, R]) Ensure(onSuccess func(v T), onFailure func(reasons []R)) Chain[T, R] {
	return trial.Match(c.res, func(v T) Chain[T, R] {
		if onSuccess != nil {
			onSuccess(v)
		}
		return c
	}, func(reasons []R) Chain[T, R] {
		if onFailure != nil {
			onFailure(reasons)
		}
		return c
	})
}

// Finally collapses the chain into a final value via trial.Finally.
func Finally[T, R, Out any](c Chain[T, R], onSuccess func(v T) Out, onFailure func(reasons []R) Out) Out {
	return trial.Finally(c.res, onSuccess, onFailure)
}
