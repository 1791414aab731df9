// Package chain provides a fluent wrapper around trial.Trial for building
// synchronous pipelines without branching on the outcome at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Trial or a plain value
// - Then: switch to a new Trial[U, R] via a function (top-level, since
//   methods cannot introduce type parameters)
// - ThenSame: method form of Then for steps that keep the value type
// - Map: transform the success value (T -> U)
// - Ensure: run side effects for either outcome without changing the result
// - Finally: collapse the chain into a final value via handlers
// - Trial: unwrap the underlying trial.Trial
package chain
