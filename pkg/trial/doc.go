// Package trial provides a generic success-or-failure container where a
// failure carries one or more opaque, caller-defined reasons. It is the
// error-aware counterpart of package maybe, with conversion both ways.
//
// Highlights:
// - Success/Fail/FailAll: construct a Trial in canonical form
// - Normalize: coerce a raw value (nil, an existing Trial, a Maybe, or a
//   bare payload) into the canonical two-outcome shape
// - Match: exhaustive two-handler case split, the only point that inspects
//   the outcome; the failure handler always receives the reason slice
// - Switch/Map: compose Trial-returning or pure functions; failures
//   short-circuit with their reasons untouched
// - Validate/Try/Tee/Finally: validation, error-lifting, side effects and
//   terminal collapse in the style of classic railway pipelines
// - MustValue: extract the value or panic with maybe.NotFoundError
// - FromMaybe/ToMaybe: bridge to and from package maybe
package trial
