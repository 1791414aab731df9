// Package maybe provides a generic container for values that may be absent,
// replacing sentinel values and nil checks with a small combinator set.
//
// Every combinator is defined through one dispatch primitive, so variant
// handling lives in a single place:
// - Just/Nothing: construct a Maybe
// - Match: exhaustive two-handler case split, the only point that inspects
//   the variant
// - AndThen/Map: compose Maybe-returning or pure functions
// - Exists/Filter/Fold/Count: query and reduce the payload
// - Flatten: strip exactly one nested wrapper; FlattenAll: strip them all
// - MustValue: extract the payload or panic with NotFoundError
// - First/Single: convert a slice into a Maybe
// - WithDefault/FromPtr: ergonomic helpers for call sites on the edge
//
// For the failure-carrying counterpart and conversion in both directions,
// see package trial.
package maybe
