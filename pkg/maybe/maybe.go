package maybe

// Maybe holds either a payload (Just) or nothing at all. The zero value is
// Nothing. Instances are immutable; combinators build new ones.
type Maybe[T any] struct {
	value T
	just  bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, just: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Match invokes exactly one of the two handlers. It is the only operation
// that inspects the variant; everything else in the package goes through it.
func Match[T, Out any](m Maybe[T], onJust func(v T) Out, onNothing func() Out) Out {
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}

func (m Maybe[T]) IsJust() bool {
	return Match(m, func(T) bool { return true }, func() bool { return false })
}

func (m Maybe[T]) IsNothing() bool {
	return !m.IsJust()
}

// wrapped lets shape checks and FlattenAll see through the payload type
// without knowing it statically.
type wrapped interface {
	payload() (any, bool)
}

func (m Maybe[T]) payload() (any, bool) {
	return m.value, m.just
}

// IsMaybe reports whether v is a Maybe of any payload type.
func IsMaybe(v any) bool {
	_, ok := v.(wrapped)
	return ok
}

// AndThen applies f to the payload and returns f's result as-is; f decides
// whether the outcome is present. Nothing passes through untouched.
func AndThen[T, U any](m Maybe[T], f func(v T) Maybe[U]) Maybe[U] {
	return Match(m, f, Nothing[U])
}

// Map applies f to the payload and rewraps the result as Just.
func Map[T, U any](m Maybe[T], f func(v T) U) Maybe[U] {
	return Match(m, func(v T) Maybe[U] { return Just(f(v)) }, Nothing[U])
}

// Exists reports whether a payload is present and satisfies p.
func Exists[T any](m Maybe[T], p func(v T) bool) bool {
	return Match(m, p, func() bool { return false })
}

// Filter keeps the payload only if p holds for it.
func Filter[T any](m Maybe[T], p func(v T) bool) Maybe[T] {
	return Match(m, func(v T) Maybe[T] {
		if p(v) {
			return Just(v)
		}
		return Nothing[T]()
	}, Nothing[T])
}

// Fold reduces the payload onto initial; Nothing returns initial unchanged.
func Fold[T, Acc any](m Maybe[T], f func(acc Acc, v T) Acc, initial Acc) Acc {
	return Match(m, func(v T) Acc { return f(initial, v) }, func() Acc { return initial })
}

func Count[T any](m Maybe[T]) int {
	return Match(m, func(T) int { return 1 }, func() int { return 0 })
}

// Flatten removes exactly one level of nesting. A payload nested deeper than
// two levels keeps its remaining wrappers; see FlattenAll for the full strip.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	return Match(m, func(inner Maybe[T]) Maybe[T] { return inner }, Nothing[T])
}

// FlattenAll strips nested wrappers until the payload is no longer a Maybe.
// A Nothing at any depth short-circuits the whole thing to Nothing.
func FlattenAll[T any](m Maybe[T]) Maybe[any] {
	return Match(m, func(v T) Maybe[any] {
		cur := any(v)
		for {
			w, ok := cur.(wrapped)
			if !ok {
				return Just(cur)
			}
			inner, just := w.payload()
			if !just {
				return Nothing[any]()
			}
			cur = inner
		}
	}, Nothing[any])
}

// MustValue returns the payload, panicking with NotFoundError on Nothing.
// It is meant for call sites that have already established presence; the
// panic marks that assumption as broken, not an ordinary absent outcome.
func MustValue[T any](m Maybe[T]) T {
	return Match(m, func(v T) T { return v }, func() T {
		panic(NotFoundError{Op: "maybe.MustValue"})
	})
}

// WithDefault returns the payload or def when absent.
func WithDefault[T any](m Maybe[T], def T) T {
	return Match(m, func(v T) T { return v }, func() T { return def })
}

// FromPtr lifts a possibly-nil pointer into a Maybe of its pointee.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}
