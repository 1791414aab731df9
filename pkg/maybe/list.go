package maybe

// First returns the head of xs, or Nothing for an empty slice.
func First[T any](xs []T) Maybe[T] {
	if len(xs) == 0 {
		return Nothing[T]()
	}
	return Just(xs[0])
}

// Single returns the only element of xs; Nothing unless len(xs) is exactly 1.
func Single[T any](xs []T) Maybe[T] {
	if len(xs) != 1 {
		return Nothing[T]()
	}
	return Just(xs[0])
}
