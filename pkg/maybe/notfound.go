package maybe

// NotFoundError is the panic payload of the MustValue extractors here and in
// package trial. It marks a broken extraction precondition and is a named
// kind so callers can tell it apart from any reason value a failure carries.
type NotFoundError struct {
	Op string
}

func (e NotFoundError) Error() string {
	return e.Op + ": value not found"
}
