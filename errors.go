package derivx

import "errors"

var (
	// ErrUnsupportedType reports a value that Regexify cannot interpret as
	// a symbol, a symbol sequence, or an existing expression.
	ErrUnsupportedType = errors.New("unsupported operand type")

	// ErrAlphabetMismatch reports an attempt to combine text-domain and
	// binary-domain expressions in a single value.
	ErrAlphabetMismatch = errors.New("alphabet mismatch")

	// ErrRepeatCount reports a negative repetition count passed to Repeat.
	ErrRepeatCount = errors.New("negative repeat count")
)
