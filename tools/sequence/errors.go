package sequence

import "errors"

// Error taxonomy shared by every tool. Callers test with errors.Is;
// an empty result is never reported through an error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownKey   = errors.New("unknown key")
)
