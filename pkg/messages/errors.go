package messages

import "fmt"

// DecodeError is returned when an inbound frame cannot be decoded.
// The whole frame is discarded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode message: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when an outbound request cannot be serialized.
type EncodeError struct {
	Type string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s message: %v", e.Type, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func IsDecodeError(err error) bool {
	_, ok := err.(*DecodeError)
	return ok
}

func IsEncodeError(err error) bool {
	_, ok := err.(*EncodeError)
	return ok
}
