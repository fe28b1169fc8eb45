package gtpv2

import "fmt"

// ErrIncorrectMessageType is returned when a header's message type
// doesn't match the decoder it was handed to.
type ErrIncorrectMessageType struct {
	Got, Want uint8
}

func (e *ErrIncorrectMessageType) Error() string {
	return fmt.Sprintf("gtpv2: incorrect message type: got %d, want %d", e.Got, e.Want)
}

// ErrInvalidMessageFormat covers a truncated buffer or a child IE
// decoder error surfaced while walking the stream.
type ErrInvalidMessageFormat struct {
	Reason string
}

func (e *ErrInvalidMessageFormat) Error() string {
	return "gtpv2: invalid message format: " + e.Reason
}

// ErrMandatoryIEMissing names the first mandatory slot left unfilled
// after dispatch.
type ErrMandatoryIEMissing struct {
	Type uint8
}

func (e *ErrMandatoryIEMissing) Error() string {
	return fmt.Sprintf("gtpv2: mandatory information element missing: type %d", e.Type)
}
