package telnet

import (
	"errors"
	"fmt"
)

// ErrEncoding is wrapped by every error Encoder.Encode returns.
var ErrEncoding = errors.New("telnet: encoding error")

// ErrUnknownCommand reports an IAC-prefixed byte that names no
// recognized command. The decoder never surfaces this as an error to
// its caller — it converts the byte to a NoOperation frame and reports
// this value only through its OnWarning hook, if one is set (Terminal
// forwards that hook to EventHooks.EncounteredError).
var ErrUnknownCommand = errors.New("telnet: unknown command byte")

// ErrMalformedSubnegotiation reports a subnegotiation whose IAC escaping
// did not terminate correctly. Like ErrUnknownCommand, it never reaches
// the decoder's caller as a returned error.
var ErrMalformedSubnegotiation = errors.New("telnet: malformed subnegotiation")

// DecodingError reports malformed structure inside a subnegotiation
// argument (MSDP nesting, MSSP pairing, STATUS quadruples). Offset is
// relative to the start of the de-escaped payload the argument decoder
// was given, per the decoding contract.
type DecodingError struct {
	Offset int
	Msg    string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("telnet: decoding error at offset %d: %s", e.Offset, e.Msg)
}

func newDecodingError(offset int, format string, args ...any) *DecodingError {
	return &DecodingError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
