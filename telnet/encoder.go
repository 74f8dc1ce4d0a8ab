package telnet

import "fmt"

var singleByteCommandWire = map[FrameKind]byte{
	FrameNoOperation:      NOP,
	FrameDataMark:         DM,
	FrameBreak:            BRK,
	FrameInterruptProcess: IP,
	FrameAbortOutput:      AO,
	FrameAreYouThere:      AYT,
	FrameEraseCharacter:   EC,
	FrameEraseLine:        EL,
	FrameGoAhead:          GA,
}

// Encoder is pure and stateless: every call is independent of every
// other, so a single Encoder value may be shared across connections.
type Encoder struct{}

// NewEncoder returns a ready-to-use Encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// EncodedLen reports how many bytes Encode will append for f, so callers
// can pre-reserve capacity before encoding into a shared output buffer.
// The count is exact for every kind except Subnegotiate, where it is an
// upper bound that assumes every payload byte needs IAC doubling.
func EncodedLen(f Frame) int {
	switch f.Kind {
	case FrameData:
		if f.DataByte == IAC {
			return 2
		}
		return 1
	case FrameNoOperation, FrameDataMark, FrameBreak, FrameInterruptProcess,
		FrameAbortOutput, FrameAreYouThere, FrameEraseCharacter, FrameEraseLine, FrameGoAhead:
		return 2
	case FrameDo, FrameDont, FrameWill, FrameWont:
		return 3
	case FrameSubnegotiate:
		if f.Argument == nil {
			return 5
		}
		// Worst case: every payload byte is an IAC needing doubling.
		return 5 + 2*f.Argument.EncodedLen()
	default:
		return 0
	}
}

// Encode appends the wire representation of f to dst and returns the
// extended slice. On an encoding error dst is returned unmodified.
func (e *Encoder) Encode(f Frame, dst []byte) ([]byte, error) {
	switch f.Kind {
	case FrameData:
		if f.DataByte == IAC {
			return append(dst, IAC, IAC), nil
		}
		return append(dst, f.DataByte), nil

	case FrameNoOperation, FrameDataMark, FrameBreak, FrameInterruptProcess,
		FrameAbortOutput, FrameAreYouThere, FrameEraseCharacter, FrameEraseLine, FrameGoAhead:
		cmd, ok := singleByteCommandWire[f.Kind]
		if !ok {
			return dst, fmt.Errorf("%w: no wire byte for frame kind %d", ErrEncoding, f.Kind)
		}
		return append(dst, IAC, cmd), nil

	case FrameDo, FrameDont, FrameWill, FrameWont:
		return append(dst, IAC, f.Kind.opcode(), byte(f.Option)), nil

	case FrameSubnegotiate:
		if f.Argument == nil {
			return dst, fmt.Errorf("%w: Subnegotiate frame for %s has a nil argument", ErrEncoding, f.Option)
		}
		raw := f.Argument.Encode(make([]byte, 0, f.Argument.EncodedLen()))
		dst = append(dst, IAC, SB, byte(f.Option))
		dst = appendEscaped(dst, raw)
		dst = append(dst, IAC, SE)
		return dst, nil

	default:
		return dst, fmt.Errorf("%w: unknown frame kind %d", ErrEncoding, f.Kind)
	}
}

// appendEscaped appends raw to dst with every IAC byte doubled, as
// required both in the data stream and inside subnegotiation payloads.
func appendEscaped(dst []byte, raw []byte) []byte {
	for _, b := range raw {
		if b == IAC {
			dst = append(dst, IAC, IAC)
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}
