package telnet

import "fmt"

type decoderState byte

const (
	stateNormalData decoderState = iota
	stateInterpretAsCommand
	stateNegotiateDo
	stateNegotiateDont
	stateNegotiateWill
	stateNegotiateWont
	stateSubnegotiate
	stateSubnegotiateArgument
	stateSubnegotiateArgumentIAC
)

var negotiationOpcodeForState = map[decoderState]byte{
	stateNegotiateDo:   DO,
	stateNegotiateDont: DONT,
	stateNegotiateWill: WILL,
	stateNegotiateWont: WONT,
}

// Decoder is the byte-driven frame decoder. It holds only transient
// parsing state between calls and is resumable at arbitrary byte
// boundaries: feeding it the same stream split at any point yields the
// same frame sequence as feeding it whole.
type Decoder struct {
	state   decoderState
	subOpt  OptionCode
	payload *byteBuffer

	// OnWarning, if set, is called for the two cases the decoder
	// self-heals instead of failing: an unrecognized command byte and a
	// malformed subnegotiation terminator. Both are converted to a
	// NoOperation frame regardless of whether a hook is set.
	OnWarning func(error)
}

// NewDecoder returns a Decoder positioned at NormalData with a fresh
// subnegotiation scratch buffer.
func NewDecoder() *Decoder {
	return &Decoder{state: stateNormalData, payload: newByteBuffer()}
}

func (d *Decoder) warn(err error) {
	if d.OnWarning != nil {
		d.OnWarning(err)
	}
}

// Decode consumes bytes from input one at a time until a complete frame
// is available or the input runs out. It returns the frame, the number
// of input bytes consumed, and whether a frame was produced. On a false
// result, all of input was consumed and the decoder has retained
// whatever partial frame state it built up — the caller should supply
// more bytes in a later call.
func (d *Decoder) Decode(input []byte) (Frame, int, bool) {
	for i, b := range input {
		if frame, ok := d.step(b); ok {
			return frame, i + 1, true
		}
	}
	return Frame{}, len(input), false
}

func (d *Decoder) step(b byte) (Frame, bool) {
	switch d.state {
	case stateNormalData:
		return d.stepNormalData(b)
	case stateInterpretAsCommand:
		return d.stepInterpretAsCommand(b)
	case stateNegotiateDo, stateNegotiateDont, stateNegotiateWill, stateNegotiateWont:
		return d.stepNegotiate(b)
	case stateSubnegotiate:
		return d.stepSubnegotiate(b)
	case stateSubnegotiateArgument:
		return d.stepSubnegotiateArgument(b)
	case stateSubnegotiateArgumentIAC:
		return d.stepSubnegotiateArgumentIAC(b)
	default:
		d.state = stateNormalData
		return Frame{}, false
	}
}

func (d *Decoder) stepNormalData(b byte) (Frame, bool) {
	if b == IAC {
		d.state = stateInterpretAsCommand
		return Frame{}, false
	}
	return DataFrame(b), true
}

func (d *Decoder) stepInterpretAsCommand(b byte) (Frame, bool) {
	if kind, ok := singleByteCommands[b]; ok {
		d.state = stateNormalData
		return Frame{Kind: kind}, true
	}

	switch b {
	case IAC:
		d.state = stateNormalData
		return DataFrame(0xFF), true
	case DO:
		d.state = stateNegotiateDo
	case DONT:
		d.state = stateNegotiateDont
	case WILL:
		d.state = stateNegotiateWill
	case WONT:
		d.state = stateNegotiateWont
	case SB:
		d.state = stateSubnegotiate
	default:
		d.state = stateNormalData
		d.warn(fmt.Errorf("%w: %d", ErrUnknownCommand, b))
		return Frame{Kind: FrameNoOperation}, true
	}
	return Frame{}, false
}

func (d *Decoder) stepNegotiate(b byte) (Frame, bool) {
	opcode := negotiationOpcodeForState[d.state]
	d.state = stateNormalData
	return NegotiationFrame(opcode, OptionCode(b)), true
}

func (d *Decoder) stepSubnegotiate(b byte) (Frame, bool) {
	d.subOpt = OptionCode(b)
	d.payload.Reset()
	d.state = stateSubnegotiateArgument
	return Frame{}, false
}

func (d *Decoder) stepSubnegotiateArgument(b byte) (Frame, bool) {
	if b == IAC {
		d.state = stateSubnegotiateArgumentIAC
		return Frame{}, false
	}
	d.payload.Append(b)
	return Frame{}, false
}

func (d *Decoder) stepSubnegotiateArgumentIAC(b byte) (Frame, bool) {
	switch b {
	case IAC:
		d.payload.Append(0xFF)
		d.state = stateSubnegotiateArgument
		return Frame{}, false
	case SE:
		d.state = stateNormalData
		payload := d.payload.Take()
		arg := decodeArgument(d.subOpt, payload)
		return Frame{Kind: FrameSubnegotiate, Option: d.subOpt, Argument: arg}, true
	default:
		d.state = stateNormalData
		d.payload.Reset()
		d.warn(fmt.Errorf("%w: IAC %d inside subnegotiation payload", ErrMalformedSubnegotiation, b))
		return Frame{Kind: FrameNoOperation}, true
	}
}
