package telnet

import (
	"fmt"
	"io"
)

// TerminalOutputKind discriminates the inbound events a Terminal
// delivers to its caller. Negotiation frames (Do/Dont/Will/Wont) never
// appear here — they are consumed internally by the NegotiationManager
// and surfaced, if at all, as a TelOptStateChange hook invocation.
type TerminalOutputKind byte

const (
	OutputData TerminalOutputKind = iota
	OutputNoOperation
	OutputDataMark
	OutputBreak
	OutputInterruptProcess
	OutputAbortOutput
	OutputAreYouThere
	OutputEraseCharacter
	OutputEraseLine
	OutputGoAhead
	OutputSubnegotiate
)

var outputKindFromFrameKind = map[FrameKind]TerminalOutputKind{
	FrameNoOperation:      OutputNoOperation,
	FrameDataMark:         OutputDataMark,
	FrameBreak:            OutputBreak,
	FrameInterruptProcess: OutputInterruptProcess,
	FrameAbortOutput:      OutputAbortOutput,
	FrameAreYouThere:      OutputAreYouThere,
	FrameEraseCharacter:   OutputEraseCharacter,
	FrameEraseLine:        OutputEraseLine,
	FrameGoAhead:          OutputGoAhead,
}

// TerminalOutput is one event delivered from the remote peer. For
// OutputData, Bytes carries the raw bytes and Text carries them decoded
// through the terminal's current charset. For OutputSubnegotiate,
// Option and Argument carry the parsed payload.
type TerminalOutput struct {
	Kind     TerminalOutputKind
	Bytes    []byte
	Text     string
	Option   OptionCode
	Argument Argument
}

// TerminalInputKind discriminates the outbound commands a caller may
// send through a Terminal.
type TerminalInputKind byte

const (
	InputAsciiData TerminalInputKind = iota
	InputBinaryData
	InputNoOperation
	InputDataMark
	InputBreak
	InputInterruptProcess
	InputAbortOutput
	InputAreYouThere
	InputEraseCharacter
	InputEraseLine
	InputGoAhead
	InputSubnegotiate
	InputEnableLocalOption
	InputDisableLocalOption
	InputEnableRemoteOption
	InputDisableRemoteOption
)

// TerminalInput is one command a caller wants sent to the remote peer.
// AsciiData is encoded through the current charset before transmission;
// BinaryData bypasses charset translation entirely.
type TerminalInput struct {
	Kind     TerminalInputKind
	Text     string
	Bytes    []byte
	Option   OptionCode
	Argument Argument
}

var singleByteInputFrame = map[TerminalInputKind]FrameKind{
	InputNoOperation:      FrameNoOperation,
	InputDataMark:         FrameDataMark,
	InputBreak:            FrameBreak,
	InputInterruptProcess: FrameInterruptProcess,
	InputAbortOutput:      FrameAbortOutput,
	InputAreYouThere:      FrameAreYouThere,
	InputEraseCharacter:   FrameEraseCharacter,
	InputEraseLine:        FrameEraseLine,
	InputGoAhead:          FrameGoAhead,
}

// Terminal owns one Decoder, one Encoder, and one NegotiationManager
// for a single connection, translating between the frame-level codec
// and the higher-level TerminalInput/TerminalOutput vocabulary.
type Terminal struct {
	r io.Reader
	w io.Writer

	decoder     *Decoder
	encoder     *Encoder
	negotiation *NegotiationManager
	charset     *Charset

	config TerminalConfig

	// outBuf is the connection's encoder scratch buffer, the second of
	// the connection's two growable scratch buffers; the decoder's own
	// subnegotiation buffer is the first.
	outBuf *byteBuffer
}

// NewTerminal constructs a Terminal over r/w, applies every TelOptSetting
// in cfg, and fires the outbound WILL/DO frames those settings request.
func NewTerminal(r io.Reader, w io.Writer, cfg TerminalConfig) (*Terminal, error) {
	charsetName := cfg.DefaultCharsetName
	if charsetName == "" {
		charsetName = "US-ASCII"
	}

	charset, err := NewCharset(charsetName, cfg.CharsetUsage)
	if err != nil {
		return nil, fmt.Errorf("telnet: building charset: %w", err)
	}

	t := &Terminal{
		r:           r,
		w:           w,
		decoder:     NewDecoder(),
		encoder:     NewEncoder(),
		negotiation: NewNegotiationManager(),
		charset:     charset,
		config:      cfg,
		outBuf:      newByteBuffer(),
	}
	t.decoder.OnWarning = t.reportError

	for _, setting := range cfg.TelOpts {
		if !setting.AllowLocal {
			t.negotiation.Disallow(SideLocal, setting.Option)
		}
		if !setting.AllowRemote {
			t.negotiation.Disallow(SideRemote, setting.Option)
		}
		if setting.RequestLocal {
			if frame, ok := t.negotiation.RequestEnable(SideLocal, setting.Option); ok {
				if err := t.writeFrame(frame); err != nil {
					return nil, err
				}
			}
		}
		if setting.RequestRemote {
			if frame, ok := t.negotiation.RequestEnable(SideRemote, setting.Option); ok {
				if err := t.writeFrame(frame); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// Feed decodes data through the connection's Decoder, driving
// negotiation internally and returning the TerminalOutput events the
// caller should see. Consecutive Data frames are coalesced into a
// single OutputData event.
func (t *Terminal) Feed(data []byte) []TerminalOutput {
	var outputs []TerminalOutput
	var pending []byte

	flush := func() {
		if len(pending) == 0 {
			return
		}
		text, err := t.charset.Decode(pending)
		if err != nil {
			t.reportError(fmt.Errorf("telnet: decoding incoming text: %w", err))
		}
		outputs = t.emit(outputs, TerminalOutput{Kind: OutputData, Bytes: pending, Text: text})
		pending = nil
	}

	for len(data) > 0 {
		frame, n, ok := t.decoder.Decode(data)
		data = data[n:]
		if !ok {
			break
		}

		switch frame.Kind {
		case FrameData:
			pending = append(pending, frame.DataByte)

		case FrameDo, FrameDont, FrameWill, FrameWont:
			flush()
			t.handleNegotiation(frame)

		case FrameSubnegotiate:
			flush()
			if t.negotiation.LocalState(frame.Option) != StateYes {
				t.reportError(fmt.Errorf("telnet: discarding subnegotiation for inactive option %s", frame.Option))
				continue
			}
			outputs = t.emit(outputs, TerminalOutput{Kind: OutputSubnegotiate, Option: frame.Option, Argument: frame.Argument})

		default:
			flush()
			if kind, ok := outputKindFromFrameKind[frame.Kind]; ok {
				outputs = t.emit(outputs, TerminalOutput{Kind: kind})
			}
		}
	}

	flush()
	return outputs
}

func (t *Terminal) emit(outputs []TerminalOutput, out TerminalOutput) []TerminalOutput {
	if hook := t.config.EventHooks.IncomingOutput; hook != nil {
		hook(t, out)
	}
	return append(outputs, out)
}

func (t *Terminal) handleNegotiation(frame Frame) {
	oldLocal := t.negotiation.LocalState(frame.Option)
	oldRemote := t.negotiation.RemoteState(frame.Option)

	if reply, ok := t.negotiation.OnFrame(frame); ok {
		_ = t.writeFrame(reply)
	}

	t.reportStateChange(frame.Option, SideLocal, oldLocal)
	t.reportStateChange(frame.Option, SideRemote, oldRemote)

	if frame.Option == OptionTransmitBinary {
		t.charset.SetBinaryMode(SideLocal, t.negotiation.LocalState(OptionTransmitBinary) == StateYes)
		t.charset.SetBinaryMode(SideRemote, t.negotiation.RemoteState(OptionTransmitBinary) == StateYes)
	}
}

func (t *Terminal) reportStateChange(opt OptionCode, side Side, old NegotiationState) {
	var current NegotiationState
	if side == SideLocal {
		current = t.negotiation.LocalState(opt)
	} else {
		current = t.negotiation.RemoteState(opt)
	}
	if current == old {
		return
	}
	if hook := t.config.EventHooks.TelOptStateChange; hook != nil {
		hook(t, TelOptStateChangeData{Option: opt, Side: side, OldState: old, NewState: current})
	}
}

// Send encodes input and writes it to the underlying writer.
func (t *Terminal) Send(input TerminalInput) error {
	switch input.Kind {
	case InputAsciiData:
		encoded, err := t.charset.Encode(input.Text)
		if err != nil {
			t.reportError(err)
			return err
		}
		return t.writeDataBytes(encoded)

	case InputBinaryData:
		return t.writeDataBytes(input.Bytes)

	case InputSubnegotiate:
		return t.writeFrame(Frame{Kind: FrameSubnegotiate, Option: input.Option, Argument: input.Argument})

	case InputEnableLocalOption:
		return t.sendIntent(t.negotiation.RequestEnable(SideLocal, input.Option))
	case InputDisableLocalOption:
		return t.sendIntent(t.negotiation.RequestDisable(SideLocal, input.Option))
	case InputEnableRemoteOption:
		return t.sendIntent(t.negotiation.RequestEnable(SideRemote, input.Option))
	case InputDisableRemoteOption:
		return t.sendIntent(t.negotiation.RequestDisable(SideRemote, input.Option))

	default:
		if kind, ok := singleByteInputFrame[input.Kind]; ok {
			return t.writeFrame(Frame{Kind: kind})
		}
		err := fmt.Errorf("%w: unknown TerminalInput kind %d", ErrEncoding, input.Kind)
		t.reportError(err)
		return err
	}
}

func (t *Terminal) sendIntent(frame Frame, ok bool) error {
	if !ok {
		return nil
	}
	return t.writeFrame(frame)
}

func (t *Terminal) writeDataBytes(data []byte) error {
	t.outBuf.Reset()
	var err error
	for _, b := range data {
		if t.outBuf.data, err = t.encoder.Encode(DataFrame(b), t.outBuf.data); err != nil {
			t.reportError(err)
			return err
		}
	}
	if _, err := t.w.Write(t.outBuf.Bytes()); err != nil {
		t.reportError(err)
		return err
	}
	return nil
}

func (t *Terminal) writeFrame(f Frame) error {
	t.outBuf.Reset()
	var err error
	if t.outBuf.data, err = t.encoder.Encode(f, t.outBuf.data); err != nil {
		t.reportError(err)
		return err
	}
	if _, err := t.w.Write(t.outBuf.Bytes()); err != nil {
		t.reportError(err)
		return err
	}
	if hook := t.config.EventHooks.OutboundFrame; hook != nil {
		hook(t, f)
	}
	return nil
}

func (t *Terminal) reportError(err error) {
	if hook := t.config.EventHooks.EncounteredError; hook != nil {
		hook(t, err)
	}
}

// ReadLoop blocks, repeatedly reading from the underlying reader and
// feeding the bytes to Feed, until the reader returns io.EOF or a
// different error. Output delivery happens entirely through the
// IncomingOutput hook; ReadLoop itself returns only the terminal error.
// Callers that want Feed's return value directly should call Feed
// themselves instead of using ReadLoop.
func (t *Terminal) ReadLoop() error {
	buf := make([]byte, initialBufferCapacity)
	for {
		n, err := t.r.Read(buf)
		if n > 0 {
			t.Feed(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			t.reportError(err)
			return err
		}
	}
}

// LocalState reports the negotiation state this terminal currently
// occupies for opt on the local side.
func (t *Terminal) LocalState(opt OptionCode) NegotiationState {
	return t.negotiation.LocalState(opt)
}

// RemoteState reports the negotiation state this terminal currently
// believes the remote side occupies for opt.
func (t *Terminal) RemoteState(opt OptionCode) NegotiationState {
	return t.negotiation.RemoteState(opt)
}
