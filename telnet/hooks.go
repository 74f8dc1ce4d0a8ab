package telnet

// TelOptStateChangeData describes a single side of a single option
// moving to a new Q-method state.
type TelOptStateChangeData struct {
	Option   OptionCode
	Side     Side
	OldState NegotiationState
	NewState NegotiationState
}

type IncomingOutputEvent func(terminal *Terminal, output TerminalOutput)

type OutboundFrameEvent func(terminal *Terminal, frame Frame)

type EncounteredErrorEvent func(terminal *Terminal, err error)

type TelOptStateChangeEvent func(terminal *Terminal, data TelOptStateChangeData)

// EventHooks are the terminal's only observability surface. Every
// inbound output and every self-healed or propagated error passes
// through here before (or instead of) reaching the caller as a return
// value. OutboundFrame fires for each frame written as a single frame
// (commands, negotiation, subnegotiation); data bytes written by Send
// for AsciiData/BinaryData do not fire it. TelOptStateChange fires for
// state changes caused by incoming negotiation frames; changes made by
// Send's enable/disable inputs or by NewTerminal's TelOpts settings do
// not fire it.
type EventHooks struct {
	EncounteredError EncounteredErrorEvent

	IncomingOutput IncomingOutputEvent
	OutboundFrame  OutboundFrameEvent

	TelOptStateChange TelOptStateChangeEvent
}
