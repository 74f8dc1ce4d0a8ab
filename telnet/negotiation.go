package telnet

// NegotiationState is one of the seven Q-method states a single side of
// a single option can be in.
type NegotiationState byte

const (
	StateNo NegotiationState = iota
	StateYes
	StateWantNo
	StateWantNoOpposite
	StateWantYes
	StateWantYesOpposite
	StateNever
)

func (s NegotiationState) String() string {
	switch s {
	case StateNo:
		return "No"
	case StateYes:
		return "Yes"
	case StateWantNo:
		return "WantNo"
	case StateWantNoOpposite:
		return "WantNoOpposite"
	case StateWantYes:
		return "WantYes"
	case StateWantYesOpposite:
		return "WantYesOpposite"
	case StateNever:
		return "Never"
	default:
		return "Invalid"
	}
}

// Side names which half of a (local, remote) pair a negotiation
// operation addresses. The local side reacts to DO/DONT and answers
// with WILL/WONT; the remote side reacts to WILL/WONT and answers with
// DO/DONT.
type Side byte

const (
	SideLocal Side = iota
	SideRemote
)

func (s Side) acceptOpcode() byte {
	if s == SideLocal {
		return WILL
	}
	return DO
}

func (s Side) refuseOpcode() byte {
	if s == SideLocal {
		return WONT
	}
	return DONT
}

type optionStates struct {
	local  NegotiationState
	remote NegotiationState
}

func (p *optionStates) get(side Side) NegotiationState {
	if side == SideLocal {
		return p.local
	}
	return p.remote
}

func (p *optionStates) set(side Side, state NegotiationState) {
	if side == SideLocal {
		p.local = state
	} else {
		p.remote = state
	}
}

// NegotiationManager maintains, per option code, the (local, remote)
// Q-method state pair and arbitrates DO/DONT/WILL/WONT exchanges so
// neither side ever loops. It is not safe for concurrent use: the
// connection's single-threaded cooperative model owns it exclusively.
type NegotiationManager struct {
	options map[OptionCode]*optionStates
}

// NewNegotiationManager returns a manager with every option starting
// at (No, No), per the lifecycle rule in the data model.
func NewNegotiationManager() *NegotiationManager {
	return &NegotiationManager{options: make(map[OptionCode]*optionStates)}
}

func (m *NegotiationManager) state(opt OptionCode) *optionStates {
	s, ok := m.options[opt]
	if !ok {
		s = &optionStates{local: StateNo, remote: StateNo}
		m.options[opt] = s
	}
	return s
}

// LocalState returns the current local-side state for opt.
func (m *NegotiationManager) LocalState(opt OptionCode) NegotiationState {
	return m.state(opt).get(SideLocal)
}

// RemoteState returns the current remote-side state for opt.
func (m *NegotiationManager) RemoteState(opt OptionCode) NegotiationState {
	return m.state(opt).get(SideRemote)
}

// Allow lifts an administrative Never restriction back to No. It has no
// effect, and emits nothing, on any other current state.
func (m *NegotiationManager) Allow(side Side, opt OptionCode) {
	s := m.state(opt)
	if s.get(side) == StateNever {
		s.set(side, StateNo)
	}
}

// Disallow administratively forbids an option on the given side. If the
// side was Yes, the forced transition emits a refusal (Wont/Dont) so
// the peer learns the option is going away; otherwise nothing is
// emitted. Once Never, Allow is the only way back.
func (m *NegotiationManager) Disallow(side Side, opt OptionCode) (Frame, bool) {
	s := m.state(opt)
	wasYes := s.get(side) == StateYes
	s.set(side, StateNever)
	if !wasYes {
		return Frame{}, false
	}
	return NegotiationFrame(side.refuseOpcode(), opt), true
}

// RequestEnable records caller intent to enable opt on side, producing
// at most one outbound frame. Never is sticky: a request against a
// Never state is dropped without emission.
func (m *NegotiationManager) RequestEnable(side Side, opt OptionCode) (Frame, bool) {
	s := m.state(opt)
	switch s.get(side) {
	case StateNo:
		s.set(side, StateWantYes)
		return NegotiationFrame(side.acceptOpcode(), opt), true
	case StateWantNo:
		s.set(side, StateWantNoOpposite)
	case StateWantYesOpposite:
		s.set(side, StateWantYes)
	case StateNever, StateYes, StateWantYes, StateWantNoOpposite:
		// already enabled, already converging to enabled, or forbidden
	}
	return Frame{}, false
}

// RequestDisable records caller intent to disable opt on side. It is
// the dual of RequestEnable.
func (m *NegotiationManager) RequestDisable(side Side, opt OptionCode) (Frame, bool) {
	s := m.state(opt)
	switch s.get(side) {
	case StateYes:
		s.set(side, StateWantNo)
		return NegotiationFrame(side.refuseOpcode(), opt), true
	case StateWantYes:
		s.set(side, StateWantYesOpposite)
	case StateWantNoOpposite:
		s.set(side, StateWantNo)
	case StateNever, StateNo, StateWantNo, StateWantYesOpposite:
		// already disabled, already converging to disabled, or forbidden
	}
	return Frame{}, false
}

// OnFrame processes an incoming Do/Dont/Will/Wont frame, returning the
// at-most-one outbound acknowledgement or refusal it produces. Frames
// of any other kind are not negotiation frames and are ignored.
func (m *NegotiationManager) OnFrame(f Frame) (Frame, bool) {
	var side Side
	var enable bool

	switch f.Kind {
	case FrameDo:
		side, enable = SideLocal, true
	case FrameDont:
		side, enable = SideLocal, false
	case FrameWill:
		side, enable = SideRemote, true
	case FrameWont:
		side, enable = SideRemote, false
	default:
		return Frame{}, false
	}

	return m.receive(side, f.Option, enable)
}

// receive applies the enable-received table directly (spec.md's
// explicit "on receipt of DO" table) and the disable-received table by
// the standard Q-method duality: swap Yes/No, WantYes/WantNo, and
// WantYesOpposite/WantNoOpposite, with Never handled identically on
// both sides of the duality since it never participates in the
// enable/disable toggle.
func (m *NegotiationManager) receive(side Side, opt OptionCode, enable bool) (Frame, bool) {
	s := m.state(opt)
	current := s.get(side)

	if enable {
		return m.receiveEnable(s, side, opt, current)
	}
	return m.receiveDisable(s, side, opt, current)
}

func (m *NegotiationManager) receiveEnable(s *optionStates, side Side, opt OptionCode, current NegotiationState) (Frame, bool) {
	switch current {
	case StateNever:
		return NegotiationFrame(side.refuseOpcode(), opt), true
	case StateNo:
		s.set(side, StateYes)
		return NegotiationFrame(side.acceptOpcode(), opt), true
	case StateYes:
		return Frame{}, false
	case StateWantNo:
		// protocol error: peer echoed a stale request
		s.set(side, StateNo)
		return Frame{}, false
	case StateWantNoOpposite:
		s.set(side, StateYes)
		return Frame{}, false
	case StateWantYes:
		s.set(side, StateYes)
		return Frame{}, false
	case StateWantYesOpposite:
		s.set(side, StateWantNo)
		return NegotiationFrame(side.refuseOpcode(), opt), true
	default:
		return Frame{}, false
	}
}

func (m *NegotiationManager) receiveDisable(s *optionStates, side Side, opt OptionCode, current NegotiationState) (Frame, bool) {
	switch current {
	case StateNever:
		return Frame{}, false
	case StateYes:
		s.set(side, StateNo)
		return NegotiationFrame(side.refuseOpcode(), opt), true
	case StateNo:
		return Frame{}, false
	case StateWantYes:
		// protocol error: peer echoed a stale request
		s.set(side, StateYes)
		return Frame{}, false
	case StateWantYesOpposite:
		s.set(side, StateNo)
		return Frame{}, false
	case StateWantNo:
		s.set(side, StateNo)
		return Frame{}, false
	case StateWantNoOpposite:
		s.set(side, StateWantYes)
		return NegotiationFrame(side.acceptOpcode(), opt), true
	default:
		return Frame{}, false
	}
}
