package telnet

// Argument is a subnegotiation payload, already de-escaped (IAC IAC
// collapsed to a single 0xFF) and stripped of its IAC SB <opt> / IAC SE
// envelope. Every recognized option defines a concrete Argument type;
// anything else is carried as Unknown so round-trips never lose data.
type Argument interface {
	// EncodedLen returns the exact number of bytes Encode will produce,
	// so callers can pre-reserve output buffer capacity.
	EncodedLen() int
	// Encode appends this argument's wire representation (the bytes
	// that will sit between IAC SB <opt> and IAC SE) to dst and returns
	// the extended slice. IAC doubling is applied by the caller, not here.
	Encode(dst []byte) []byte
}

// Unknown wraps the raw subnegotiation payload for an option this
// engine has no dedicated codec for.
type Unknown struct {
	Raw []byte
}

func (u Unknown) EncodedLen() int { return len(u.Raw) }

func (u Unknown) Encode(dst []byte) []byte {
	return append(dst, u.Raw...)
}

// decodeArgument parses a de-escaped subnegotiation payload according to
// the option it arrived under. Options without a dedicated codec, and
// any option whose dedicated codec rejects the payload, fall back to
// Unknown so a single malformed subnegotiation never poisons the
// connection (see the decoding-error propagation policy).
func decodeArgument(opt OptionCode, payload []byte) Argument {
	switch opt {
	case OptionMSDP:
		if v, err := DecodeMSDP(payload); err == nil {
			return v
		}
	case OptionMSSP:
		if m, err := DecodeMSSP(payload); err == nil {
			return m
		}
	case OptionNAOCRD:
		if n, err := DecodeNAOCRD(payload); err == nil {
			return n
		}
	case OptionNAOHTS:
		return DecodeNAOHTS(payload)
	case OptionStatus:
		if s, err := DecodeStatus(payload); err == nil {
			return s
		}
	}

	raw := make([]byte, len(payload))
	copy(raw, payload)
	return Unknown{Raw: raw}
}
