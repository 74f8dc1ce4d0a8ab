package telnet

// StatusEntry reports one tracked option's negotiated state from both
// sides, as a "(him, opt, us, opt)" quadruple on the wire.
type StatusEntry struct {
	Option       OptionCode
	RemoteOpcode byte // DO or DONT: what the sender believes the remote side does
	LocalOpcode  byte // WILL or WONT: what the sender believes the local side does
}

// StatusDocument is the Argument for the STATUS option. A request
// carries no entries (IsSend is true); a response carries the sender's
// view of every option it tracks.
type StatusDocument struct {
	IsSend  bool
	Entries []StatusEntry
}

func (s StatusDocument) EncodedLen() int {
	if s.IsSend {
		return 1
	}
	return 1 + 4*len(s.Entries)
}

func (s StatusDocument) Encode(dst []byte) []byte {
	if s.IsSend {
		return append(dst, statusSend)
	}
	dst = append(dst, statusIs)
	for _, entry := range s.Entries {
		dst = append(dst, entry.RemoteOpcode, byte(entry.Option), entry.LocalOpcode, byte(entry.Option))
	}
	return dst
}

// DecodeStatus parses a de-escaped SB STATUS ... SE payload.
func DecodeStatus(payload []byte) (StatusDocument, error) {
	if len(payload) == 0 {
		return StatusDocument{}, newDecodingError(0, "empty STATUS payload")
	}

	switch payload[0] {
	case statusSend:
		if len(payload) != 1 {
			return StatusDocument{}, newDecodingError(1, "STATUS SEND must not carry a payload")
		}
		return StatusDocument{IsSend: true}, nil
	case statusIs:
		body := payload[1:]
		if len(body)%4 != 0 {
			return StatusDocument{}, newDecodingError(1, "STATUS IS body length %d is not a multiple of 4", len(body))
		}

		var entries []StatusEntry
		for i := 0; i < len(body); i += 4 {
			remoteOp, opt1, localOp, opt2 := body[i], body[i+1], body[i+2], body[i+3]
			if remoteOp != DO && remoteOp != DONT {
				return StatusDocument{}, newDecodingError(1+i, "STATUS remote opcode must be DO or DONT, got %d", remoteOp)
			}
			if localOp != WILL && localOp != WONT {
				return StatusDocument{}, newDecodingError(1+i+2, "STATUS local opcode must be WILL or WONT, got %d", localOp)
			}
			if opt1 != opt2 {
				return StatusDocument{}, newDecodingError(1+i, "STATUS quadruple option bytes disagree: %d vs %d", opt1, opt2)
			}
			entries = append(entries, StatusEntry{
				Option:       OptionCode(opt1),
				RemoteOpcode: remoteOp,
				LocalOpcode:  localOp,
			})
		}
		return StatusDocument{Entries: entries}, nil
	default:
		return StatusDocument{}, newDecodingError(0, "STATUS payload must begin with IS or SEND, got %d", payload[0])
	}
}
