package telnet

// msdpParser performs the recursive-descent walk described by the MSDP
// grammar. All errors carry the byte offset into payload where parsing
// stopped making sense.
type msdpParser struct {
	data []byte
	pos  int
}

// DecodeMSDP parses a de-escaped SB MSDP ... SE payload into a document
// of VAR/VAL entries.
func DecodeMSDP(payload []byte) (MSDPDocument, error) {
	p := &msdpParser{data: payload}
	doc := make(MSDPDocument)

	for p.pos < len(p.data) {
		if p.data[p.pos] != msdpVar {
			return nil, newDecodingError(p.pos, "expected VAR, got byte %d", p.data[p.pos])
		}
		p.pos++
		key := p.parseString()

		if p.pos >= len(p.data) || p.data[p.pos] != msdpVal {
			return nil, newDecodingError(p.pos, "expected VAL after key %q", key)
		}
		p.pos++

		val, err := p.parseValueBody()
		if err != nil {
			return nil, err
		}
		doc[string(key)] = val
	}

	return doc, nil
}

func isMSDPControl(b byte) bool {
	switch b {
	case 0, IAC, msdpVar, msdpVal, msdpTableOpen, msdpTableClose, msdpArrayOpen, msdpArrayClose:
		return true
	default:
		return false
	}
}

// parseString consumes bytes up to, but not including, the next control
// byte (or the end of the payload). It never fails.
func (p *msdpParser) parseString() []byte {
	start := p.pos
	for p.pos < len(p.data) && !isMSDPControl(p.data[p.pos]) {
		p.pos++
	}
	return p.data[start:p.pos]
}

// parseValueBody is called with p.pos positioned just past a VAL byte.
func (p *msdpParser) parseValueBody() (MSDPValue, error) {
	if p.pos >= len(p.data) {
		// An empty string value may be the last thing in the payload.
		return MSDPValue{Kind: MSDPString, String: p.data[p.pos:]}, nil
	}

	switch p.data[p.pos] {
	case msdpArrayOpen:
		p.pos++
		return p.parseArray()
	case msdpTableOpen:
		p.pos++
		return p.parseTable()
	default:
		s := p.parseString()
		return MSDPValue{Kind: MSDPString, String: s}, nil
	}
}

func (p *msdpParser) parseArray() (MSDPValue, error) {
	var elems []MSDPValue

	for {
		if p.pos >= len(p.data) {
			return MSDPValue{}, newDecodingError(p.pos, "unterminated array, missing ARRAY_CLOSE")
		}
		if p.data[p.pos] == msdpArrayClose {
			p.pos++
			return MSDPValue{Kind: MSDPArray, Array: elems}, nil
		}
		if p.data[p.pos] != msdpVal {
			return MSDPValue{}, newDecodingError(p.pos, "expected VAL or ARRAY_CLOSE inside array, got byte %d", p.data[p.pos])
		}
		p.pos++

		val, err := p.parseValueBody()
		if err != nil {
			return MSDPValue{}, err
		}
		elems = append(elems, val)
	}
}

func (p *msdpParser) parseTable() (MSDPValue, error) {
	entries := make(map[string]MSDPValue)

	for {
		if p.pos >= len(p.data) {
			return MSDPValue{}, newDecodingError(p.pos, "unterminated table, missing TABLE_CLOSE")
		}
		if p.data[p.pos] == msdpTableClose {
			p.pos++
			return MSDPValue{Kind: MSDPTable, Table: entries}, nil
		}
		if p.data[p.pos] == msdpVal {
			return MSDPValue{}, newDecodingError(p.pos, "VAL without preceding VAR in table")
		}
		if p.data[p.pos] != msdpVar {
			return MSDPValue{}, newDecodingError(p.pos, "expected VAR or TABLE_CLOSE inside table, got byte %d", p.data[p.pos])
		}
		p.pos++
		key := p.parseString()

		if p.pos >= len(p.data) || p.data[p.pos] != msdpVal {
			return MSDPValue{}, newDecodingError(p.pos, "expected VAL after key %q in table", key)
		}
		p.pos++

		val, err := p.parseValueBody()
		if err != nil {
			return MSDPValue{}, err
		}
		entries[string(key)] = val
	}
}
