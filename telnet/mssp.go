package telnet

// MSSPEntry is one key with one or more values, as MSSP allows a
// server to report multiple values for the same variable (e.g.
// multiple CODEBASE entries).
type MSSPEntry struct {
	Name   string
	Values []string
}

// MSSPDocument is the Argument implementation for the MSSP option: a
// flat, ordered sequence of MSSP_VAR/MSSP_VAL entries.
type MSSPDocument []MSSPEntry

func msspControlByte(b byte) bool {
	switch b {
	case 0, IAC, msspVar, msspVal:
		return true
	default:
		return false
	}
}

// filterMSSPText strips control bytes from caller-supplied MSSP text,
// per the boundary contract's requirement that MSSP never emit a raw
// control byte inside a key or value.
func filterMSSPText(s string) string {
	filtered := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !msspControlByte(s[i]) {
			filtered = append(filtered, s[i])
		}
	}
	return string(filtered)
}

func (d MSSPDocument) EncodedLen() int {
	total := 0
	for _, entry := range d {
		total += 1 + len(filterMSSPText(entry.Name))
		for _, val := range entry.Values {
			total += 1 + len(filterMSSPText(val))
		}
	}
	return total
}

func (d MSSPDocument) Encode(dst []byte) []byte {
	for _, entry := range d {
		dst = append(dst, msspVar)
		dst = append(dst, filterMSSPText(entry.Name)...)
		for _, val := range entry.Values {
			dst = append(dst, msspVal)
			dst = append(dst, filterMSSPText(val)...)
		}
	}
	return dst
}

// DecodeMSSP parses a de-escaped SB MSSP ... SE payload.
func DecodeMSSP(payload []byte) (MSSPDocument, error) {
	var doc MSSPDocument
	pos := 0

	for pos < len(payload) {
		if payload[pos] != msspVar {
			return nil, newDecodingError(pos, "expected MSSP_VAR, got byte %d", payload[pos])
		}
		pos++

		start := pos
		for pos < len(payload) && payload[pos] != msspVar && payload[pos] != msspVal {
			pos++
		}
		name := string(payload[start:pos])

		var values []string
		for pos < len(payload) && payload[pos] == msspVal {
			pos++
			valStart := pos
			for pos < len(payload) && payload[pos] != msspVar && payload[pos] != msspVal {
				pos++
			}
			values = append(values, string(payload[valStart:pos]))
		}

		if len(values) == 0 {
			return nil, newDecodingError(start, "MSSP variable %q has no MSSP_VAL", name)
		}

		doc = append(doc, MSSPEntry{Name: name, Values: values})
	}

	return doc, nil
}
