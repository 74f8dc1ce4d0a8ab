package telnet

// NAOHTS is the Argument for the "Output Horizontal Tab Stops" option:
// an ordered sequence of tab-stop column bytes. Any byte sequence is a
// legal payload, so decoding never fails.
type NAOHTS struct {
	TabStops []byte
}

func (n NAOHTS) EncodedLen() int { return len(n.TabStops) }

func (n NAOHTS) Encode(dst []byte) []byte {
	return append(dst, n.TabStops...)
}

// DecodeNAOHTS parses a de-escaped SB NAOHTS ... SE payload.
func DecodeNAOHTS(payload []byte) NAOHTS {
	stops := make([]byte, len(payload))
	copy(stops, payload)
	return NAOHTS{TabStops: stops}
}
