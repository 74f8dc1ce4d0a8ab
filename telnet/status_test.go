package telnet

import "testing"

func TestStatusSendRoundTrip(t *testing.T) {
	doc := StatusDocument{IsSend: true}
	encoded := doc.Encode(nil)
	if string(encoded) != string([]byte{statusSend}) {
		t.Fatalf("unexpected SEND encoding: %v", encoded)
	}

	decoded, err := DecodeStatus(encoded)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !decoded.IsSend || len(decoded.Entries) != 0 {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
}

func TestStatusIsRoundTrip(t *testing.T) {
	doc := StatusDocument{Entries: []StatusEntry{
		{Option: OptionEcho, RemoteOpcode: DO, LocalOpcode: WILL},
		{Option: OptionSuppressGoAhead, RemoteOpcode: DONT, LocalOpcode: WONT},
	}}

	encoded := doc.Encode(nil)
	if len(encoded) != doc.EncodedLen() {
		t.Fatalf("len(encoded)=%d EncodedLen()=%d", len(encoded), doc.EncodedLen())
	}

	decoded, err := DecodeStatus(encoded)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(decoded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded.Entries))
	}
	if decoded.Entries[0] != doc.Entries[0] || decoded.Entries[1] != doc.Entries[1] {
		t.Fatalf("entries mismatch: got %+v want %+v", decoded.Entries, doc.Entries)
	}
}

func TestStatusRejectsMismatchedQuadruple(t *testing.T) {
	_, err := DecodeStatus([]byte{statusIs, DO, byte(OptionEcho), WILL, byte(OptionSuppressGoAhead)})
	if err == nil {
		t.Fatal("expected an error when the quadruple's two option bytes disagree")
	}
}

func TestStatusRejectsSendWithBody(t *testing.T) {
	_, err := DecodeStatus([]byte{statusSend, 0x01})
	if err == nil {
		t.Fatal("expected an error for SEND carrying a payload")
	}
}

func TestStatusRejectsBadOpcodes(t *testing.T) {
	_, err := DecodeStatus([]byte{statusIs, WILL, byte(OptionEcho), WILL, byte(OptionEcho)})
	if err == nil {
		t.Fatal("expected an error when the remote opcode is not DO/DONT")
	}
}

func TestNAOCRDRoundTrip(t *testing.T) {
	n := NAOCRD{Role: NAOCRDSender, Disposition: 0x0D}
	encoded := n.Encode(nil)
	decoded, err := DecodeNAOCRD(encoded)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if decoded != n {
		t.Fatalf("round trip mismatch: got %+v want %+v", decoded, n)
	}
}

func TestNAOCRDRejectsBadLength(t *testing.T) {
	if _, err := DecodeNAOCRD([]byte{byte(naocrdDS)}); err == nil {
		t.Fatal("expected an error for a 1-byte payload")
	}
}

func TestNAOCRDRejectsBadRole(t *testing.T) {
	if _, err := DecodeNAOCRD([]byte{0x99, 0x00}); err == nil {
		t.Fatal("expected an error for an unrecognized role byte")
	}
}

func TestNAOHTSRoundTrip(t *testing.T) {
	n := NAOHTS{TabStops: []byte{8, 16, 24, 32}}
	encoded := n.Encode(nil)
	decoded := DecodeNAOHTS(encoded)
	if string(decoded.TabStops) != string(n.TabStops) {
		t.Fatalf("round trip mismatch: got %v want %v", decoded.TabStops, n.TabStops)
	}
}

func TestNAOHTSAcceptsEmptyPayload(t *testing.T) {
	decoded := DecodeNAOHTS(nil)
	if len(decoded.TabStops) != 0 {
		t.Fatalf("expected no tab stops, got %v", decoded.TabStops)
	}
}
