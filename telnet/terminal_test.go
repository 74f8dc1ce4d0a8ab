package telnet

import (
	"bytes"
	"testing"
)

func newTestTerminal(t *testing.T, cfg TerminalConfig) (*Terminal, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	term, err := NewTerminal(&bytes.Buffer{}, &out, cfg)
	if err != nil {
		t.Fatalf("NewTerminal error: %v", err)
	}
	return term, &out
}

func TestTerminalFeedPlainData(t *testing.T) {
	term, _ := newTestTerminal(t, TerminalConfig{})

	outputs := term.Feed([]byte("hi"))
	if len(outputs) != 1 || outputs[0].Kind != OutputData {
		t.Fatalf("expected one OutputData event, got %+v", outputs)
	}
	if outputs[0].Text != "hi" {
		t.Fatalf("expected decoded text %q, got %q", "hi", outputs[0].Text)
	}
	if string(outputs[0].Bytes) != "hi" {
		t.Fatalf("expected raw bytes %q, got %q", "hi", outputs[0].Bytes)
	}
}

func TestTerminalAutoAcceptsUnrestrictedOption(t *testing.T) {
	term, out := newTestTerminal(t, TerminalConfig{})

	outputs := term.Feed([]byte{IAC, WILL, byte(OptionEcho)})
	if len(outputs) != 0 {
		t.Fatalf("negotiation frames must not surface as TerminalOutput, got %+v", outputs)
	}
	if out.Len() == 0 {
		t.Fatal("expected an acknowledgement to be written")
	}
	want := []byte{IAC, DO, byte(OptionEcho)}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("unexpected reply bytes: got %v want %v", out.Bytes(), want)
	}
	if term.RemoteState(OptionEcho) != StateYes {
		t.Fatalf("expected RemoteState Yes, got %v", term.RemoteState(OptionEcho))
	}
}

func TestTerminalRefusesDisallowedOption(t *testing.T) {
	cfg := TerminalConfig{TelOpts: []TelOptSetting{
		{Option: OptionMSDP, AllowRemote: false},
	}}
	term, out := newTestTerminal(t, cfg)

	term.Feed([]byte{IAC, WILL, byte(OptionMSDP)})

	want := []byte{IAC, DONT, byte(OptionMSDP)}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("unexpected reply bytes: got %v want %v", out.Bytes(), want)
	}
	if term.RemoteState(OptionMSDP) != StateNever {
		t.Fatalf("expected RemoteState Never, got %v", term.RemoteState(OptionMSDP))
	}
}

func TestTerminalRequestsConfiguredOptionsOnConstruction(t *testing.T) {
	cfg := TerminalConfig{TelOpts: []TelOptSetting{
		{Option: OptionSuppressGoAhead, AllowLocal: true, AllowRemote: true, RequestLocal: true},
	}}
	term, out := newTestTerminal(t, cfg)

	want := []byte{IAC, WILL, byte(OptionSuppressGoAhead)}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("unexpected startup negotiation: got %v want %v", out.Bytes(), want)
	}
	if term.LocalState(OptionSuppressGoAhead) != StateWantYes {
		t.Fatalf("expected LocalState WantYes, got %v", term.LocalState(OptionSuppressGoAhead))
	}
}

func TestTerminalSendAsciiData(t *testing.T) {
	term, out := newTestTerminal(t, TerminalConfig{})

	if err := term.Send(TerminalInput{Kind: InputAsciiData, Text: "hi"}); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if out.String() != "hi" {
		t.Fatalf("expected raw ascii bytes written, got %v", out.Bytes())
	}
}

func TestTerminalSendSubnegotiation(t *testing.T) {
	term, out := newTestTerminal(t, TerminalConfig{})

	doc := MSDPDocument{"LIST": NewMSDPString("COMMANDS")}
	err := term.Send(TerminalInput{Kind: InputSubnegotiate, Option: OptionMSDP, Argument: doc})
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}

	want := append([]byte{IAC, SB, byte(OptionMSDP)}, EncodeMSDP(doc)...)
	want = append(want, IAC, SE)
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("unexpected subnegotiation bytes: got %v want %v", out.Bytes(), want)
	}
}

func TestTerminalDiscardsSubnegotiationForInactiveOption(t *testing.T) {
	var reportedErr error
	cfg := TerminalConfig{EventHooks: EventHooks{
		EncounteredError: func(_ *Terminal, err error) { reportedErr = err },
	}}
	term, _ := newTestTerminal(t, cfg)

	data := []byte{IAC, SB, byte(OptionMSDP), msdpVar, 'A', msdpVal, 'b', IAC, SE}
	outputs := term.Feed(data)
	if len(outputs) != 0 {
		t.Fatalf("expected the subnegotiation to be discarded, got %+v", outputs)
	}
	if reportedErr == nil {
		t.Fatal("expected EncounteredError hook to fire for an inactive option")
	}
}

func TestTerminalTransmitBinarySwitchesCharsetMode(t *testing.T) {
	cfg := TerminalConfig{CharsetUsage: CharsetUsageBinary}
	term, _ := newTestTerminal(t, cfg)

	term.Feed([]byte{IAC, WILL, byte(OptionTransmitBinary)})
	if term.charset.binaryActive() {
		t.Fatal("expected binary mode inactive until both sides agree")
	}

	term.Feed([]byte{IAC, DO, byte(OptionTransmitBinary)})
	if !term.charset.binaryActive() {
		t.Fatal("expected binary mode active once both sides are Yes")
	}
}
