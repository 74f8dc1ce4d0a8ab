package telnet

// Reserved Telnet command bytes (RFC 854).
const (
	SE   byte = 240
	NOP  byte = 241
	DM   byte = 242
	BRK  byte = 243
	IP   byte = 244
	AO   byte = 245
	AYT  byte = 246
	EC   byte = 247
	EL   byte = 248
	GA   byte = 249
	SB   byte = 250
	WILL byte = 251
	WONT byte = 252
	DO   byte = 253
	DONT byte = 254
	IAC  byte = 255
)

var commandNames = map[byte]string{
	SE:   "SE",
	NOP:  "NOP",
	DM:   "DM",
	BRK:  "BRK",
	IP:   "IP",
	AO:   "AO",
	AYT:  "AYT",
	EC:   "EC",
	EL:   "EL",
	GA:   "GA",
	SB:   "SB",
	WILL: "WILL",
	WONT: "WONT",
	DO:   "DO",
	DONT: "DONT",
	IAC:  "IAC",
}

// singleByteCommands are the IAC-prefixed commands that carry no option
// byte and no payload.
var singleByteCommands = map[byte]FrameKind{
	NOP: FrameNoOperation,
	DM:  FrameDataMark,
	BRK: FrameBreak,
	IP:  FrameInterruptProcess,
	AO:  FrameAbortOutput,
	AYT: FrameAreYouThere,
	EC:  FrameEraseCharacter,
	EL:  FrameEraseLine,
	GA:  FrameGoAhead,
}

// MSDP markers, valid only inside an SB MSDP ... SE envelope.
const (
	msdpVar         byte = 1
	msdpVal         byte = 2
	msdpTableOpen   byte = 3
	msdpTableClose  byte = 4
	msdpArrayOpen   byte = 5
	msdpArrayClose  byte = 6
)

// MSSP markers, valid only inside an SB MSSP ... SE envelope.
const (
	msspVar byte = 1
	msspVal byte = 2
)

// NAOCRD disposition markers (RFC 652).
const (
	naocrdDS byte = 1 // sender disposition
	naocrdDR byte = 2 // receiver disposition
)

// STATUS subnegotiation markers (RFC 859).
const (
	statusIs   byte = 0
	statusSend byte = 1
)
