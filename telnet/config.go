package telnet

type TerminalSide byte

const (
	SideUnknown TerminalSide = iota
	SideClient
	SideServer
)

type CharsetUsage byte

const (
	// CharsetUsageBinary indicates that text communications should use a CHARSET-negotiated character set
	// only once TRANSMIT-BINARY is active on both sides, and the default character set otherwise
	CharsetUsageBinary CharsetUsage = iota
	// CharsetUsageAlways indicates that text communications should always use a CHARSET-negotiated character
	// set (if any) instead of the default character set
	CharsetUsageAlways
)

// TelOptSetting describes how this terminal should handle one option
// code at construction time: whether each side may use it, and whether
// the terminal should proactively request it.
type TelOptSetting struct {
	Option OptionCode

	AllowLocal  bool
	AllowRemote bool

	RequestLocal  bool
	RequestRemote bool
}

type TerminalConfig struct {
	// DefaultCharsetName is the registered IANA name of the character set to use for all communications not
	// sent via a negotiated charset (via the CHARSET telopt). RFC 854 (Telnet Protocol) specifies that by
	// default, communications take place in ASCII encoding. RFC 5198 specified that since 2008, communications
	// should by default take place in UTF-8. However, many active telnet services and a vanishingly small
	// number of telnet clients have not been updated to use UTF-8.
	//
	// Terminal does not negotiate the CHARSET telopt and exposes no way to install a negotiated charset, so a
	// Terminal encodes and decodes AsciiData with the charset specified here.
	DefaultCharsetName string

	// CharsetUsage controls when a CHARSET-negotiated character set, once one exists, is actually used for
	// AsciiData instead of the default charset. See CharsetUsageBinary and CharsetUsageAlways.
	CharsetUsage CharsetUsage

	// Side indicates whether this terminal is intended to be the client or server. Even though RFC 854
	// does not have the concept of a client or server, just local and remote, some options indicate
	// different behaviors for clients and servers.
	Side TerminalSide

	// TelOpts indicates which options this terminal should allow the remote to request, and which it should
	// proactively request itself.
	TelOpts []TelOptSetting

	EventHooks EventHooks
}
