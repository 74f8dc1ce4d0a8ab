package telnet

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// coder is the minimal shape this package needs from a
// golang.org/x/text encoding.Encoder or encoding.Decoder.
type coder interface {
	Bytes(b []byte) ([]byte, error)
}

type currentCharset struct {
	name string

	encoder coder
	decoder coder
}

// Charset resolves which IANA character set AsciiData should be encoded
// and decoded through: the connection's default charset, or a
// CHARSET-negotiated one, once TRANSMIT-BINARY is active on both sides
// (or CharsetUsageAlways says to prefer it regardless).
type Charset struct {
	usage        CharsetUsage
	binaryLocal  atomic.Bool
	binaryRemote atomic.Bool

	defaultLock    sync.Mutex
	defaultCharset currentCharset

	negotiatedLock sync.Mutex
	negotiated     currentCharset
}

// NewCharset builds a Charset whose default (and initially negotiated)
// character set is the named IANA code page.
func NewCharset(defaultCodePage string, usage CharsetUsage) (*Charset, error) {
	charset := &Charset{
		usage: usage,
	}

	defaultCharset, err := charset.buildCharset(defaultCodePage)
	if err != nil {
		return nil, err
	}

	charset.defaultCharset = defaultCharset
	charset.negotiated = defaultCharset

	return charset, nil
}

// SetBinaryMode records whether TRANSMIT-BINARY is active on side;
// CharsetUsageBinary consults both sides' state before preferring the
// negotiated charset over the default one.
func (c *Charset) SetBinaryMode(side Side, active bool) {
	if side == SideLocal {
		c.binaryLocal.Store(active)
	} else {
		c.binaryRemote.Store(active)
	}
}

func (c *Charset) binaryActive() bool {
	return c.binaryLocal.Load() && c.binaryRemote.Load()
}

func (c *Charset) NegotiatedCharsetName() string {
	c.negotiatedLock.Lock()
	defer c.negotiatedLock.Unlock()

	return c.negotiated.name
}

func (c *Charset) DefaultCharsetName() string {
	c.defaultLock.Lock()
	defer c.defaultLock.Unlock()

	return c.defaultCharset.name
}

// Encode converts UTF-8 text into the bytes that should be sent as
// AsciiData, using whichever charset is currently in effect.
func (c *Charset) Encode(utf8Text string) ([]byte, error) {
	if c.usage == CharsetUsageAlways || c.binaryActive() {
		c.negotiatedLock.Lock()
		defer c.negotiatedLock.Unlock()

		return c.negotiated.encoder.Bytes([]byte(utf8Text))
	}

	c.defaultLock.Lock()
	defer c.defaultLock.Unlock()

	return c.defaultCharset.encoder.Bytes([]byte(utf8Text))
}

// Decode converts incoming AsciiData bytes into UTF-8 text.
func (c *Charset) Decode(incomingText []byte) (string, error) {
	var charset currentCharset

	if c.usage == CharsetUsageAlways || c.binaryActive() {
		c.negotiatedLock.Lock()
		defer c.negotiatedLock.Unlock()

		charset = c.negotiated
	} else {
		c.defaultLock.Lock()
		defer c.defaultLock.Unlock()

		charset = c.defaultCharset
	}

	b, err := charset.decoder.Bytes(incomingText)
	if err != nil {
		return "", err
	}

	str := string(b)
	return strings.TrimSuffix(str, "�"), nil
}

func (c *Charset) buildCharset(codePage string) (currentCharset, error) {
	if strings.ToLower(codePage) == "utf-8" {
		return currentCharset{
			encoder: encoding.Replacement.NewEncoder(),
			// We use an encoder instead of decoder because the Replacement encoding works weird-
			// see the difference between the decoder & encoder behaviors
			decoder: encoding.Replacement.NewEncoder(),
			name:    "UTF-8",
		}, nil
	}

	charset, err := ianaindex.IANA.Encoding(codePage)
	if err != nil {
		return currentCharset{}, err
	}
	if charset == nil {
		return currentCharset{}, errors.New("telnet: ianaindex: unsupported character set " + codePage)
	}
	name, err := ianaindex.IANA.Name(charset)
	if err != nil {
		return currentCharset{}, err
	}

	encoder := charset.NewEncoder()
	var decoder coder

	if strings.ToLower(codePage) == "us-ascii" {
		// Allow the remote to send us UTF-8 even if we think we're ascii. We'll be good citizens
		// and only send ASCII.
		decoder = encoding.Replacement.NewEncoder()
	} else {
		decoder = charset.NewDecoder()
	}

	return currentCharset{
		encoder: encoder,
		decoder: decoder,
		name:    name,
	}, nil
}

// SetNegotiatedCharset installs a new CHARSET-negotiated character set,
// the result of a successful CHARSET subnegotiation.
func (c *Charset) SetNegotiatedCharset(codePage string) error {
	charset, err := c.buildCharset(codePage)
	if err != nil {
		return err
	}

	c.negotiatedLock.Lock()
	defer c.negotiatedLock.Unlock()

	c.negotiated = charset
	return nil
}
