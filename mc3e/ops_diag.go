package mc3e

import (
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
)

const (
	cmdReadCPUType uint16 = 0x0101
	cmdEchoTest    uint16 = 0x0619
	subDiag        uint16 = 0x0000
)

// ReadCPUType queries the CPU model (command 0x0101/0x0000, empty body).
// The reply body is 16 bytes of space-padded ASCII name followed by 2
// bytes of CPU type code; the name is returned trimmed and the code as an
// uppercase hex string.
func (s *Session) ReadCPUType() (name string, code string, err error) {
	respBody, err := s.roundTrip("read_cputype", cmdReadCPUType, subDiag, nil)
	if err != nil {
		return "", "", err
	}

	// The name is already ASCII text, so unlike numeric fields it keeps
	// its 16-character width in both framings; only the trailing CPU code
	// (a genuinely numeric field) doubles to 4 hex chars in ASCII mode.
	const nameLen = 16
	codeLen := 2
	if s.opts.CommType == Ascii {
		codeLen = 4
	}
	if len(respBody) < nameLen+codeLen {
		return "", "", &TransportError{Op: "read_cputype", Err: errShortReply}
	}

	rawName := respBody[:nameLen]
	rawCode := respBody[nameLen : nameLen+codeLen]

	name = strings.TrimRight(string(rawName), " ")
	if s.opts.CommType == Ascii {
		// Already hex text on the wire in ASCII framing - just normalize case.
		return name, strings.ToUpper(string(rawCode)), nil
	}
	return name, strings.ToUpper(hex.EncodeToString(rawCode)), nil
}

var errShortReply = errors.New("short reply")

// EchoTest sends data through the PLC's loopback diagnostic and returns the
// echoed length and payload (command 0x0619/0x0000). data must be pure
// ASCII; non-ASCII input fails client-side before anything is sent.
func (s *Session) EchoTest(data string) (int, string, error) {
	for _, r := range data {
		if r > unicode.MaxASCII {
			return 0, "", &DeviceCodeError{Device: "echo_test", Reason: "data must be ASCII"}
		}
	}

	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, uint16(len(data)))
	body = append(body, []byte(data)...)

	respBody, err := s.roundTrip("echo_test", cmdEchoTest, subDiag, body)
	if err != nil {
		return 0, "", err
	}

	echoedLen, rest, err := enc.getU16(respBody)
	if err != nil {
		return 0, "", &TransportError{Op: "echo_test", Err: err}
	}
	if len(rest) < int(echoedLen) {
		return 0, "", &TransportError{Op: "echo_test", Err: errShortReply}
	}
	return int(echoedLen), string(rest[:echoedLen]), nil
}
