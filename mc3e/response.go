package mc3e

import "fmt"

// response is the parsed shape of a reply frame: routing header fields,
// completion status, and the raw body slice (with any iQ-R/iQ-L extended
// header already stripped).
type response struct {
	subheader     uint16
	network       byte
	pc            byte
	moduleIO      uint16
	moduleSta     byte
	length        uint16
	status        uint16
	body          []byte
}

// parseResponse locates the status field - which sits at a fixed offset
// after the routing header, longer by 4 bytes/8 chars for iQ-R/iQ-L - and
// splits the remainder into status and body. It does not itself map a
// non-zero status to an error; callers do that with classifyCompletionCode
// so the mapping stays table-driven.
func parseResponse(family PlcFamily, ct CommType, data []byte) (*response, error) {
	enc := encodingFor(ct)

	subheader, rest, err := enc.getSubheader(data)
	if err != nil {
		return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete frame: %w", err)}
	}
	network, rest, err := enc.getU8(rest)
	if err != nil {
		return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete frame: %w", err)}
	}
	pc, rest, err := enc.getU8(rest)
	if err != nil {
		return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete frame: %w", err)}
	}
	moduleIO, rest, err := enc.getU16(rest)
	if err != nil {
		return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete frame: %w", err)}
	}
	moduleSta, rest, err := enc.getU8(rest)
	if err != nil {
		return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete frame: %w", err)}
	}
	length, rest, err := enc.getU16(rest)
	if err != nil {
		return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete frame: %w", err)}
	}
	status, rest, err := enc.getU16(rest)
	if err != nil {
		return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete frame: %w", err)}
	}

	if family.extendedResponseHeader() {
		extra := 4
		if ct == Ascii {
			extra = 8
		}
		if len(rest) < extra {
			return nil, &TransportError{Op: "parse response", Err: fmt.Errorf("incomplete extended header")}
		}
		rest = rest[extra:]
	}

	return &response{
		subheader: subheader,
		network:   network,
		pc:        pc,
		moduleIO:  moduleIO,
		moduleSta: moduleSta,
		length:    length,
		status:    status,
		body:      rest,
	}, nil
}

// frameLengthPrefixLen reports how many bytes/chars of a reply must be read
// before the len field is fully known: subheader+network+pc+moduleio+
// modulesta+len, 9 bytes binary / 18 chars ascii.
func frameLengthPrefixLen(ct CommType) int {
	if ct == Ascii {
		return 18
	}
	return 9
}

// decodeFrameRemaining parses the len field out of a prefix of
// frameLengthPrefixLen bytes/chars and returns how many more bytes/chars
// follow it (status, any extended header, and body).
func decodeFrameRemaining(ct CommType) func(prefix []byte) (int, error) {
	enc := encodingFor(ct)
	width := 2
	if ct == Ascii {
		width = 4
	}
	return func(prefix []byte) (int, error) {
		v, _, err := enc.getU16(prefix[len(prefix)-width:])
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}
}

// responseHeaderLen reports the byte/char length of a reply's fixed header
// through the status field (inclusive), not counting any iQ-R/iQ-L
// extension. The receive path does not use it: Session reads the frame with
// frameLengthPrefixLen, which stops at the len field.
func responseHeaderLen(family PlcFamily, ct CommType) int {
	// subheader(2) + network(1) + pc(1) + moduleio(2) + modulesta(1) + len(2) + status(2) = 11 bytes binary
	n := 11
	if ct == Ascii {
		n *= 2
	}
	return n
}
