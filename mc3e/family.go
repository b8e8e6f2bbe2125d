package mc3e

// PlcFamily is the PLC CPU family a Session talks to. It governs which
// device mnemonics are valid, which subheader/response layout applies, and
// the width of device numeric addresses on the wire.
type PlcFamily int

const (
	// FamilyQ is the MELSEC-Q series.
	FamilyQ PlcFamily = iota
	// FamilyL is the MELSEC-L series.
	FamilyL
	// FamilyQnA is the MELSEC QnA series.
	FamilyQnA
	// FamilyIQL is the MELSEC iQ-L series.
	FamilyIQL
	// FamilyIQR is the MELSEC iQ-R series. Uses the extended response
	// header and wider device numeric addresses.
	FamilyIQR
)

func (f PlcFamily) String() string {
	switch f {
	case FamilyQ:
		return "Q"
	case FamilyL:
		return "L"
	case FamilyQnA:
		return "QnA"
	case FamilyIQL:
		return "iQ-L"
	case FamilyIQR:
		return "iQ-R"
	default:
		return "unknown"
	}
}

// ParsePlcFamily maps a family tag string to a PlcFamily. Callers that
// accept a PLC family from outside the program (config files, CLI flags)
// should go through this rather than constructing PlcFamily values
// directly, so an invalid tag surfaces as PLCTypeError.
func ParsePlcFamily(tag string) (PlcFamily, error) {
	switch tag {
	case "Q":
		return FamilyQ, nil
	case "L":
		return FamilyL, nil
	case "QnA":
		return FamilyQnA, nil
	case "iQ-L":
		return FamilyIQL, nil
	case "iQ-R":
		return FamilyIQR, nil
	default:
		return 0, &PLCTypeError{Tag: tag}
	}
}

// extendedResponseHeader reports whether this family's reply frames carry
// the iQ-R/iQ-L extended header, 4 bytes (binary) / 8 hex chars (ASCII)
// longer than the classic families.
func (f PlcFamily) extendedResponseHeader() bool {
	return f == FamilyIQR || f == FamilyIQL
}

// extendedDeviceAddress reports whether device numeric addresses on this
// family are 4 bytes/8 hex chars wide instead of the classic 3 bytes/6 hex
// chars. Only iQ-R uses the extended device-reference command format.
func (f PlcFamily) extendedDeviceAddress() bool {
	return f == FamilyIQR
}
