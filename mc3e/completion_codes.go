package mc3e

// completionCodeEntry describes one non-zero PLC completion (end) code: the
// taxonomy bucket it belongs to and a short description lifted from the
// MELSEC communication protocol reference.
type completionCodeEntry struct {
	kind    string
	message string
}

// completionCodeTable is the static status->error mapping, kept table-driven
// rather than an if-chain interleaved with frame parsing. Codes not present
// here still produce an MCProtocolError, just with a generic message - the
// table only needs entries for codes this module documents.
var completionCodeTable = map[uint16]completionCodeEntry{
	0xC050: {"protocol", "ASCII/BIN mismatch"},
	0xC051: {"protocol", "read/write count out of range"},
	0xC052: {"protocol", "read/write count out of range"},
	0xC053: {"protocol", "read/write count out of range"},
	0xC054: {"protocol", "read/write count out of range"},
	0xC056: {"protocol", "device out of range"},
	0xC058: {"protocol", "point count mismatch"},
	0xC059: {"unsupported", "invalid command"},
	0xC05C: {"unsupported", "subcommand error"},
	0xC05F: {"unsupported", "not executable on target"},
	0xC060: {"protocol", "data error"},
	0xC061: {"protocol", "data error"},
	0xC06F: {"protocol", "mode mismatch"},
	0xC070: {"protocol", "device memory extension unavailable"},
	0xC0B5: {"protocol", "unsupported data specified"},
	0xC200: {"protocol", "remote password error"},
	0xC201: {"protocol", "password lock/state error"},
	0xC204: {"protocol", "password lock/state error"},
}

// classifyCompletionCode turns a non-zero completion code into the error to
// surface to the caller. "unsupported" codes become UnsupportedCommandError
// so callers can special-case a rejected command family; everything else
// becomes MCProtocolError carrying the raw code.
func classifyCompletionCode(code uint16, family PlcFamily, operation string) error {
	entry, ok := completionCodeTable[code]
	if !ok {
		return &MCProtocolError{Code: code, Kind: "protocol", Message: "unrecognized completion code"}
	}
	if entry.kind == "unsupported" {
		return &UnsupportedCommandError{Operation: operation, Family: family}
	}
	return &MCProtocolError{Code: code, Kind: entry.kind, Message: entry.message}
}
