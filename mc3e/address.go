package mc3e

import (
	"strconv"
	"strings"
)

// deviceRef is a resolved device reference: the mnemonic's descriptor plus
// a parsed numeric address, ready to be encoded onto the wire by the frame
// builder.
type deviceRef struct {
	mnemonic string
	device   *deviceDescriptor
	number   int64
}

// parseAddress splits a device string such as "D1000", "X0x1A", "ZR100",
// or "LTS5" into its leading alphabetic mnemonic and numeric literal, then
// resolves the mnemonic against the device table for family and parses the
// literal. A "0x"/"0X" prefixed literal always parses as hex regardless of
// the device's declared base; otherwise the literal parses in the device's
// own base. The prefix only changes how the literal is read: the parsed
// number is a plain integer, which binary framing sends as a little-endian
// integer and ASCII framing sends as zero-padded hex.
func parseAddress(family PlcFamily, device string) (deviceRef, error) {
	mnemonic, literal := splitMnemonic(device)
	if mnemonic == "" {
		return deviceRef{}, &DeviceCodeError{Device: device, Reason: "missing device mnemonic"}
	}
	d, err := lookupDevice(family, mnemonic)
	if err != nil {
		return deviceRef{}, err
	}
	if literal == "" {
		return deviceRef{}, &DeviceCodeError{Device: device, Reason: "missing numeric address"}
	}

	var number int64
	if hasHexPrefix(literal) {
		number, err = strconv.ParseInt(literal[2:], 16, 64)
	} else {
		number, err = strconv.ParseInt(literal, int(d.base), 64)
	}
	if err != nil {
		return deviceRef{}, &DeviceCodeError{Device: device, Reason: "unparsable numeric address: " + literal}
	}

	return deviceRef{mnemonic: mnemonic, device: d, number: number}, nil
}

func hasHexPrefix(s string) bool {
	return len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func splitMnemonic(device string) (mnemonic, literal string) {
	i := 0
	for i < len(device) && isAlpha(device[i]) {
		i++
	}
	return strings.ToUpper(device[:i]), device[i:]
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// formatAddress renders (mnemonic, number) back into the canonical device
// string form, for symmetry with parseAddress and for diagnostics. Hex-base
// devices get an explicit 0x prefix so hex digits a-f cannot be read back as
// part of the mnemonic.
func formatAddress(family PlcFamily, mnemonic string, number int64) (string, error) {
	d, err := lookupDevice(family, mnemonic)
	if err != nil {
		return "", err
	}
	if d.base == base16 {
		return mnemonic + "0x" + strconv.FormatInt(number, 16), nil
	}
	return mnemonic + strconv.FormatInt(number, 10), nil
}
