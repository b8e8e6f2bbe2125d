package mc3e

// buildRequest assembles a 3E request frame: header,
// back-patched length field, timer/command/subcommand, then body.
func buildRequest(opts AccessOptions, command, subcommand uint16, body []byte) []byte {
	enc := encodingFor(opts.CommType)

	var buf []byte
	enc.putSubheader(&buf, opts.Subheader)
	enc.putU8(&buf, opts.Network)
	enc.putU8(&buf, opts.PC)
	enc.putU16(&buf, opts.DestModuleIO)
	enc.putU8(&buf, opts.DestModuleSta)

	lenFieldStart := len(buf)
	enc.putU16(&buf, 0) // placeholder, back-patched below
	remainderStart := len(buf)

	enc.putU16(&buf, opts.Timer)
	enc.putU16(&buf, command)
	enc.putU16(&buf, subcommand)
	buf = append(buf, body...)

	remainderLen := uint16(len(buf) - remainderStart)
	var lenField []byte
	enc.putU16(&lenField, remainderLen)
	copy(buf[lenFieldStart:remainderStart], lenField)

	return buf
}

// deviceRefWireLen reports how many wire bytes/chars one device reference
// (number + device code) occupies for the given family and comm type.
func deviceRefWireLen(family PlcFamily, ct CommType) int {
	numberBytes := 3
	codeBytes := 1
	if family.extendedDeviceAddress() {
		numberBytes = 4
		codeBytes = 2
	}
	if ct == Ascii {
		return (numberBytes + codeBytes) * 2
	}
	return numberBytes + codeBytes
}
