package mc3e

const (
	cmdBatchRead  uint16 = 0x0401
	subBatchWord  uint16 = 0x0000
	subBatchBit   uint16 = 0x0001
	cmdBatchWrite uint16 = 0x1401
)

// resolveDeviceRef parses head against this session's PLC family and
// surfaces DeviceCodeError unchanged - every operation below funnels
// through it before touching the network.
func (s *Session) resolveDeviceRef(head string) (deviceRef, error) {
	return parseAddress(s.family, head)
}

// BatchReadWordUnits reads n consecutive word devices starting at head and
// returns them as signed 16-bit integers (command 0x0401/
// 0x0000).
func (s *Session) BatchReadWordUnits(head string, n int) ([]int16, error) {
	ref, err := s.resolveDeviceRef(head)
	if err != nil {
		return nil, err
	}
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putDeviceRef(&body, s.family, ref)
	enc.putU16(&body, uint16(n))

	respBody, err := s.roundTrip("batchread_wordunits", cmdBatchRead, subBatchWord, body)
	if err != nil {
		return nil, err
	}

	out := make([]int16, 0, n)
	rest := respBody
	for i := 0; i < n; i++ {
		var v uint16
		v, rest, err = enc.getU16(rest)
		if err != nil {
			return nil, &TransportError{Op: "batchread_wordunits", Err: err}
		}
		out = append(out, int16(twosComplement(uint64(v), 16)))
	}
	return out, nil
}

// BatchReadBitUnits reads n consecutive bit devices starting at head and
// returns them as a 0/1 byte per device (command 0x0401/0x0001).
func (s *Session) BatchReadBitUnits(head string, n int) ([]byte, error) {
	ref, err := s.resolveDeviceRef(head)
	if err != nil {
		return nil, err
	}
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putDeviceRef(&body, s.family, ref)
	enc.putU16(&body, uint16(n))

	respBody, err := s.roundTrip("batchread_bitunits", cmdBatchRead, subBatchBit, body)
	if err != nil {
		return nil, err
	}

	if s.opts.CommType == Ascii {
		return unpackBitsAscii(respBody, n), nil
	}
	return unpackBitsBinary(respBody, n), nil
}

// BatchWriteWordUnits writes values to n consecutive word devices starting
// at head (command 0x1401/0x0000).
func (s *Session) BatchWriteWordUnits(head string, values []int16) error {
	ref, err := s.resolveDeviceRef(head)
	if err != nil {
		return err
	}
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putDeviceRef(&body, s.family, ref)
	enc.putU16(&body, uint16(len(values)))
	for _, v := range values {
		enc.putU16(&body, uint16(asTwosComplementBits(int64(v), 16)))
	}

	_, err = s.roundTrip("batchwrite_wordunits", cmdBatchWrite, subBatchWord, body)
	return err
}

// BatchWriteBitUnits writes a 0/1 bit sequence to n consecutive bit devices
// starting at head (command 0x1401/0x0001).
func (s *Session) BatchWriteBitUnits(head string, bits []byte) error {
	ref, err := s.resolveDeviceRef(head)
	if err != nil {
		return err
	}
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putDeviceRef(&body, s.family, ref)
	enc.putU16(&body, uint16(len(bits)))

	if s.opts.CommType == Ascii {
		body = append(body, packBitsAscii(bits)...)
	} else {
		body = append(body, packBitsBinary(bits)...)
	}

	_, err = s.roundTrip("batchwrite_bitunits", cmdBatchWrite, subBatchBit, body)
	return err
}
