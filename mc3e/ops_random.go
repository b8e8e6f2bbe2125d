package mc3e

const (
	cmdRandomRead        uint16 = 0x0403
	cmdRandomWrite       uint16 = 0x1402
	subRandomWord        uint16 = 0x0000
	subRandomBit         uint16 = 0x0001
	randomAccessMaxCount        = 192
)

func (s *Session) resolveDeviceRefs(heads []string) ([]deviceRef, error) {
	refs := make([]deviceRef, len(heads))
	for i, h := range heads {
		ref, err := s.resolveDeviceRef(h)
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}
	return refs, nil
}

// RandomRead reads an arbitrary set of word devices and dword devices in a
// single round trip (command 0x0403/0x0000). The protocol caps each count
// at 192; exceeding that is rejected by the PLC via a non-zero completion
// code, not validated client-side here.
func (s *Session) RandomRead(words, dwords []string) ([]int16, []int32, error) {
	wordRefs, err := s.resolveDeviceRefs(words)
	if err != nil {
		return nil, nil, err
	}
	dwordRefs, err := s.resolveDeviceRefs(dwords)
	if err != nil {
		return nil, nil, err
	}

	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU8(&body, uint8(len(wordRefs)))
	enc.putU8(&body, uint8(len(dwordRefs)))
	for _, r := range wordRefs {
		enc.putDeviceRef(&body, s.family, r)
	}
	for _, r := range dwordRefs {
		enc.putDeviceRef(&body, s.family, r)
	}

	respBody, err := s.roundTrip("randomread", cmdRandomRead, subRandomWord, body)
	if err != nil {
		return nil, nil, err
	}

	rest := respBody
	wordValues := make([]int16, 0, len(wordRefs))
	for range wordRefs {
		var v uint16
		v, rest, err = enc.getU16(rest)
		if err != nil {
			return nil, nil, &TransportError{Op: "randomread", Err: err}
		}
		wordValues = append(wordValues, int16(twosComplement(uint64(v), 16)))
	}
	dwordValues := make([]int32, 0, len(dwordRefs))
	for range dwordRefs {
		var v uint32
		v, rest, err = enc.getU32(rest)
		if err != nil {
			return nil, nil, &TransportError{Op: "randomread", Err: err}
		}
		dwordValues = append(dwordValues, int32(twosComplement(uint64(v), 32)))
	}
	return wordValues, dwordValues, nil
}

// RandomWrite writes an arbitrary set of word devices and dword devices in
// a single round trip (command 0x1402/0x0000).
func (s *Session) RandomWrite(words []string, wordValues []int16, dwords []string, dwordValues []int32) error {
	if len(words) != len(wordValues) || len(dwords) != len(dwordValues) {
		return &DeviceCodeError{Device: "randomwrite", Reason: "device and value count mismatch"}
	}
	wordRefs, err := s.resolveDeviceRefs(words)
	if err != nil {
		return err
	}
	dwordRefs, err := s.resolveDeviceRefs(dwords)
	if err != nil {
		return err
	}

	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU8(&body, uint8(len(wordRefs)))
	enc.putU8(&body, uint8(len(dwordRefs)))
	for i, r := range wordRefs {
		enc.putDeviceRef(&body, s.family, r)
		enc.putU16(&body, uint16(asTwosComplementBits(int64(wordValues[i]), 16)))
	}
	for i, r := range dwordRefs {
		enc.putDeviceRef(&body, s.family, r)
		enc.putU32(&body, uint32(asTwosComplementBits(int64(dwordValues[i]), 32)))
	}

	_, err = s.roundTrip("randomwrite", cmdRandomWrite, subRandomWord, body)
	return err
}

// RandomWriteBitUnits writes a 0/1 value to each of an arbitrary set of bit
// devices (command 0x1402/0x0001). Classic Q-series CPUs reject this
// command family outright; the PLC surfaces that as a completion code this
// module maps to UnsupportedCommandError.
func (s *Session) RandomWriteBitUnits(bits []string, values []byte) error {
	if len(bits) != len(values) {
		return &DeviceCodeError{Device: "randomwrite_bitunits", Reason: "device and value count mismatch"}
	}
	refs, err := s.resolveDeviceRefs(bits)
	if err != nil {
		return err
	}

	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU8(&body, uint8(len(refs)))
	for i, r := range refs {
		enc.putDeviceRef(&body, s.family, r)
		enc.putU16(&body, uint16(values[i]))
	}

	_, err = s.roundTrip("randomwrite_bitunits", cmdRandomWrite, subRandomBit, body)
	return err
}
