package mc3e

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// encoding abstracts the two wire framings: every operation is written
// once against it, and CommType selects which implementation a Session
// plugs in. wordUnitSize reports how many wire bytes one 16-bit device
// word occupies (2 for binary, 4 hex chars counted as bytes of output for
// ascii).
type encoding interface {
	putU8(buf *[]byte, v uint8)
	putU16(buf *[]byte, v uint16)
	putU32(buf *[]byte, v uint32)
	putSubheader(buf *[]byte, v uint16)
	putDeviceRef(buf *[]byte, family PlcFamily, ref deviceRef)
	getU8(data []byte) (uint8, []byte, error)
	getU16(data []byte) (uint16, []byte, error)
	getU32(data []byte) (uint32, []byte, error)
	getSubheader(data []byte) (uint16, []byte, error)
	wordUnitSize() int // bytes (binary) or characters (ascii) per 16-bit word
	unitLen(n int) int // bytes/chars accounting for n raw bytes of logical data
}

func encodingFor(ct CommType) encoding {
	if ct == Ascii {
		return asciiEncoding{}
	}
	return binaryEncoding{}
}

// --- binary ---

type binaryEncoding struct{}

func (binaryEncoding) putU8(buf *[]byte, v uint8) {
	*buf = append(*buf, v)
}

func (binaryEncoding) putU16(buf *[]byte, v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	*buf = append(*buf, tmp[:]...)
}

func (binaryEncoding) putU32(buf *[]byte, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	*buf = append(*buf, tmp[:]...)
}

// putSubheader writes the fixed 2-byte frame tag. Unlike every other
// multi-byte field it is not a little-endian number - it's a literal byte
// pair, 0x50,0x00 for the 3E frame - so it is written high byte first
// regardless of the little-endian convention the rest of binary mode uses.
func (binaryEncoding) putSubheader(buf *[]byte, v uint16) {
	*buf = append(*buf, byte(v>>8), byte(v))
}

func (e binaryEncoding) putDeviceRef(buf *[]byte, family PlcFamily, ref deviceRef) {
	// Binary ordering: number (LE, 3 or 4 bytes) then device code (1 or 2
	// bytes). This ordering is reversed from ASCII - a wire quirk, not a
	// bug.
	if family.extendedDeviceAddress() {
		e.putU32(buf, uint32(ref.number))
		*buf = append(*buf, ref.device.binary, 0x00)
	} else {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(ref.number))
		*buf = append(*buf, tmp[0], tmp[1], tmp[2])
		*buf = append(*buf, ref.device.binary)
	}
}

func (binaryEncoding) getU8(data []byte) (uint8, []byte, error) {
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("mc3e: short buffer reading u8")
	}
	return data[0], data[1:], nil
}

func (binaryEncoding) getU16(data []byte) (uint16, []byte, error) {
	if len(data) < 2 {
		return 0, nil, fmt.Errorf("mc3e: short buffer reading u16")
	}
	return binary.LittleEndian.Uint16(data[:2]), data[2:], nil
}

// getSubheader reads the fixed 2-byte frame tag high byte first, the
// mirror of putSubheader.
func (binaryEncoding) getSubheader(data []byte) (uint16, []byte, error) {
	if len(data) < 2 {
		return 0, nil, fmt.Errorf("mc3e: short buffer reading subheader")
	}
	return binary.BigEndian.Uint16(data[:2]), data[2:], nil
}

func (binaryEncoding) getU32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, fmt.Errorf("mc3e: short buffer reading u32")
	}
	return binary.LittleEndian.Uint32(data[:4]), data[4:], nil
}

func (binaryEncoding) wordUnitSize() int { return 2 }

func (binaryEncoding) unitLen(n int) int { return n }

// --- ascii ---

// asciiEncoding renders every field as uppercase, zero-padded hex
// characters: doubling all field widths versus binary.
type asciiEncoding struct{}

func putHex(buf *[]byte, v uint64, chars int) {
	s := strconv.FormatUint(v, 16)
	if len(s) < chars {
		s = strings.Repeat("0", chars-len(s)) + s
	}
	*buf = append(*buf, []byte(strings.ToUpper(s))...)
}

func (asciiEncoding) putU8(buf *[]byte, v uint8) {
	putHex(buf, uint64(v), 2)
}

func (asciiEncoding) putU16(buf *[]byte, v uint16) {
	putHex(buf, uint64(v), 4)
}

func (asciiEncoding) putU32(buf *[]byte, v uint32) {
	putHex(buf, uint64(v), 8)
}

// putSubheader renders the same 4 hex characters putU16 would - ASCII mode
// has no byte order to get wrong.
func (asciiEncoding) putSubheader(buf *[]byte, v uint16) {
	putHex(buf, uint64(v), 4)
}

func (e asciiEncoding) putDeviceRef(buf *[]byte, family PlcFamily, ref deviceRef) {
	// ASCII ordering: device code string then number, zero-padded hex -
	// the mirror image of binary's ordering.
	*buf = append(*buf, []byte(ref.device.ascii)...)
	chars := 6
	if family.extendedDeviceAddress() {
		chars = 8
	}
	putHex(buf, uint64(ref.number), chars)
}

func getHex(data []byte, chars int) (uint64, []byte, error) {
	if len(data) < chars {
		return 0, nil, fmt.Errorf("mc3e: short buffer reading %d hex chars", chars)
	}
	v, err := strconv.ParseUint(string(data[:chars]), 16, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("mc3e: invalid hex field %q: %w", data[:chars], err)
	}
	return v, data[chars:], nil
}

func (asciiEncoding) getU8(data []byte) (uint8, []byte, error) {
	v, rest, err := getHex(data, 2)
	return uint8(v), rest, err
}

func (asciiEncoding) getU16(data []byte) (uint16, []byte, error) {
	v, rest, err := getHex(data, 4)
	return uint16(v), rest, err
}

// getSubheader reads the same 4 hex characters getU16 would.
func (asciiEncoding) getSubheader(data []byte) (uint16, []byte, error) {
	v, rest, err := getHex(data, 4)
	return uint16(v), rest, err
}

func (asciiEncoding) getU32(data []byte) (uint32, []byte, error) {
	v, rest, err := getHex(data, 8)
	return uint32(v), rest, err
}

func (asciiEncoding) wordUnitSize() int { return 4 }

func (asciiEncoding) unitLen(n int) int { return n * 2 }

// --- signed integer helpers ---

// twosComplement reinterprets an unsigned value of the given bit width as
// signed when the sign bit is set.
func twosComplement(u uint64, width int) int64 {
	signBit := uint64(1) << (width - 1)
	mask := (uint64(1) << width) - 1
	u &= mask
	if u&signBit != 0 {
		return int64(u) - int64(mask) - 1
	}
	return int64(u)
}

// asTwosComplementBits encodes a signed value as its unsigned two's
// complement bit pattern of the given width, ready to hand to putU16/putU32.
func asTwosComplementBits(v int64, width int) uint64 {
	mask := (uint64(1) << width) - 1
	return uint64(v) & mask
}
