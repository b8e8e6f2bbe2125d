package mc3e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestCodecRoundTrip checks that for all integers of width 8/16/32 and
// both signedness, decode(encode(v)) == v, in both binary and ascii modes.
func TestCodecRoundTrip(t *testing.T) {
	for _, ct := range []CommType{Binary, Ascii} {
		ct := ct
		t.Run(ct.String(), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				width := rapid.SampledFrom([]int{8, 16, 32}).Draw(t, "width")
				signed := rapid.Bool().Draw(t, "signed")
				enc := encodingFor(ct)

				var maxUnsigned uint64 = (uint64(1) << width) - 1
				u := rapid.Uint64Range(0, maxUnsigned).Draw(t, "value")

				var buf []byte
				var got uint64
				var err error
				switch width {
				case 8:
					enc.putU8(&buf, uint8(u))
					v, _, e := enc.getU8(buf)
					got, err = uint64(v), e
				case 16:
					enc.putU16(&buf, uint16(u))
					v, _, e := enc.getU16(buf)
					got, err = uint64(v), e
				case 32:
					enc.putU32(&buf, uint32(u))
					v, _, e := enc.getU32(buf)
					got, err = uint64(v), e
				}
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if got != u {
					t.Fatalf("round trip mismatch: got %d, want %d", got, u)
				}

				if signed {
					want := twosComplement(u, width)
					bits := asTwosComplementBits(want, width)
					if bits != u {
						t.Fatalf("twos complement round trip mismatch: got %d, want %d", bits, u)
					}
				}
			})
		})
	}
}

func TestTwosComplement(t *testing.T) {
	assert.Equal(t, int64(-1), twosComplement(0xFFFF, 16))
	assert.Equal(t, int64(32767), twosComplement(0x7FFF, 16))
	assert.Equal(t, int64(-32768), twosComplement(0x8000, 16))
	assert.Equal(t, int64(0), twosComplement(0x0000, 16))

	assert.Equal(t, int64(-1), twosComplement(0xFFFFFFFF, 32))
	assert.Equal(t, int64(2147483647), twosComplement(0x7FFFFFFF, 32))
}

func TestAsciiEncoding_Format(t *testing.T) {
	enc := asciiEncoding{}
	var buf []byte
	enc.putU16(&buf, 0x30D4)
	assert.Equal(t, "30D4", string(buf))

	buf = nil
	enc.putU8(&buf, 0x0A)
	assert.Equal(t, "0A", string(buf))

	buf = nil
	enc.putU32(&buf, 0x1234)
	assert.Equal(t, "00001234", string(buf))
}

func TestBinaryEncoding_LittleEndian(t *testing.T) {
	enc := binaryEncoding{}
	var buf []byte
	enc.putU16(&buf, 0x3039)
	assert.Equal(t, []byte{0x39, 0x30}, buf)

	buf = nil
	enc.putU32(&buf, 0x000003E8)
	assert.Equal(t, []byte{0xE8, 0x03, 0x00, 0x00}, buf)
}

func TestPutDeviceRef_Ordering(t *testing.T) {
	ref, err := parseAddress(FamilyQ, "D1000")
	assert.NoError(t, err)

	bin := binaryEncoding{}
	var buf []byte
	bin.putDeviceRef(&buf, FamilyQ, ref)
	// number (3 bytes LE) then device code (1 byte): binary puts the
	// number first, the opposite order from ascii.
	assert.Equal(t, []byte{0xE8, 0x03, 0x00, 0xA8}, buf)

	asc := asciiEncoding{}
	buf = nil
	asc.putDeviceRef(&buf, FamilyQ, ref)
	assert.Equal(t, "D*0003E8", string(buf))
}

func TestPutDeviceRef_ExtendedIQR(t *testing.T) {
	ref, err := parseAddress(FamilyIQR, "D1000")
	assert.NoError(t, err)

	bin := binaryEncoding{}
	var buf []byte
	bin.putDeviceRef(&buf, FamilyIQR, ref)
	assert.Equal(t, []byte{0xE8, 0x03, 0x00, 0x00, 0xA8, 0x00}, buf)
}
