package mc3e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryCode_SetA_AllFamilies(t *testing.T) {
	families := []PlcFamily{FamilyQ, FamilyL, FamilyQnA, FamilyIQL, FamilyIQR}
	for _, f := range families {
		code, base, err := binaryCode(f, "D")
		assert.NoError(t, err, "D should be permitted on %s", f)
		assert.Equal(t, byte(0xA8), code)
		assert.Equal(t, base10, base)
	}
}

func TestAsciiCode_Padding(t *testing.T) {
	code, base, err := asciiCodeOf(FamilyQ, "D")
	assert.NoError(t, err)
	assert.Equal(t, "D*", code)
	assert.Equal(t, base10, base)

	code, _, err = asciiCodeOf(FamilyQ, "ZR")
	assert.NoError(t, err)
	assert.Equal(t, "ZR", code)
}

func TestAccessKind(t *testing.T) {
	kind, err := accessKind(FamilyQ, "D")
	assert.NoError(t, err)
	assert.Equal(t, AccessWord, kind)

	kind, err = accessKind(FamilyQ, "X")
	assert.NoError(t, err)
	assert.Equal(t, AccessBit, kind)

	kind, err = accessKind(FamilyIQR, "LTS")
	assert.NoError(t, err)
	assert.Equal(t, AccessDWord, kind)

	// W is hex-addressed like the bit devices but is itself word-addressed.
	kind, err = accessKind(FamilyQ, "W")
	assert.NoError(t, err)
	assert.Equal(t, AccessWord, kind)
}

// TestFamilyGating checks that every Set B mnemonic fails with
// DeviceCodeError on every family other than iQ-R.
func TestFamilyGating(t *testing.T) {
	setB := []string{"LTS", "LTC", "LTN", "LSTS", "LSTC", "LSTN", "LCS", "LCC", "LCN", "LZ", "RD"}
	nonIQR := []PlcFamily{FamilyQ, FamilyL, FamilyQnA, FamilyIQL}

	for _, mnemonic := range setB {
		_, _, err := binaryCode(FamilyIQR, mnemonic)
		assert.NoError(t, err, "%s should be permitted on iQ-R", mnemonic)

		for _, family := range nonIQR {
			_, _, err := binaryCode(family, mnemonic)
			assert.Error(t, err, "%s should not be permitted on %s", mnemonic, family)
			var deviceErr *DeviceCodeError
			assert.ErrorAs(t, err, &deviceErr)
		}
	}
}

func TestLookupDevice_UnknownMnemonic(t *testing.T) {
	_, _, err := binaryCode(FamilyQ, "ZZ")
	assert.Error(t, err)
	var deviceErr *DeviceCodeError
	assert.ErrorAs(t, err, &deviceErr)
}

func TestSetA_NumericBases(t *testing.T) {
	hexDevices := []string{"X", "Y", "B", "W", "SB", "SW", "DX", "DY", "ZR"}
	for _, m := range hexDevices {
		_, base, err := binaryCode(FamilyQ, m)
		assert.NoError(t, err)
		assert.Equal(t, base16, base, "%s should use hex", m)
	}

	decimalDevices := []string{"SM", "SD", "M", "L", "F", "V", "D", "TS", "TC", "TN", "SS", "SC", "SN", "CS", "CC", "CN", "R"}
	for _, m := range decimalDevices {
		_, base, err := binaryCode(FamilyQ, m)
		assert.NoError(t, err)
		assert.Equal(t, base10, base, "%s should use decimal", m)
	}
}
