package mc3e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseAddress_Basic(t *testing.T) {
	ref, err := parseAddress(FamilyQ, "D1000")
	assert.NoError(t, err)
	assert.Equal(t, "D", ref.mnemonic)
	assert.Equal(t, int64(1000), ref.number)

	ref, err = parseAddress(FamilyQ, "ZR100")
	assert.NoError(t, err)
	assert.Equal(t, "ZR", ref.mnemonic)
	assert.Equal(t, int64(0x100), ref.number)

	ref, err = parseAddress(FamilyIQR, "LTS5")
	assert.NoError(t, err)
	assert.Equal(t, "LTS", ref.mnemonic)
	assert.Equal(t, int64(5), ref.number)
}

func TestParseAddress_HexPrefixOverride(t *testing.T) {
	// X is a hex-base device; its own base already parses "1A" as hex, but
	// an explicit 0x prefix must also work and parse the same value.
	ref, err := parseAddress(FamilyQ, "X1A")
	assert.NoError(t, err)
	assert.Equal(t, int64(0x1A), ref.number)

	ref, err = parseAddress(FamilyQ, "X0x1A")
	assert.NoError(t, err)
	assert.Equal(t, int64(0x1A), ref.number)

	// D is a decimal-base device; 0x prefix still forces hex parsing.
	ref, err = parseAddress(FamilyQ, "D0x10")
	assert.NoError(t, err)
	assert.Equal(t, int64(16), ref.number)
}

func TestParseAddress_Errors(t *testing.T) {
	_, err := parseAddress(FamilyQ, "QQ100")
	assert.Error(t, err)

	_, err = parseAddress(FamilyQ, "D")
	assert.Error(t, err)

	_, err = parseAddress(FamilyQ, "DABC")
	assert.Error(t, err)
}

// TestDeviceRefSymmetry checks that for every (family, mnemonic, number)
// where the mnemonic is permitted, parsing what formatAddress emits for it
// returns the same mnemonic and number back.
func TestDeviceRefSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		family := rapid.SampledFrom([]PlcFamily{FamilyQ, FamilyIQR}).Draw(t, "family")
		mnemonic := rapid.SampledFrom(permittedMnemonics(family)).Draw(t, "mnemonic")
		number := rapid.Int64Range(0, 0xFFFFF).Draw(t, "number")

		emitted, err := formatAddress(family, mnemonic, number)
		if err != nil {
			t.Fatalf("formatAddress: %v", err)
		}
		ref, err := parseAddress(family, emitted)
		if err != nil {
			t.Fatalf("parseAddress(%q): %v", emitted, err)
		}
		if ref.mnemonic != mnemonic || ref.number != number {
			t.Fatalf("round trip mismatch: got (%s, %d), want (%s, %d)", ref.mnemonic, ref.number, mnemonic, number)
		}
	})
}

func permittedMnemonics(family PlcFamily) []string {
	out := make([]string, 0, len(deviceTable))
	for m, d := range deviceTable {
		if d.permittedOn(family) {
			out = append(out, m)
		}
	}
	return out
}
