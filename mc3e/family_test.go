package mc3e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlcFamily(t *testing.T) {
	cases := map[string]PlcFamily{
		"Q":    FamilyQ,
		"L":    FamilyL,
		"QnA":  FamilyQnA,
		"iQ-L": FamilyIQL,
		"iQ-R": FamilyIQR,
	}
	for tag, want := range cases {
		got, err := ParsePlcFamily(tag)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParsePlcFamily_Invalid(t *testing.T) {
	_, err := ParsePlcFamily("Q03UDV")
	assert.Error(t, err)
	var plcErr *PLCTypeError
	assert.ErrorAs(t, err, &plcErr)
}

func TestExtendedHeaderAndAddress(t *testing.T) {
	assert.True(t, FamilyIQR.extendedResponseHeader())
	assert.True(t, FamilyIQL.extendedResponseHeader())
	assert.False(t, FamilyQ.extendedResponseHeader())

	assert.True(t, FamilyIQR.extendedDeviceAddress())
	assert.False(t, FamilyIQL.extendedDeviceAddress())
	assert.False(t, FamilyQ.extendedDeviceAddress())
}
