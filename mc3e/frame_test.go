package mc3e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestFrameLengthInvariant checks that the len field always equals the
// byte/char count of everything from timer through the end of body.
func TestFrameLengthInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ct := rapid.SampledFrom([]CommType{Binary, Ascii}).Draw(t, "commtype")
		opts := DefaultAccessOptions()
		opts.CommType = ct

		bodyLen := rapid.IntRange(0, 64).Draw(t, "bodyLen")
		body := make([]byte, bodyLen)
		for i := range body {
			body[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
		}

		frame := buildRequest(opts, 0x0401, 0x0000, body)

		enc := encodingFor(ct)
		rest := frame
		_, rest, _ = enc.getSubheader(rest) // subheader
		_, rest, _ = enc.getU8(rest)  // network
		_, rest, _ = enc.getU8(rest)  // pc
		_, rest, _ = enc.getU16(rest) // moduleio
		_, rest, _ = enc.getU8(rest)  // modulesta
		lengthValue, rest, err := enc.getU16(rest)
		if err != nil {
			t.Fatalf("reading length field: %v", err)
		}

		if int(lengthValue) != len(rest) {
			t.Fatalf("length field %d does not match remainder length %d", lengthValue, len(rest))
		}
	})
}

// TestRemoteRunFrame checks that RemoteRun(clearMode=1, force=true) builds
// command 0x1001/0x0000 with body mode_flag=3, clear_mode=1.
func TestRemoteRunFrame(t *testing.T) {
	opts := DefaultAccessOptions()
	enc := encodingFor(opts.CommType)
	var body []byte
	enc.putU16(&body, modeFlag(true))
	enc.putU16(&body, 1)

	frame := buildRequest(opts, cmdRemoteRun, subRemote, body)

	want := []byte{
		0x50, 0x00, // subheader
		0x00,       // network
		0xFF,       // pc
		0xFF, 0x03, // moduleio
		0x00,       // modulesta
		0x0A, 0x00, // len = 10 (timer2+command2+subcommand2+body4)
		0x04, 0x00, // timer
		0x01, 0x10, // command 0x1001 LE
		0x00, 0x00, // subcommand
		0x03, 0x00, // mode_flag = 3 (forced)
		0x01, 0x00, // clear_mode = 1
	}
	assert.Equal(t, want, frame)
}

func TestBuildRequest_AsciiLength(t *testing.T) {
	// ASCII-framed BatchReadWordUnits("D100", 1).
	opts := DefaultAccessOptions()
	opts.CommType = Ascii
	ref, err := parseAddress(FamilyQ, "D100")
	assert.NoError(t, err)

	enc := encodingFor(opts.CommType)
	var body []byte
	enc.putDeviceRef(&body, FamilyQ, ref)
	enc.putU16(&body, 1)

	frame := buildRequest(opts, cmdBatchRead, subBatchWord, body)
	s := string(frame)

	// subheader(4) network(2) pc(2) moduleio(4) modulesta(2) = 14 chars of
	// fixed routing header before the len field.
	assert.Equal(t, "5000", s[0:4])
	assert.Equal(t, "0018", s[14:18]) // len = 24
	assert.Equal(t, "0004", s[18:22]) // timer
	assert.Equal(t, "0401", s[22:26]) // command
	assert.Equal(t, "0000", s[26:30]) // subcommand
	assert.Equal(t, "D*000064", s[30:38])
	assert.Equal(t, "0001", s[38:42]) // count
	assert.Equal(t, 42, len(s))
}
