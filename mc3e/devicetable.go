package mc3e

// AccessKind is the wire shape a device mnemonic reads/writes as: a single
// bit, a 16-bit word, or a 32-bit double word.
type AccessKind int

const (
	AccessBit AccessKind = iota
	AccessWord
	AccessDWord
)

// numericBase is the radix used to parse/emit a device's numeric address
// when its literal does not carry an explicit 0x prefix.
type numericBase int

const (
	base10 numericBase = 10
	base16 numericBase = 16
)

// deviceDescriptor is an immutable record describing one device mnemonic:
// its wire code in both framings, numeric base, access width, and which
// PLC families accept it.
type deviceDescriptor struct {
	mnemonic  string
	binary    byte
	ascii     string // always two characters; a one-letter mnemonic gets a trailing '*' ("D" -> "D*")
	base      numericBase
	access    AccessKind
	allFamily bool            // Set A: permitted on every family
	families  map[PlcFamily]bool // only consulted when allFamily is false
}

func asciiCode(mnemonic string) string {
	if len(mnemonic) >= 2 {
		return mnemonic[:2]
	}
	return mnemonic + "*"
}

// deviceTable is the static flat table keyed by mnemonic, covering the
// full Set A/Set B mnemonic lists.
var deviceTable = buildDeviceTable()

func buildDeviceTable() map[string]*deviceDescriptor {
	t := make(map[string]*deviceDescriptor)

	add := func(mnemonic string, code byte, base numericBase, access AccessKind) {
		t[mnemonic] = &deviceDescriptor{
			mnemonic:  mnemonic,
			binary:    code,
			ascii:     asciiCode(mnemonic),
			base:      base,
			access:    access,
			allFamily: true,
		}
	}
	addIQR := func(mnemonic string, code byte, base numericBase, access AccessKind) {
		t[mnemonic] = &deviceDescriptor{
			mnemonic: mnemonic,
			binary:   code,
			ascii:    asciiCode(mnemonic),
			base:     base,
			access:   access,
			families: map[PlcFamily]bool{FamilyIQR: true},
		}
	}

	// Set A - every family. Binary codes and bases per the MELSEC
	// communication protocol reference device code table.
	add("SM", 0x91, base10, AccessBit)
	add("SD", 0xA9, base10, AccessWord)
	add("X", 0x9C, base16, AccessBit)
	add("Y", 0x9D, base16, AccessBit)
	add("M", 0x90, base10, AccessBit)
	add("L", 0x92, base10, AccessBit)
	add("F", 0x93, base10, AccessBit)
	add("V", 0x94, base10, AccessBit)
	add("B", 0xA0, base16, AccessBit)
	add("D", 0xA8, base10, AccessWord)
	add("W", 0xB4, base16, AccessWord)
	add("TS", 0xC1, base10, AccessBit)
	add("TC", 0xC0, base10, AccessBit)
	add("TN", 0xC2, base10, AccessWord)
	add("SS", 0xC7, base10, AccessBit)
	add("SC", 0xC6, base10, AccessBit)
	add("SN", 0xC8, base10, AccessWord)
	add("CS", 0xC4, base10, AccessBit)
	add("CC", 0xC3, base10, AccessBit)
	add("CN", 0xC5, base10, AccessWord)
	add("SB", 0xA1, base16, AccessBit)
	add("SW", 0xB5, base16, AccessWord)
	add("DX", 0xA2, base16, AccessBit)
	add("DY", 0xA3, base16, AccessBit)
	add("R", 0xAF, base10, AccessWord)
	add("ZR", 0xB0, base16, AccessWord)

	// Set B - iQ-R only.
	addIQR("LTS", 0x51, base10, AccessDWord)
	addIQR("LTC", 0x50, base10, AccessDWord)
	addIQR("LTN", 0x52, base10, AccessDWord)
	addIQR("LSTS", 0x59, base10, AccessDWord)
	addIQR("LSTC", 0x58, base10, AccessDWord)
	addIQR("LSTN", 0x5A, base10, AccessDWord)
	addIQR("LCS", 0x55, base10, AccessDWord)
	addIQR("LCC", 0x54, base10, AccessDWord)
	addIQR("LCN", 0x56, base10, AccessDWord)
	addIQR("LZ", 0x62, base10, AccessDWord)
	addIQR("RD", 0x2C, base10, AccessWord)

	return t
}

func (d *deviceDescriptor) permittedOn(family PlcFamily) bool {
	if d.allFamily {
		return true
	}
	return d.families[family]
}

// lookupDevice resolves a mnemonic for a given family, failing with
// DeviceCodeError if the mnemonic is unknown or not permitted on that
// family. This is the single gate every device lookup funnels through.
func lookupDevice(family PlcFamily, mnemonic string) (*deviceDescriptor, error) {
	d, ok := deviceTable[mnemonic]
	if !ok {
		return nil, &DeviceCodeError{Device: mnemonic, Reason: "unknown device mnemonic"}
	}
	if !d.permittedOn(family) {
		return nil, &DeviceCodeError{Device: mnemonic, Reason: "not permitted on " + family.String()}
	}
	return d, nil
}

// binaryCode returns the device's binary wire code and numeric base.
func binaryCode(family PlcFamily, mnemonic string) (byte, numericBase, error) {
	d, err := lookupDevice(family, mnemonic)
	if err != nil {
		return 0, 0, err
	}
	return d.binary, d.base, nil
}

// asciiCodeOf returns the device's two-character ASCII wire code and
// numeric base.
func asciiCodeOf(family PlcFamily, mnemonic string) (string, numericBase, error) {
	d, err := lookupDevice(family, mnemonic)
	if err != nil {
		return "", 0, err
	}
	return d.ascii, d.base, nil
}

// accessKind reports whether a device is bit-, word-, or dword-addressed,
// which drives which request path the operation layer selects.
func accessKind(family PlcFamily, mnemonic string) (AccessKind, error) {
	d, err := lookupDevice(family, mnemonic)
	if err != nil {
		return 0, err
	}
	return d.access, nil
}
