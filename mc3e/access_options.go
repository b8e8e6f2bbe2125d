package mc3e

import "time"

// CommType selects the wire framing a Session uses. Binary and ASCII are
// mutually exclusive - a session picks one at creation or via
// SetAccessOptions.
type CommType int

const (
	Binary CommType = iota
	Ascii
)

func (c CommType) String() string {
	if c == Ascii {
		return "ascii"
	}
	return "binary"
}

// ParseCommType maps a comm type tag to a CommType, failing with
// CommTypeError for anything other than "binary"/"ascii".
func ParseCommType(tag string) (CommType, error) {
	switch tag {
	case "binary":
		return Binary, nil
	case "ascii":
		return Ascii, nil
	default:
		return 0, &CommTypeError{Tag: tag}
	}
}

// AccessOptions is mutable per-session configuration. Zero value is not
// meaningful on its own - use DefaultAccessOptions.
type AccessOptions struct {
	CommType      CommType
	Subheader     uint16
	Network       byte
	PC            byte
	DestModuleIO  uint16
	DestModuleSta byte
	Timer         uint16 // units of 250ms on the wire
	SocketTimeout time.Duration
}

// DefaultAccessOptions returns the conventional local-station defaults: subheader 0x5000,
// network 0, pc 0xFF, dest_moduleio 0x03FF, dest_modulesta 0x00, timer 4
// (1 second), socket timeout timer*0.25+1 seconds.
func DefaultAccessOptions() AccessOptions {
	opts := AccessOptions{
		CommType:      Binary,
		Subheader:     0x5000,
		Network:       0x00,
		PC:            0xFF,
		DestModuleIO:  0x03FF,
		DestModuleSta: 0x00,
		Timer:         4,
	}
	opts.SocketTimeout = socketTimeoutFor(opts.Timer)
	return opts
}

func socketTimeoutFor(timer uint16) time.Duration {
	seconds := float64(timer)*0.25 + 1
	return time.Duration(seconds * float64(time.Second))
}

// AccessOptionsUpdate carries the optional fields SetAccessOptions accepts;
// unset fields (nil) leave the current value unchanged.
type AccessOptionsUpdate struct {
	CommType      *CommType
	Network       *byte
	PC            *byte
	DestModuleIO  *uint16
	DestModuleSta *byte
	TimerSeconds  *float64
}

func (o *AccessOptions) apply(u AccessOptionsUpdate) {
	if u.CommType != nil {
		o.CommType = *u.CommType
	}
	if u.Network != nil {
		o.Network = *u.Network
	}
	if u.PC != nil {
		o.PC = *u.PC
	}
	if u.DestModuleIO != nil {
		o.DestModuleIO = *u.DestModuleIO
	}
	if u.DestModuleSta != nil {
		o.DestModuleSta = *u.DestModuleSta
	}
	if u.TimerSeconds != nil {
		timer := uint16(*u.TimerSeconds * 4)
		o.Timer = timer
		o.SocketTimeout = time.Duration(*u.TimerSeconds*float64(time.Second)) + time.Second
	}
}
