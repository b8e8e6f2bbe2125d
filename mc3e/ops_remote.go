package mc3e

const (
	cmdRemoteRun        uint16 = 0x1001
	cmdRemoteStop       uint16 = 0x1002
	cmdRemotePause      uint16 = 0x1003
	cmdRemoteLatchClear uint16 = 0x1005
	cmdRemoteReset      uint16 = 0x1006
	cmdRemoteUnlock     uint16 = 0x1630
	cmdRemoteLock       uint16 = 0x1631
	subRemote           uint16 = 0x0000

	modeFlagNormal uint16 = 0x0001
	modeFlagForced uint16 = 0x0003
)

func modeFlag(force bool) uint16 {
	if force {
		return modeFlagForced
	}
	return modeFlagNormal
}

// RemoteRun issues a remote RUN request. clearMode selects the device
// memory clear behavior the CPU performs on run; force overrides normal
// mode restrictions (command 0x1001/0x0000, body mode_flag then
// clear_mode).
func (s *Session) RemoteRun(clearMode uint16, force bool) error {
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, modeFlag(force))
	enc.putU16(&body, clearMode)
	_, err := s.roundTrip("remote_run", cmdRemoteRun, subRemote, body)
	return err
}

// RemoteStop issues a remote STOP request (command 0x1002/0x0000).
func (s *Session) RemoteStop() error {
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, modeFlagNormal)
	_, err := s.roundTrip("remote_stop", cmdRemoteStop, subRemote, body)
	return err
}

// RemotePause issues a remote PAUSE request (command 0x1003/0x0000).
func (s *Session) RemotePause(force bool) error {
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, modeFlag(force))
	_, err := s.roundTrip("remote_pause", cmdRemotePause, subRemote, body)
	return err
}

// RemoteLatchClear clears latch (power-cycle-surviving) devices explicitly
// (command 0x1005/0x0000).
func (s *Session) RemoteLatchClear() error {
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, modeFlagNormal)
	_, err := s.roundTrip("remote_latchclear", cmdRemoteLatchClear, subRemote, body)
	return err
}

// RemoteReset issues a remote RESET request (command 0x1006/0x0000). The
// PLC drops the connection as part of executing a reset, so this sends the
// request and closes the transport without waiting for a reply - reading
// one here would just block until the peer vanishes.
func (s *Session) RemoteReset() error {
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, modeFlagNormal)
	err := s.sendOnly("remote_reset", cmdRemoteReset, subRemote, body)
	closeErr := s.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// RemoteUnlock sends the remote password to unlock the CPU for subsequent
// operations (command 0x1630/0x0000, body u16(len) + ascii password bytes).
func (s *Session) RemoteUnlock(password string) error {
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, uint16(len(password)))
	body = append(body, []byte(password)...)
	_, err := s.roundTrip("remote_unlock", cmdRemoteUnlock, subRemote, body)
	return err
}

// RemoteLock re-engages the remote password lock (command 0x1631/0x0000).
func (s *Session) RemoteLock(password string) error {
	enc := encodingFor(s.opts.CommType)
	var body []byte
	enc.putU16(&body, uint16(len(password)))
	body = append(body, []byte(password)...)
	_, err := s.roundTrip("remote_lock", cmdRemoteLock, subRemote, body)
	return err
}
