// Command mc3ectl is a small diagnostic client for talking to a MELSEC PLC
// over the 3E frame protocol: point it at a host/port and it runs one
// operation and prints the result. It exists to give the mc3e library's
// ambient CLI/config/logging stack (spf13/pflag, yaml.v3, charmbracelet/log)
// a concrete home - the mc3e package itself uses neither pflag nor yaml.v3,
// and only accepts an optional charmbracelet/log logger on Session.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/hnakamur/mc3e/mc3e"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("mc3ectl", pflag.ContinueOnError)

	configPath := fs.StringP("config", "c", "", "path to a YAML file of session defaults (host/port/family/commtype/timer_seconds)")
	host := fs.StringP("host", "H", "", "PLC host")
	port := fs.IntP("port", "P", 5007, "PLC port")
	familyTag := fs.StringP("family", "F", "Q", "PLC family: Q, L, QnA, iQ-L, iQ-R")
	commTag := fs.StringP("commtype", "C", "binary", "binary or ascii")
	timerSeconds := fs.Float64P("timer", "t", 1.0, "wire timer budget in seconds")
	op := fs.StringP("op", "o", "read-words", "operation: read-words, read-bits, write-words, write-bits, cputype, echo, run, stop, pause, reset, latchclear, lock, unlock")
	device := fs.StringP("device", "d", "D1000", "head device for read/write operations")
	count := fs.IntP("count", "n", 1, "number of points for read operations")
	values := fs.StringSliceP("values", "v", nil, "comma-separated values for write operations (words: decimal ints, bits: 0/1)")
	password := fs.StringP("password", "w", "", "password for lock/unlock")
	echoData := fs.StringP("data", "e", "MCPROTO", "payload for the echo operation")
	clearMode := fs.Uint16P("clear-mode", "m", 0, "clear mode for remote-run")
	force := fs.BoolP("force", "f", false, "force-execute override for run/pause")
	verbose := fs.BoolP("verbose", "V", false, "log connect/close/timeout diagnostics")

	if err := fs.Parse(args); err != nil {
		return err
	}

	defaults := fileDefaults{Host: *host, Port: *port, Family: *familyTag, CommType: *commTag, Timer: *timerSeconds}
	if *configPath != "" {
		loaded, err := loadFileDefaults(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if !fs.Changed("host") && loaded.Host != "" {
			defaults.Host = loaded.Host
		}
		if !fs.Changed("port") && loaded.Port != 0 {
			defaults.Port = loaded.Port
		}
		if !fs.Changed("family") && loaded.Family != "" {
			defaults.Family = loaded.Family
		}
		if !fs.Changed("commtype") && loaded.CommType != "" {
			defaults.CommType = loaded.CommType
		}
		if !fs.Changed("timer") && loaded.Timer != 0 {
			defaults.Timer = loaded.Timer
		}
	}
	if defaults.Host == "" {
		return fmt.Errorf("mc3ectl: --host is required (or set host in --config)")
	}

	family, err := mc3e.ParsePlcFamily(defaults.Family)
	if err != nil {
		return err
	}
	commType, err := mc3e.ParseCommType(defaults.CommType)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	if !*verbose {
		logger.SetLevel(log.ErrorLevel)
	}

	sess := mc3e.NewSession(family)
	sess.Logger = logger
	sess.SetAccessOptions(mc3e.AccessOptionsUpdate{
		CommType:     &commType,
		TimerSeconds: &defaults.Timer,
	})

	if err := sess.Connect(defaults.Host, defaults.Port); err != nil {
		return err
	}
	defer sess.Close()

	return dispatch(sess, *op, *device, *count, *values, *password, *echoData, *clearMode, *force)
}

func dispatch(sess *mc3e.Session, op, device string, count int, values []string, password, echoData string, clearMode uint16, force bool) error {
	switch op {
	case "read-words":
		out, err := sess.BatchReadWordUnits(device, count)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "read-bits":
		out, err := sess.BatchReadBitUnits(device, count)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "write-words":
		words, err := parseWords(values)
		if err != nil {
			return err
		}
		return sess.BatchWriteWordUnits(device, words)
	case "write-bits":
		bits, err := parseBits(values)
		if err != nil {
			return err
		}
		return sess.BatchWriteBitUnits(device, bits)
	case "cputype":
		name, code, err := sess.ReadCPUType()
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", name, code)
	case "echo":
		n, echoed, err := sess.EchoTest(echoData)
		if err != nil {
			return err
		}
		fmt.Printf("%d %s\n", n, echoed)
	case "run":
		return sess.RemoteRun(clearMode, force)
	case "stop":
		return sess.RemoteStop()
	case "pause":
		return sess.RemotePause(force)
	case "latchclear":
		return sess.RemoteLatchClear()
	case "reset":
		return sess.RemoteReset()
	case "lock":
		return sess.RemoteLock(password)
	case "unlock":
		return sess.RemoteUnlock(password)
	default:
		return fmt.Errorf("mc3ectl: unknown operation %q", op)
	}
	return nil
}

func parseWords(values []string) ([]int16, error) {
	out := make([]int16, 0, len(values))
	for _, v := range values {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &n); err != nil {
			return nil, fmt.Errorf("mc3ectl: invalid word value %q: %w", v, err)
		}
		out = append(out, int16(n))
	}
	return out, nil
}

func parseBits(values []string) ([]byte, error) {
	out := make([]byte, 0, len(values))
	for _, v := range values {
		switch strings.TrimSpace(v) {
		case "1":
			out = append(out, 1)
		case "0":
			out = append(out, 0)
		default:
			return nil, fmt.Errorf("mc3ectl: invalid bit value %q", v)
		}
	}
	return out, nil
}
