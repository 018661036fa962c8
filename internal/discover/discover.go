package discover

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.bug.st/serial/enumerator"

	"github.com/picolabs/picomon/internal/output"
)

// Device node patterns for USB CDC consoles, in priority order. macOS
// exposes the Pico as tty.usbmodem*, Linux as ttyACM*.
var globPatterns = []string{
	"/dev/tty.usbmodem*",
	"/dev/ttyACM*",
}

// RaspberryPiVID is the USB vendor ID assigned to Raspberry Pi boards.
const RaspberryPiVID = "2E8A"

// ErrNoDevice is returned when no candidate device node exists.
var ErrNoDevice = errors.New("pico serial port not found")

// FindPort scans the known device node patterns and returns the first
// match. filepath.Glob sorts its results, so the choice is deterministic
// when several boards are plugged in.
func FindPort() (string, error) {
	return findFirst(globPatterns)
}

func findFirst(patterns []string) (string, error) {
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", fmt.Errorf("bad device pattern %q: %w", pattern, err)
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return "", ErrNoDevice
}

// PortDetail describes one enumerated serial port.
type PortDetail struct {
	Name         string
	IsUSB        bool
	VID          string
	PID          string
	SerialNumber string
}

// IsPico reports whether the port belongs to a Raspberry Pi USB device.
func (d PortDetail) IsPico() bool {
	return strings.EqualFold(d.VID, RaspberryPiVID)
}

// ListPorts enumerates all serial ports with USB details.
func ListPorts() ([]PortDetail, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("could not enumerate serial ports: %w", err)
	}

	details := make([]PortDetail, 0, len(ports))
	for _, p := range ports {
		details = append(details, PortDetail{
			Name:         p.Name,
			IsUSB:        p.IsUSB,
			VID:          p.VID,
			PID:          p.PID,
			SerialNumber: p.SerialNumber,
		})
	}
	return details, nil
}

// Report writes a port listing to out. The same code backs the --list
// flag and the list_ports MCP tool.
func Report(ports []PortDetail, out output.Output) {
	out.Section("🔌", "Serial ports")

	if len(ports) == 0 {
		out.Info("ℹ️  No serial ports found")
		return
	}

	for _, p := range ports {
		switch {
		case p.IsPico():
			out.Success("%s  [%s:%s serial %s]  ← Raspberry Pi device", p.Name, p.VID, p.PID, p.SerialNumber)
		case p.IsUSB:
			out.Info("%s  [%s:%s serial %s]", p.Name, p.VID, p.PID, p.SerialNumber)
		default:
			out.Info("%s", p.Name)
		}
	}
}
