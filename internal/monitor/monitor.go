package monitor

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"

	"github.com/picolabs/picomon/internal/output"
)

// The firmware always talks at 115200, and the read timeout doubles as
// the cancellation poll interval.
const (
	BaudRate    = 115200
	ReadTimeout = time.Second
)

// Session is an open console connection to the board.
type Session struct {
	port serial.Port
	name string
}

// Open opens the device node at the fixed baud rate and read timeout.
func Open(name string) (*Session, error) {
	mode := &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", name, err)
	}

	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("could not set read timeout on %s: %w", name, err)
	}

	return &Session{port: port, name: name}, nil
}

// NewSession wraps an already-open port. Tests use it with a fake port.
func NewSession(port serial.Port, name string) *Session {
	return &Session{port: port, name: name}
}

func (s *Session) Name() string {
	return s.name
}

// Close releases the serial handle.
func (s *Session) Close() error {
	return s.port.Close()
}

// Stream prints every console line to out until ctx is cancelled or the
// port fails. Cancellation is a clean exit; a port failure is returned.
func (s *Session) Stream(ctx context.Context, out output.Output) error {
	return s.readLines(ctx, func(line string) bool {
		out.Println(line)
		return true
	})
}

// Capture collects up to maxLines console lines, stopping early when ctx
// expires. Lines read before a port failure are returned alongside it.
func (s *Session) Capture(ctx context.Context, maxLines int) ([]string, error) {
	var lines []string
	err := s.readLines(ctx, func(line string) bool {
		lines = append(lines, line)
		return len(lines) < maxLines
	})
	return lines, err
}

// readLines runs the read loop, calling emit for each complete line; emit
// returns false to stop. A timed-out read delivers zero bytes, which is
// when ctx gets re-checked, so cancellation latency is bounded by
// ReadTimeout. Bytes after the last newline stay pending and are never
// emitted as a partial line.
func (s *Session) readLines(ctx context.Context, emit func(string) bool) error {
	buf := make([]byte, 512)
	var pending []byte

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := s.port.Read(buf)
		if err != nil {
			return fmt.Errorf("read %s: %w", s.name, err)
		}
		if n == 0 {
			continue
		}

		pending = append(pending, buf[:n]...)
		for {
			i := bytes.IndexByte(pending, '\n')
			if i < 0 {
				break
			}
			line := decodeLine(pending[:i])
			pending = pending[i+1:]
			if !emit(line) {
				return nil
			}
		}
	}
}

// decodeLine drops bytes that do not form valid UTF-8 and strips trailing
// whitespace, carriage returns included.
func decodeLine(raw []byte) string {
	return strings.TrimRight(strings.ToValidUTF8(string(raw), ""), " \t\r\n\v\f")
}
