package playht

import (
	"bufio"
	"bytes"
	"io"
)

// SSEScanner scans a server-sent-event stream for data payloads. The relay
// itself forwards SSE bodies as opaque bytes; this scanner is a convenience
// for consumers that want the `data:` payload of each event, such as the
// TTS job progress stream.
type SSEScanner struct {
	scanner *bufio.Scanner
	data    string
	err     error
}

// NewSSEScanner returns a scanner reading events from r.
func NewSSEScanner(r io.Reader) *SSEScanner {
	return &SSEScanner{
		scanner: bufio.NewScanner(r),
	}
}

// Scan advances to the next event carrying a data payload. It returns
// false at end of stream or on a read error.
func (s *SSEScanner) Scan() bool {
	for s.scanner.Scan() {
		line := s.scanner.Bytes()

		// Empty lines separate events, comment lines start with a colon.
		if len(line) == 0 || line[0] == ':' {
			continue
		}

		if rest, ok := bytes.CutPrefix(line, []byte("data:")); ok {
			s.data = string(bytes.TrimPrefix(rest, []byte(" ")))
			return true
		}
	}

	s.err = s.scanner.Err()
	return false
}

// Data returns the payload of the current event.
func (s *SSEScanner) Data() string {
	return s.data
}

// Err returns the first error encountered while scanning.
func (s *SSEScanner) Err() error {
	return s.err
}
