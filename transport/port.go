package transport

import (
	"github.com/pkg/errors"
	"go.bug.st/serial"
	"go.uber.org/multierr"

	"github.com/trzy/robart/logging"
)

// Port is a thin wrapper over a serial connection to the firmware, reading
// and writing whole frames (each self-delimited by its length-prefixed
// header) rather than raw bytes.
type Port struct {
	conn   serial.Port
	logger logging.Logger
}

// OpenPort opens the named serial device at the firmware's fixed baud rate.
func OpenPort(name string, logger logging.Logger) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	conn, err := serial.Open(name, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: opening %s", name)
	}
	return &Port{conn: conn, logger: logger}, nil
}

// Close drains any buffered output and closes the underlying serial
// connection, reporting both failures if they both occur rather than
// discarding whichever one happened first.
func (p *Port) Close() error {
	var err error
	if drainErr := p.conn.Drain(); drainErr != nil {
		err = multierr.Append(err, errors.Wrap(drainErr, "transport: draining output"))
	}
	if closeErr := p.conn.Close(); closeErr != nil {
		err = multierr.Append(err, errors.Wrap(closeErr, "transport: closing port"))
	}
	return err
}

// WriteFrame writes a fully-encoded frame (as produced by EncodePing et al.)
// to the port.
func (p *Port) WriteFrame(frame []byte) error {
	if len(frame) > MaxMessageSize {
		return errors.Errorf("transport: frame of %d bytes exceeds max message size", len(frame))
	}
	n, err := p.conn.Write(frame)
	if err != nil {
		return errors.Wrap(err, "transport: writing frame")
	}
	if n != len(frame) {
		return errors.Errorf("transport: short write (%d of %d bytes)", n, len(frame))
	}
	return nil
}

// ReadFrame reads a single complete frame from the port: first its
// one-byte length header, then the remaining declared bytes.
func (p *Port) ReadFrame() ([]byte, error) {
	header := make([]byte, 1)
	if _, err := readFull(p.conn, header); err != nil {
		return nil, errors.Wrap(err, "transport: reading frame length")
	}

	length := int(header[0])
	if length < headerSize || length > MaxMessageSize {
		return nil, errors.Errorf("transport: invalid frame length %d", length)
	}

	frame := make([]byte, length)
	frame[0] = header[0]
	if _, err := readFull(p.conn, frame[1:]); err != nil {
		return nil, errors.Wrap(err, "transport: reading frame body")
	}
	return frame, nil
}

func readFull(r interface{ Read([]byte) (int, error) }, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, errors.New("transport: read returned no data")
		}
	}
	return total, nil
}
