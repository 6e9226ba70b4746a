// Package launchpads controls a Novation Launchpad S via raw MIDI.
//
// See doc.go for an overview of the device and the protocol.
package launchpads

import (
	"errors"
	"fmt"
	"io"
)

// Errors reported by Dev operations. Transport failures are wrapped, so
// the underlying error stays reachable through errors.Is and errors.As.
var (
	// ErrNilDevice is returned when an operation is invoked on a nil
	// *Dev.
	ErrNilDevice = errors.New("launchpads: nil device")

	// ErrNotOpen is returned when the transport direction an operation
	// needs is not attached, or after Close.
	ErrNotOpen = errors.New("launchpads: device not open")

	// ErrNilGrid is returned by SetGrid when given a nil frame.
	ErrNilGrid = errors.New("launchpads: nil grid")
)

// Dev is a session with one Launchpad S.
//
// A Dev assumes exclusive ownership of the device: it performs no
// locking and is not safe for concurrent use. Confine it to a single
// goroutine or wrap it in external mutual exclusion.
type Dev struct {
	in  In
	out Out

	// Buffer currently displayed by the hardware, 0 or 1. Mutated only
	// by SwapBuffers.
	currentBuffer int

	closed bool
}

// New wires a session over already-opened transport halves. Either
// direction may be nil: a nil in makes ReadEvent fail with ErrNotOpen,
// a nil out does the same for the write operations. At least one
// direction must be present.
//
// The hardware powers on displaying buffer 0; New assumes that state
// and does not reset the device. Blocking behavior of ReadEvent was
// fixed when in was opened and cannot be changed here.
func New(in In, out Out) (*Dev, error) {
	if in == nil && out == nil {
		return nil, fmt.Errorf("launchpads: no transport attached: %w", ErrNotOpen)
	}
	return &Dev{in: in, out: out}, nil
}

// checkOut gates the write operations.
func (d *Dev) checkOut() error {
	if d == nil {
		return ErrNilDevice
	}
	if d.closed || d.out == nil {
		return ErrNotOpen
	}
	return nil
}

// writeMessage writes one encoded message and flushes it. A short
// write is a hard failure; nothing is retried.
func (d *Dev) writeMessage(msg []byte) error {
	n, err := d.out.Write(msg)
	if err != nil {
		return fmt.Errorf("launchpads: write: %w", err)
	}
	if n != len(msg) {
		return fmt.Errorf("launchpads: wrote %d of %d bytes: %w", n, len(msg), io.ErrShortWrite)
	}
	if err := d.out.Flush(); err != nil {
		return fmt.Errorf("launchpads: flush: %w", err)
	}
	return nil
}

// Reset turns every LED off. The displayed buffer selection is not
// touched.
func (d *Dev) Reset() error {
	if err := d.checkOut(); err != nil {
		return err
	}
	return d.writeMessage([]byte{statusControl, 0x00, 0x00})
}

// SetNote lights or unlights a single key.
func (d *Dev) SetNote(n Note) error {
	if err := d.checkOut(); err != nil {
		return err
	}
	return d.writeMessage(appendNote(make([]byte, 0, messageLen), n))
}

// SetGrid writes a full 8x8 frame as one burst of note messages.
func (d *Dev) SetGrid(g *Grid) error {
	if err := d.checkOut(); err != nil {
		return err
	}
	if g == nil {
		return ErrNilGrid
	}
	return d.writeMessage(encodeGrid(g))
}

// SetBufferFlags gives low-level control over double buffering. It does
// not track which buffer ends up displayed; callers driving the flags
// directly own that bookkeeping. Use SwapBuffers for the common case.
func (d *Dev) SetBufferFlags(flags BufferFlags) error {
	if err := d.checkOut(); err != nil {
		return err
	}
	return d.writeMessage(bufferControl(flags))
}

// SwapBuffers displays the buffer that was being updated and directs
// subsequent note writes at the other one. The newly displayed content
// is copied into the new update buffer, so the next frame starts from
// what is on screen. This is the only operation that mutates the
// tracked buffer.
func (d *Dev) SwapBuffers() error {
	if err := d.checkOut(); err != nil {
		return err
	}
	flags := Display0 | Update1 | CopyBuffers
	next := 0
	if d.currentBuffer == 0 {
		flags = Display1 | Update0 | CopyBuffers
		next = 1
	}
	if err := d.writeMessage(bufferControl(flags)); err != nil {
		return err
	}
	d.currentBuffer = next
	return nil
}

// CurrentBuffer reports which hardware buffer the session believes is
// displayed, 0 or 1.
func (d *Dev) CurrentBuffer() int {
	if d == nil {
		return 0
	}
	return d.currentBuffer
}

// EnableFlashing starts hardware-autonomous flashing: the device keeps
// alternating displayed buffers at its default speed without further
// host messages. The state lives on the hardware only.
func (d *Dev) EnableFlashing() error {
	if err := d.checkOut(); err != nil {
		return err
	}
	return d.writeMessage([]byte{statusControl, 0x00, flashEnableWord})
}

// DisableFlashing stops flashing, if enabled.
func (d *Dev) DisableFlashing() error {
	if err := d.checkOut(); err != nil {
		return err
	}
	return d.writeMessage([]byte{statusControl, 0x00, flashDisableWord})
}

// ReadEvent reads one input message and decodes it. ok reports whether
// ev holds an event: a non-blocking transport with nothing queued, a
// read shorter than a full message, and an undecodable message all
// yield ok=false with a nil error. In blocking mode the call suspends
// until a message arrives or the transport fails; there is no
// cancellation beyond transport-level errors such as a disconnect.
func (d *Dev) ReadEvent() (ev Event, ok bool, err error) {
	if d == nil {
		return Event{}, false, ErrNilDevice
	}
	if d.closed || d.in == nil {
		return Event{}, false, ErrNotOpen
	}
	var buf [messageLen]byte
	n, err := d.in.Read(buf[:])
	if errors.Is(err, ErrWouldBlock) {
		return Event{}, false, nil
	}
	if err != nil {
		return Event{}, false, fmt.Errorf("launchpads: read: %w", err)
	}
	if n < messageLen {
		return Event{}, false, nil
	}
	ev, ok = decodeEvent(buf[:n])
	return ev, ok, nil
}

// Close releases both transport directions. Closing an already-closed
// or never-opened device succeeds trivially. Both directions are
// released even if the first fails; the failures come back joined.
func (d *Dev) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	var errIn, errOut error
	if d.in != nil {
		if err := d.in.Close(); err != nil {
			errIn = fmt.Errorf("launchpads: close input: %w", err)
		}
	}
	if d.out != nil {
		if err := d.out.Close(); err != nil {
			errOut = fmt.Errorf("launchpads: close output: %w", err)
		}
	}
	return errors.Join(errIn, errOut)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("launchpads.Dev{%dx%d+automap}", Rows, Cols)
}
