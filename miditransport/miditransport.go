// Package miditransport connects the launchpads driver to real MIDI
// ports through gomidi's rtmidi driver.
//
// Open is the usual entry point: it looks up the device's input and
// output ports by name and returns a ready launchpads.Dev. The In and
// Out types are also usable on their own with ports obtained elsewhere.
package miditransport

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register the rtmidi driver

	"github.com/flavioheleno/launchpads"
)

// messageLen is the frame size of every Launchpad S message.
const messageLen = 3

// defaultQueueSize is the input queue depth used when Opts does not
// provide one.
const defaultQueueSize = 64

// Opts configures how the MIDI ports are opened.
type Opts struct {
	// Nonblocking makes reads return launchpads.ErrWouldBlock when no
	// message is queued, instead of waiting for one. Fixed for the
	// lifetime of the transport.
	Nonblocking bool

	// QueueSize is the input message queue depth (default: 64).
	// Messages arriving while the queue is full are dropped.
	QueueSize int
}

// Open acquires the input and output ports of the first MIDI device
// whose name contains name (case-insensitive) and wires a launchpads
// session over them. A port acquired before a later failure is
// released again. opts can be nil to use defaults.
func Open(name string, opts *Opts) (*launchpads.Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	inPort, outPort, err := findPorts(name)
	if err != nil {
		return nil, err
	}

	out, err := OpenOut(outPort)
	if err != nil {
		return nil, err
	}
	in, err := OpenIn(inPort, opts.Nonblocking, queueSize)
	if err != nil {
		out.Close()
		return nil, err
	}
	return launchpads.New(in, out)
}

// findPorts scans the registered ports for the named device in both
// directions.
func findPorts(name string) (drivers.In, drivers.Out, error) {
	want := strings.ToLower(name)

	var in drivers.In
	for _, p := range midi.GetInPorts() {
		if strings.Contains(strings.ToLower(p.String()), want) {
			in = p
			break
		}
	}
	var out drivers.Out
	for _, p := range midi.GetOutPorts() {
		if strings.Contains(strings.ToLower(p.String()), want) {
			out = p
			break
		}
	}
	if in == nil || out == nil {
		return nil, nil, fmt.Errorf("miditransport: no MIDI ports matching %q", name)
	}
	return in, out, nil
}

// In adapts a MIDI input port to the launchpads.In contract. Incoming
// messages are queued by a listener goroutine; Read hands them out one
// message at a time.
type In struct {
	stop        func()
	queue       chan []byte
	nonblocking bool

	// Unread tail of the last dequeued message, kept for the next Read.
	pending []byte

	closeOnce sync.Once
}

// OpenIn starts listening on port. queueSize bounds the number of
// undelivered messages; beyond it the oldest unread input is not
// preserved, new messages are dropped.
func OpenIn(port drivers.In, nonblocking bool, queueSize int) (*In, error) {
	in := &In{
		queue:       make(chan []byte, queueSize),
		nonblocking: nonblocking,
	}
	stop, err := midi.ListenTo(port, func(msg midi.Message, timestampms int32) {
		raw := append([]byte(nil), msg...)
		select {
		case in.queue <- raw:
		default:
			// queue full, drop the message
		}
	})
	if err != nil {
		return nil, fmt.Errorf("miditransport: open input: %w", err)
	}
	in.stop = stop
	return in, nil
}

// Read copies the next queued message into p. A p shorter than the
// message keeps the tail for the following call. In non-blocking mode
// an empty queue yields launchpads.ErrWouldBlock; in blocking mode
// Read waits until a message arrives or the transport is closed, which
// surfaces as io.EOF.
func (in *In) Read(p []byte) (int, error) {
	if len(in.pending) > 0 {
		n := copy(p, in.pending)
		in.pending = in.pending[n:]
		return n, nil
	}

	var msg []byte
	if in.nonblocking {
		select {
		case m, ok := <-in.queue:
			if !ok {
				return 0, io.EOF
			}
			msg = m
		default:
			return 0, launchpads.ErrWouldBlock
		}
	} else {
		m, ok := <-in.queue
		if !ok {
			return 0, io.EOF
		}
		msg = m
	}

	n := copy(p, msg)
	in.pending = msg[n:]
	return n, nil
}

// Close stops the listener and unblocks any pending Read. Safe to call
// more than once.
func (in *In) Close() error {
	in.closeOnce.Do(func() {
		if in.stop != nil {
			// Stops callback delivery before the queue is closed.
			in.stop()
		}
		close(in.queue)
	})
	return nil
}

// Out adapts a MIDI output port to the launchpads.Out contract,
// framing writes into 3-byte messages.
type Out struct {
	port drivers.Out
	send func(midi.Message) error
}

// OpenOut opens port for sending.
func OpenOut(port drivers.Out) (*Out, error) {
	send, err := midi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("miditransport: open output: %w", err)
	}
	return &Out{port: port, send: send}, nil
}

// Write sends p as consecutive 3-byte messages and reports how many
// bytes went out. The Launchpad S protocol has no other frame size, so
// a length that is not a multiple of 3 is rejected.
func (o *Out) Write(p []byte) (int, error) {
	if len(p)%messageLen != 0 {
		return 0, fmt.Errorf("miditransport: write of %d bytes is not a whole number of messages", len(p))
	}
	var n int
	for n < len(p) {
		if err := o.send(midi.Message(p[n : n+messageLen])); err != nil {
			return n, fmt.Errorf("miditransport: send: %w", err)
		}
		n += messageLen
	}
	return n, nil
}

// Flush is a no-op: rtmidi hands each message to the OS driver as it
// is sent.
func (o *Out) Flush() error {
	return nil
}

// Close releases the output port.
func (o *Out) Close() error {
	if o.port == nil {
		return nil
	}
	return o.port.Close()
}
