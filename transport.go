package launchpads

import "errors"

// ErrWouldBlock is returned by an In transport opened in non-blocking
// mode when no message is waiting. ReadEvent maps it to "no event".
var ErrWouldBlock = errors.New("launchpads: read would block")

// In is the event-reading half of the device transport. Whether Read
// blocks until bytes arrive is fixed when the transport is opened.
type In interface {
	// Read copies up to len(p) raw message bytes into p. It returns
	// ErrWouldBlock (possibly wrapped) when opened non-blocking and no
	// data is queued.
	Read(p []byte) (int, error)

	Close() error
}

// Out is the command-writing half of the device transport.
type Out interface {
	Write(p []byte) (int, error)

	// Flush blocks until previously written bytes have been handed to
	// the device.
	Flush() error

	Close() error
}
