package launchpads

// Every Launchpad S message, in either direction, is exactly three
// bytes: a status byte followed by two data bytes.
const messageLen = 3

const (
	statusNote    = 0x90
	statusControl = 0xB0

	// automapBase is the controller number of the leftmost Automap
	// button; the eight buttons occupy 0x68..0x6F.
	automapBase = 0x68

	// bufferControlBase distinguishes buffer-control words from the
	// other controller messages sharing the 0xB0 status byte.
	bufferControlBase = 0x20

	flashEnableWord  = 0x28
	flashDisableWord = 0x21
)

// BufferFlags configures the double buffering hardware: which of the
// two LED buffers is displayed, which one incoming note writes update,
// whether the hardware flashes between them, and whether the displayed
// buffer is copied into the updating one. The flags live only in the
// single control message they configure.
type BufferFlags uint8

const (
	Display0 BufferFlags = 0
	Display1 BufferFlags = 1
	Update0  BufferFlags = 0
	Update1  BufferFlags = 1 << 2
	// Flash makes the hardware alternate the displayed buffer on its
	// own, with no further host interaction.
	Flash BufferFlags = 1 << 3
	// CopyBuffers copies the LED states of the newly displayed buffer
	// into the newly updating one.
	CopyBuffers BufferFlags = 1 << 4
)

// appendNote appends the 3-byte note message for n.
func appendNote(dst []byte, n Note) []byte {
	return append(dst, byte(n.State), byte(n.Key), byte(n.Color))
}

// encodeGrid concatenates the note messages of a full frame in
// row-major order: cell (i, j) lands at byte offset 3*(i*Cols+j).
func encodeGrid(g *Grid) []byte {
	buf := make([]byte, 0, messageLen*len(g))
	for i := 0; i < Rows; i++ {
		for j := 0; j < Cols; j++ {
			buf = appendNote(buf, g[i*Cols+j])
		}
	}
	return buf
}

// bufferControl builds the control message selecting buffer state.
func bufferControl(flags BufferFlags) []byte {
	return []byte{statusControl, 0x00, byte(flags) + bufferControlBase}
}

// EventType classifies an input event.
type EventType uint8

const (
	Pressed EventType = iota + 1
	Released
	AutomapPressed
	AutomapReleased
)

// Event is one decoded press or release. X and Y are grid coordinates
// for grid events; Automap events carry the button index in X and 0 in
// Y. Events are not retained by the library.
type Event struct {
	Type EventType
	X    int
	Y    int
}

// decodeEvent parses one raw input message. ok is false when the bytes
// are not a recognizable press or release; that is not an error.
func decodeEvent(buf []byte) (ev Event, ok bool) {
	if len(buf) < messageLen {
		return Event{}, false
	}
	status, note, velocity := buf[0], buf[1], buf[2]
	switch status {
	case statusNote:
		// Physical rows are 9 keys wide, hence the modulo 9. Keep it
		// that way: it matches the device, not a typo for 8.
		ev.X = int(note-(note/16)*16) % 9
		ev.Y = int(note) / 16
		if velocity > 0 {
			ev.Type = Pressed
		} else {
			ev.Type = Released
		}
		return ev, true
	case statusControl:
		ev.X = int(note) - automapBase
		ev.Y = 0
		if velocity > 0 {
			ev.Type = AutomapPressed
		} else {
			ev.Type = AutomapReleased
		}
		return ev, true
	}
	return Event{}, false
}
