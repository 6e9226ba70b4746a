package launchpads

// Dimensions of the primary button matrix.
const (
	Rows = 8
	Cols = 8
)

// Key is the device index of a button. Each grid row starts at a
// multiple of 16 and is 9 keys wide, so the usable 8x8 grid occupies
// indices 16*row+col for row and col in [0,7]. The Automap top row is
// addressed outside this scheme, through controller messages.
type Key uint8

// GridKey returns the key for grid position (row, col). Both must be in
// [0,7]; out-of-range positions produce keys outside the documented
// protocol range.
func GridKey(row, col int) Key {
	return Key(16*row + col)
}

// Row returns the grid row of the key.
func (k Key) Row() int {
	return int(k) / 16
}

// Col returns the grid column of the key.
func (k Key) Col() int {
	return int(k) % 16
}

// Brightness is the intensity of one of the two LED elements, green or
// red, behind a key.
type Brightness uint8

const (
	BrightnessOff    Brightness = 0
	BrightnessLow    Brightness = 1
	BrightnessMedium Brightness = 2
	BrightnessFull   Brightness = 3
)

// ColorFlag adjusts how a note write interacts with double buffering.
// Flags only matter while double buffering is in use.
type ColorFlag uint8

const (
	// FlagClear clears the other buffer's copy of this LED.
	FlagClear ColorFlag = 1 << 2
	// FlagCopy writes this LED to both buffers. The hardware lets Copy
	// win over Clear when both are set.
	FlagCopy ColorFlag = 1 << 3
)

// Color is the device encoding of a key color: green brightness in the
// high nibble, red brightness in the low two bits, with the double
// buffering flags in between.
type Color uint8

// MakeColor packs green and red brightness plus flags into a Color.
// Mixing green and red yields yellow and amber, the only other hues the
// device can show.
func MakeColor(green, red Brightness, flags ColorFlag) Color {
	return Color(16*uint8(green) + uint8(red) + uint8(flags))
}

// Green extracts the green brightness. Only meaningful when the color
// carries no flags.
func (c Color) Green() Brightness {
	return Brightness(c / 16)
}

// Red extracts the red brightness. Only meaningful when the color
// carries no flags.
func (c Color) Red() Brightness {
	return Brightness(c % 16)
}

// Predefined flagless colors for the pure hues.
const (
	ColorOff     Color = 0x00
	RedLow       Color = 0x01
	RedMedium    Color = 0x02
	RedFull      Color = 0x03
	GreenLow     Color = 0x10
	GreenMedium  Color = 0x20
	GreenFull    Color = 0x30
	YellowLow    Color = 0x11
	YellowMedium Color = 0x22
	YellowFull   Color = 0x33
)

// State says whether a note message lights or darkens its key. The
// values are the raw MIDI status bytes carried on the wire.
type State uint8

const (
	NoteOn  State = 0x90
	NoteOff State = 0x80
)

// Note is the unit of display command: light or unlight Key with Color.
type Note struct {
	State State
	Key   Key
	Color Color
}

// Grid is a full-frame update for the 8x8 matrix, row-major: index
// i*Cols+j addresses row i, column j.
type Grid [Rows * Cols]Note
