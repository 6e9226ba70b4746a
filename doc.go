// Package launchpads controls a Novation Launchpad S via raw MIDI.
//
// The Launchpad S is a USB MIDI 1.0 device: an 8×8 matrix of buttons
// with two-color LEDs, plus a separate top control row ("Automap").
// Every command and every input event is a fixed 3-byte MIDI message,
// so the driver only needs a bidirectional byte channel to the device.
//
// # Indexing
//
// The buttons ("notes") on the Launchpad S are indexed like this:
//
//	|------------------------------|
//	| A0 A1 A2 A3 A4 A5 A6 A7      |
//	|  0  1  2  3  4  5  6  7    8 |
//	| 16 17 18 19 20 21 22 23   24 |
//	| 32  .  .  .  .  .  .  .   40 |
//	| 48  .  .  .  .  .  .  .   56 |
//	| 64  .  .  .  .  .  .  .   72 |
//	| 80  .  .  .  .  .  .  .   88 |
//	| 96  .  .  .  .  .  .  .  104 |
//	| 112 .  .  .  .  .  .  .  120 |
//	|------------------------------|
//
// The top row is the Automap row and is addressed separately through
// controller messages. Every grid row starts at a multiple of 16 and is
// physically 9 keys wide (the trailing column holds the round scene
// buttons). GridKey maps (row, col) in [0,7]×[0,7] to a device key.
//
// # Colors
//
// Each key mixes a green and a red LED, each with four brightness
// levels (off, low, medium, full). Equal green and red gives yellow;
// other mixes give shades of amber. MakeColor packs a color, and the
// Red*/Green*/Yellow* constants cover the pure hues. On top of the
// brightness bits a color may carry the FlagClear or FlagCopy bits,
// which only matter while double buffering is in use.
//
// # Double buffering
//
// The device holds two LED buffers, 0 and 1. One is displayed while the
// other receives note writes; swapping them makes a whole frame appear
// at once, with no visible partial update. SwapBuffers toggles the
// displayed buffer and copies its content into the new update buffer.
// SetBufferFlags exposes the raw control word for callers that want to
// drive the buffers directly, and EnableFlashing makes the hardware
// alternate displayed buffers on its own.
//
// # Input
//
// Pressing or releasing a button makes the device emit a 3-byte
// message. ReadEvent decodes one message into an Event carrying the
// grid coordinates (or the Automap button index) and whether the button
// went down or up. Whether ReadEvent blocks waiting for a message is
// decided when the transport is opened and cannot change afterwards.
//
// # Transport
//
// The driver talks through the small In/Out interfaces and never opens
// devices itself. The miditransport sub-package provides the standard
// implementation on top of gomidi's rtmidi driver:
//
//	package main
//
//	import (
//		"log"
//		"time"
//
//		"github.com/flavioheleno/launchpads"
//		"github.com/flavioheleno/launchpads/miditransport"
//	)
//
//	func main() {
//		dev, err := miditransport.Open("launchpad", &miditransport.Opts{
//			Nonblocking: true,
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Close()
//
//		// Light (0,0) red and (0,3) green.
//		dev.SetNote(launchpads.Note{
//			State: launchpads.NoteOn,
//			Key:   launchpads.GridKey(0, 0),
//			Color: launchpads.RedFull,
//		})
//		dev.SetNote(launchpads.Note{
//			State: launchpads.NoteOn,
//			Key:   launchpads.GridKey(0, 3),
//			Color: launchpads.GreenFull,
//		})
//
//		time.Sleep(time.Second)
//		dev.Reset()
//	}
//
// # Concurrency
//
// A Dev is synchronous and single-owner: every operation is one
// blocking write-then-flush (or read) round trip, and nothing is
// locked internally. Use one Dev per device, from one goroutine.
//
// # Protocol reference
//
// For the full message tables and timing details, see the Launchpad
// programmer's reference:
// https://leemans.ch/latex/doc_launchpad-programmers-reference.pdf
package launchpads
