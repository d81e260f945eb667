// Package viz is the terminal host for the ruler picker.
//
// The picker is drawn as a strip of block-character marks faded by their
// spotlight opacity, with the current value above it and a pointer at the
// centre column. Mouse drags on the strip map to the picker's drag
// interface; while the value settles onto a tick, Bubble Tea ticks drive
// the animation steps.
//
// # Key Bindings
//
//	←/h  →/l   - Nudge one tick down/up
//	Home/End   - Settle on the minimum/maximum
//	T          - Cycle color themes
//	G          - Toggle the value graph
//	?          - Show help overlay
//	Q          - Quit
package viz
