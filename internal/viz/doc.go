// Package viz renders trajectory playback in the terminal.
//
// [Model] is a Bubble Tea program that drives an [anim.Player] from tick
// messages and draws every revealed prefix on a braille [Canvas] together
// with a dashed analytical reference. A side panel shows the frame counter,
// a y(t) chart and the running deviation from the reference.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Replay from the first frame
//	T     - Cycle color themes
//	Q     - Quit
//
// Update is the only writer of the canvas. View renders the cached plot and
// the side panel without touching shared state.
//
// Playback stops scheduling ticks once the longest series has been fully
// revealed; the final picture stays on screen until the window is closed.
package viz
