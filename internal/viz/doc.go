// Package viz renders an epicycle animation in the terminal.
//
// The package implements a TUI on top of the Bubble Tea framework:
//
//   - [Model]: drives a sequencer from timer ticks and shows the four views
//   - [Views]: complex plane, imaginary vs time, real vs time and the 3D
//     trajectory, also usable without a terminal program
//   - [Canvas]: Braille-based pixel canvas with per-cell colors
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	x y z - Rotate the trajectory view
//	+ -   - Zoom the trajectory view
//	?     - Show help overlay
//	Q/Esc - Close the figure
//
// Axis limits are computed once from the coefficient radii and never change
// during a run.
package viz
