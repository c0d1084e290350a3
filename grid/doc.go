// Package grid provides a bounded two-dimensional coordinate model for games that
// run over a fixed-size field of discrete positions.
//
// Each axis is limited to 0-255. A Cell is a position, a Grid is a closed rectangle
// defined by two corner Cells, and a GridMap is a map whose keys are confined to a Grid.
//
// Movement comes in two policies:
//   - Saturating moves stop at the boundary (0/255, or the Grid edge)
//   - Wrapping moves continue from the opposite boundary (mod 256, or mod the Grid size)
//
// Movement never fails. Only construction (out-of-range sizes or coordinates) and
// GridMap insertion (keys outside the Grid) report errors.
//
// Values are plain and copyable; GridMap has no internal locking.
package grid
