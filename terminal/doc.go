// Package terminal connects tcell input to grid movement.
//
// KeyMap translates key events to directions, GridForResize sizes a grid to the
// terminal, and Mover applies vi-style counted motions ("5l", "$", "H") to a cursor
// cell under a saturating or wrapping policy. Nothing here draws to the screen.
package terminal
