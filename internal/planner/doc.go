// Package planner turns stroke scripts into execution plans.
//
// A stroke script is the recorded input of a painting session: one action per
// line, in the order the user performed them. The planner validates every
// line (syntax, coordinates, layer names) up front and produces a Plan of
// ordered operations, so the engine never starts a session it cannot finish.
//
// Script syntax:
//
//	# comment
//	add <layer> <x> <y>      paint with the brush centred on (x, y)
//	erase <layer> <x> <y>    erase with the brush centred on (x, y)
//	special                  run special on every cell
//	special <x> <y>          run special on one cell
//	brush +                  grow the brush
//	brush -                  shrink the brush
package planner
