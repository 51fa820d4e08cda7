// Package scenario parses the three text inputs that define a run: the
// land file (grid dimensions and per-cell terrain types), the travel
// file (weighted edges between cells), and the mission file (visibility
// radius, starting position, and ordered objectives with optional
// unlock candidates).
//
// Formats, one record per line:
//
//	land:    "width height" header, then "x y type" per cell.
//	travel:  "x1-y1,x2-y2 weight" per edge.
//	mission: "radius" header, then "startX startY", then
//	         "x y [code code ...]" per objective.
//
// An edge touching a baseline-blocked endpoint is recorded in the
// graph's original snapshot but removed from the live adjacency, so the
// path engine never traverses it while unlock events can still restore
// the neighbourhood around it.
//
// Coordinates are assumed in bounds once the header has been read;
// malformed lines surface as ErrBadLand, ErrBadTravel, or
// ErrBadMissions wrapped with line context.
package scenario
