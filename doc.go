// Package questgrid is a dynamic shortest-path engine for grid maps that
// reveal themselves as you travel, plus a mission controller to drive
// the journey.
//
// 🚀 What is questgrid?
//
//	A small, deterministic toolkit that brings together:
//		• Grid graphs: permanent terrain codes, live vs. original adjacency
//		• Progressive revelation: visibility circles & directional sweeps
//		• Quarantine: hidden cells drop out of the live graph on reveal
//		• Wizard unlocks: lookahead evaluation on deep clones, memoized
//		• Shortest paths: Dijkstra with a lazy-deletion min-heap
//		• Missions: reveal → plan → walk → recalculate, with a run journal
//
// Under the hood, everything is organized into leaf-first subpackages:
//
//	dijkstra/ — shortest-path engine & 1-indexed binary min-heap
//	grid/     — mutable grid graph: reveal, unlock, clone, option lookahead
//	mission/  — the runner, wizard consultations & the unlock memo
//	scenario/ — parsers for the land, travel and mission text files
//	journal/  — buffered event sink that renders and persists the run log
//
// Quick ASCII example:
//
//	S───·───▓───G
//	        │
//	        ?
//
//	S is the start, G the goal, ▓ a blocked cell and ? a hidden cell
//	that looks passable until the traveller's visibility circle sweeps
//	over it, at which point the planned route may need a recalculation.
//
// cmd/questgrid ties it all into a binary:
//
//	questgrid land.txt travel.txt missions.txt out.txt
//
// Everything is single-threaded: a live graph is owned by exactly one
// runner, and a fixed input always produces the same journal.
package questgrid
