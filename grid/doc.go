// Package grid models a fixed-size grid graph whose connectivity
// changes as the map is progressively revealed and as unlock events
// permanently reclassify terrain.
//
// Every cell is a Node carrying a baseline terrain type:
//
//   - 0  — passable,
//   - 1  — permanently blocked,
//   - ≥2 — hidden and gated; the value doubles as the unlock code that
//     later reclassifies the node to passable.
//
// Until a node is revealed it reports itself passable (blocked nodes
// excepted, which always report blocked). Revealing a hidden node
// quarantines it: its outgoing edges are cleared from the live
// adjacency list until an unlock event restores them from the
// immutable original snapshot captured at construction.
//
// The Graph keeps both adjacency representations side by side. The
// live list is what the path engine sees; the original list only ever
// serves as the restoration source, so live adjacency stays a subset
// of original adjacency at all times.
//
// Clone produces a fully independent deep copy for lookahead
// evaluation: EvaluateUnlockOptions scores each unlock candidate by
// applying it to a disposable clone and re-running the shortest-path
// engine, then reports the cheapest candidate without touching the
// live graph.
//
// The package is not safe for concurrent use; a Graph is intended to
// be owned and mutated by a single driver.
package grid
