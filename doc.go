// Package mazepath provides a synchronous pathfinding engine for
// doubled-grid mazes.
//
// It exposes two interchangeable shortest-path strategies:
//
//   - Search: deterministic A* over the doubled-grid coordinate space.
//   - Train: tabular Q-Learning, trained then rolled out greedily to
//     produce the same path representation as Search.
//
// Engine ties both strategies together behind a small facade that holds
// the current maze, start/end points, and resulting path, and projects
// that state into viewport-pixel geometry for a visualization layer to
// draw. The package does no I/O, logging, or concurrency of its own; it is
// driven synchronously by its caller.
package mazepath
