// Package board models the geometry of the Knight's Tour problem: an n×n
// chessboard, the knight's 8 move offsets, visit tracking, and mobility
// (degree) computation with an incremental cache.
//
// Everything here is deliberately small and allocation-conscious; the
// search engines in backtrack/ and cultural/ hit these primitives millions
// of times per solve.
//
// Conventions:
//
//   - Squares are (Row, Col) with 0 ≤ Row, Col < n; Square is immutable.
//   - The 8 knight offsets are enumerated in one canonical, fixed order
//     (see MoveOffsets). Every deterministic tie-break in the library is
//     "first in offset order", so this order is part of the contract.
//   - Mobility of a square is the count of legal knight moves from it to
//     unvisited, on-board squares.
//
// The MobilityTracker keeps per-square mobility current under visits and
// un-visits by recomputing only the ≤8 knight neighbors of the changed
// square: O(8·8) worst case per move instead of O(n²).
package board
