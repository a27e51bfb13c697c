// Package layout implements the anchor-constraint layout engine behind
// the visual UI editor.
//
// It resolves declarative anchors (absolute or parent-relative edge and
// size dimensions) into absolute pixel rectangles, and supports stack
// containers with weighted flexible-space distribution, row-wrapping flow
// layout, padding, and min/max width constraints. Types are re-exported
// through the root anchorui package for public consumption.
//
// The main entry point is [Calculate], which walks a [Node] tree and
// returns an identity-keyed map of [ElementBounds]. Computation is pure:
// the tree is read-only and every call allocates a fresh result.
package layout
