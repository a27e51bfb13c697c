// Package anchorui provides the element model and layout engine used by
// the visual UI editor.
//
// Elements form a tree of typed property mappings; each element may carry
// a declarative anchor describing its position relative to its parent and
// a layout mode describing how its children are arranged. [Calculate]
// resolves the whole tree into absolute pixel bounds for rendering,
// hit-testing, and drag feedback.
//
// The geometry and constraint-resolution core lives in pkg/layout and is
// re-exported here so most callers import a single package.
package anchorui
