// Package export provides functionality for exporting an engine State to
// various formats: JSON (for host persistence and debugging) and SVG (a
// board/factory snapshot for visual debugging and host preview).
package export
