// Package signature implements freehand signature capture: a raster canvas
// driven by a two-state pointer machine (Idle, Drawing) with blank detection.
//
// Strokes are rasterized with golang.org/x/image/vector as they arrive. A pad
// that has only ever been cleared, or never touched, captures as nil.
package signature
