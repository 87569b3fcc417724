// Package wfcpattern implements §4.6: the overlapping-pattern extractor
// that turns a sample grid into a state alphabet, an adjacency Rule, and a
// per-state frequency table ready to hand to wfccollapse.Collapse.
//
// Extraction anchors one NxN window at every coordinate of a source
// Grid2D, not just the coordinates a full window fits under: a window's
// cells that fall outside the source are left Option-absent rather than
// the window being skipped, so border and corner anchors still contribute
// patterns (§4.6 Step 1). WithFlipAxes and WithRotationAxis optionally
// close the sample set under flips along the given axes and 90-degree
// rotations; both transforms apply to the tile value itself via Tile's
// Flip and Perp methods, not just to the window's geometry (§4.6 Step 2).
// Glyph is a ready-made Tile over the '-'/'|' box-drawing alphabet spec
// uses as its canonical flip/rotate example.
//
// The result is deduplicated into a single pattern per unique window, with
// an occurrence count, and adjacency is compiled by checking whether one
// pattern's N-1-cell overlap matches another's when placed one cell apart
// in each direction — an absent cell on either side is treated as a
// wildcard, never blocking compatibility. The result's weights feed a
// wfcobserve.Weighted observer so that common patterns in the sample recur
// more often in the solved output.
package wfcpattern
