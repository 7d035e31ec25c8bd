// Package export renders mazes to external formats: SVG, GraphViz DOT,
// and an in-memory raster image.
//
// Exporters are pure consumers of the core query surface — maze
// accessors, route.Search, mazegraph.Build, mst.Solve — and never reach
// into maze internals. They write to io.Writer sinks supplied by the
// caller; no file handling or wire format belongs here beyond the text
// emitted.
//
//   - SVG draws walls as rects, artifacts as colored circles, and an
//     optional solution overlay (the discovered route as a polyline, or
//     the spanning tree as segments between node centers).
//   - DOT emits the derived graph with Start/Exit/Dead End/Junction
//     labels and weighted edges, ready for GraphViz layout.
//   - Image renders the grid into an image.RGBA for PNG/GIF encoding by
//     the caller.
package export
