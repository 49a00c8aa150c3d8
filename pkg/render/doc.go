// Package render draws audio topologies as node-link diagrams.
//
// [ToDOT] converts a graph to Graphviz DOT text; [RenderSVG] and
// [RenderPNG] rasterize that text with the embedded Graphviz engine.
// Rendering is a development aid for inspecting a patch before shipping
// it to the audio engine; the canonical output format remains the JSON
// document produced by the patch package.
package render
