// Package grid provides rectangular and hexagonal discrete spaces over a
// width x height coordinate plane.
//
// Grid connects each cell to its Moore (8-connected) or von Neumann
// (4-connected) neighbors; HexGrid produces hex adjacency on a square storage
// array using row-parity offset tables. Both support torus wraparound, in
// which coordinates wrap modulo the grid dimensions; without it, boundary
// cells simply have fewer neighbors.
//
// Grids additionally support named property layers (PropertyLayer): per-cell
// float64 data sized to the grid, attached and detached by name. Layers carry
// environmental state (terrain, resources, fuel) that is not agent occupancy.
//
// Construction happens in exactly two phases — create one cell per
// coordinate, then wire adjacency — after which the topology is immutable.
package grid
