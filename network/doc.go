// Package network provides a discrete space whose adjacency is taken directly
// from a caller-supplied gonum graph.
//
// Coordinates are the graph's node IDs; edges become cell connections with no
// geometric computation. The graph is read once at construction — later
// mutation of the source graph does not affect the space.
package network
