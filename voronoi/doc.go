// Package voronoi provides a discrete space over a Voronoi tessellation of
// caller-supplied site coordinates.
//
// Coordinates are indices into the site list. Adjacency is derived from the
// Delaunay triangulation of the sites — the planar dual of the Voronoi
// tessellation — by connecting every pair of sites that co-occur in a
// triangle, deduplicated so each neighbor appears once.
//
// Construction validates the input: all sites must share the same
// dimensionality (currently two, matching the planar triangulation), and
// capacity must not be negative. Violations fail with core.ErrInvalidTopology.
package voronoi
