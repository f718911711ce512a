// Package core provides the foundational domain types, interfaces and error
// taxonomy used by cellspace. It defines the core abstractions for:
//
//   - Cells (addressable spatial units holding agents under capacity limits)
//   - CellCollections (immutable, queryable views over live cell contents)
//   - DiscreteSpace (the cell arena shared by every topology builder, with
//     lazily cached derived views and adaptive random-empty-cell sampling)
//   - Agents (identity-only contract) and CellAgent (embeddable occupancy
//     back-reference with atomic relocation via MoveTo)
//
// The package intentionally keeps topology construction (grid, network,
// voronoi) out of scope; builders embed DiscreteSpace and wire adjacency on
// top of it. All types are generic over a comparable coordinate type so each
// topology can use its natural cell key (grid pair, graph node id, site
// index).
//
// Concurrency: a space and its cells are single-writer by design. Every
// operation runs synchronously to completion; callers that ever need
// concurrent access must serialize it themselves.
package core
