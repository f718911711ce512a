// Package sim provides the minimal simulation driver consumed by the example
// models: a Model holding the run's random source and step counter, and a
// RandomActivation scheduler that steps every registered agent once per tick
// in a freshly shuffled order.
//
// The spatial core does not depend on this package; it is one possible
// collaborator. Models that need a different activation regime (staged,
// priority, event-driven) can drive the spaces directly.
package sim
