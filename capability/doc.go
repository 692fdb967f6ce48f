// Package capability models the capability config that describes a mod
// pack's unlockable items and checkable locations.
//
// The package covers both sides of the config boundary:
//   - the producer side: mod manifests, discovery, aggregation, conflict
//     validation, ID assignment, and capabilities document generation
//   - the consumer side: the parsed capabilities document handed to the
//     entity table builders
package capability
