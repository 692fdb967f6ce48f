// Package entity synthesizes the in-memory item and location tables a
// randomization engine needs from capability config descriptors, classifies
// items by semantic role, and provides read-only query views over the
// built tables.
//
// Tables are built once per generation run from an immutable config
// snapshot and are never mutated afterwards.
package entity
