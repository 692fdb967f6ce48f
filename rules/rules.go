package rules

import "github.com/apframework/core/entity"

// State is the host engine's view of what has been collected so far.
type State interface {
	// Has reports whether at least one copy of the item was collected.
	Has(item string) bool
	// Count returns the number of collected copies of the item.
	Count(item string) int
}

// AccessRule decides whether a location is reachable from a collected
// state.
type AccessRule func(state State) bool

// Location is the host engine's handle for one location object.
type Location interface {
	// SetAccessRule installs the reachability constraint for this
	// location, replacing any previous one.
	SetAccessRule(rule AccessRule)
}

// Context is the world view handed to a Provider: read access to the
// entity tables, resolution of location names to host engine objects, and
// the completion-location marker. Rule installation is append-only writes
// into host state; the tables themselves are immutable.
type Context interface {
	ItemTable() *entity.ItemTable
	LocationTable() *entity.LocationTable

	// ResolveLocation maps a location name to the host engine's location
	// object. A name absent from the location table is an error and must
	// halt generation: it indicates a config/override mismatch this core
	// cannot patch over.
	ResolveLocation(name string) (Location, error)

	// SetCompletionLocation marks reaching the named location as the sole
	// completion condition. When never called, the host engine applies
	// its own total-location-count policy.
	SetCompletionLocation(name string)
}

// Provider is the strategy for game-specific progression logic. The host
// engine invokes each method exactly once per generation run, after both
// entity tables exist and the engine has created its location objects.
type Provider interface {
	// InstallAccessRules writes access constraints ("item X required to
	// reach location Y") into the host engine's constraint store.
	InstallAccessRules(ctx Context) error

	// InstallCompletionRule determines the victory condition.
	InstallCompletionRule(ctx Context) error
}

// ItemSet is a minimal State backed by item counts, for tests and
// dry runs.
type ItemSet map[string]int

func (s ItemSet) Has(item string) bool { return s[item] > 0 }

func (s ItemSet) Count(item string) int { return s[item] }
