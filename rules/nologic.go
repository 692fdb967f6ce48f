package rules

// CompletionLocationNames are the canonical completion-location names the
// default provider searches, in priority order.
var CompletionLocationNames = []string{"Victory", "Goal", "Completion", "Win"}

// NoLogic is the default Provider: every location is reachable
// unconditionally from the initial state. The generic framework cannot
// know any mod's true progression graph, so it installs no constraints
// rather than inventing false ones.
type NoLogic struct{}

// InstallAccessRules installs nothing.
func (NoLogic) InstallAccessRules(Context) error {
	return nil
}

// InstallCompletionRule searches the canonical completion-location names
// in priority order and marks the first one present in the location table
// as the completion condition. Reaching that single check is the win
// condition; no constraint is installed. When none exists, nothing is
// marked and the host engine falls back to its total-location-count
// policy.
func (NoLogic) InstallCompletionRule(ctx Context) error {
	for _, name := range CompletionLocationNames {
		if ctx.LocationTable().Has(name) {
			ctx.SetCompletionLocation(name)
			return nil
		}
	}
	return nil
}
