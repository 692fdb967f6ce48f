// Package rules defines the override points for game-specific progression
// logic. The framework itself knows no mod's progression graph, so the
// default provider installs no access constraints: omission is safe,
// fabrication is not. A game supplies its own Provider at world
// construction time to add real logic.
package rules
