package world

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/apframework/core/apperrors"
	"github.com/apframework/core/capability"
	"github.com/apframework/core/entity"
	"github.com/apframework/core/rules"
	"github.com/apframework/core/telemetry"
)

// Engine is the host-engine boundary: it resolves a location name that is
// known to exist in the location table to the engine's location object.
type Engine interface {
	Location(name string) (rules.Location, error)
}

// Config describes one world to build.
type Config struct {
	// Game is the owner tag carried as data; per-game behavior comes from
	// the Provider, never from specializing the entity records.
	Game     string
	Document *capability.Document
	Engine   Engine
	// Provider supplies the game's progression logic. Nil selects the
	// no-logic default.
	Provider rules.Provider
	Emitter  *telemetry.Emitter
}

// World owns the entity tables for one generation run. Tables are built
// once from the document snapshot and are read-only afterwards; each rule
// hook runs exactly once.
type World struct {
	game     string
	runID    string
	engine   Engine
	provider rules.Provider
	emitter  *telemetry.Emitter

	items     *entity.ItemTable
	locations *entity.LocationTable

	completionLocation  string
	accessInstalled     bool
	completionInstalled bool
}

// New builds both entity tables from the config's document snapshot.
// Table build errors propagate; the run cannot proceed without valid
// tables.
func New(cfg Config) (*World, error) {
	doc := cfg.Document
	if doc == nil {
		doc = &capability.Document{}
	}

	items, err := entity.BuildItemTable(doc.Items)
	if err != nil {
		return nil, err
	}
	locations, err := entity.BuildLocationTable(doc.Locations)
	if err != nil {
		return nil, err
	}

	provider := cfg.Provider
	if provider == nil {
		provider = rules.NoLogic{}
	}

	w := &World{
		game:      cfg.Game,
		runID:     uuid.NewString(),
		engine:    cfg.Engine,
		provider:  provider,
		emitter:   cfg.Emitter,
		items:     items,
		locations: locations,
	}

	w.emit("tables_built", telemetry.SeverityInfo, "entity tables built", map[string]string{
		"Items":     strconv.Itoa(items.Len()),
		"Locations": strconv.Itoa(locations.Len()),
	})
	return w, nil
}

// Game returns the owner tag for this world.
func (w *World) Game() string {
	return w.game
}

// RunID identifies this generation run.
func (w *World) RunID() string {
	return w.runID
}

// ItemTable returns the world's item entity table.
func (w *World) ItemTable() *entity.ItemTable {
	return w.items
}

// LocationTable returns the world's location entity table.
func (w *World) LocationTable() *entity.LocationTable {
	return w.locations
}

// CompletionLocation returns the location whose reachability is the win
// condition, or "" when the host engine's count-based policy applies.
func (w *World) CompletionLocation() string {
	return w.completionLocation
}

// SetCompletionLocation implements rules.Context.
func (w *World) SetCompletionLocation(name string) {
	w.completionLocation = name
}

// ResolveLocation implements rules.Context. Names absent from the
// location table error before the engine is consulted.
func (w *World) ResolveLocation(name string) (rules.Location, error) {
	if !w.locations.Has(name) {
		return nil, rules.UnknownLocationError(name, w.locations)
	}
	if w.engine == nil {
		return nil, apperrors.New(apperrors.CodeWorldNoEngine, "no engine attached to world")
	}
	return w.engine.Location(name)
}

// SetRules installs the provider's access constraints into the host
// engine. It runs exactly once per generation run.
func (w *World) SetRules() error {
	if w.accessInstalled {
		return apperrors.New(apperrors.CodeWorldHookAlreadyRan, "access rules already installed")
	}
	w.accessInstalled = true

	if err := w.provider.InstallAccessRules(w); err != nil {
		w.emit("access_rules", telemetry.SeverityError, err.Error(), apperrors.GetMetadata(err))
		return err
	}
	w.emit("access_rules", telemetry.SeverityInfo, "access rules installed", nil)
	return nil
}

// SetCompletionRules determines the victory condition via the provider.
// It runs exactly once per generation run.
func (w *World) SetCompletionRules() error {
	if w.completionInstalled {
		return apperrors.New(apperrors.CodeWorldHookAlreadyRan, "completion rules already installed")
	}
	w.completionInstalled = true

	if err := w.provider.InstallCompletionRule(w); err != nil {
		w.emit("completion_rule", telemetry.SeverityError, err.Error(), apperrors.GetMetadata(err))
		return err
	}
	w.emit("completion_rule", telemetry.SeverityInfo, "completion rule installed", map[string]string{
		"CompletionLocation": w.completionLocation,
	})
	return nil
}

func (w *World) emit(eventType string, severity telemetry.Severity, message string, metadata map[string]string) {
	evt := telemetry.Event{
		RunID:    w.runID,
		Type:     eventType,
		Severity: severity,
		Message:  message,
		Metadata: metadata,
	}
	// Best effort: telemetry must never fail a generation run.
	_ = w.emitter.Emit(context.Background(), evt)
}
