// Package main provides the capgen CLI: it discovers mod manifests,
// validates their combined capabilities, assigns entity identifiers, and
// writes the capabilities config consumed by the table builders, with an
// optional dry run of a Lua rules script against the generated tables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/apframework/core/apperrors"
	"github.com/apframework/core/capability"
	"github.com/apframework/core/entity"
	"github.com/apframework/core/internal/platform/config"
	"github.com/apframework/core/rules"
	"github.com/apframework/core/telemetry"
	"github.com/apframework/core/world"
)

type capgenConfig struct {
	ModsDir   string `env:"CAPGEN_MODS_DIR" envDefault:"mods"`
	OutDir    string `env:"CAPGEN_OUT_DIR" envDefault:"."`
	SlotName  string `env:"CAPGEN_SLOT" envDefault:"Player1"`
	GameName  string `env:"CAPGEN_GAME" envDefault:"APFramework"`
	IDBase    int64  `env:"CAPGEN_ID_BASE" envDefault:"0"`
	RulesFile string `env:"CAPGEN_RULES_FILE"`
	LogFile   string `env:"CAPGEN_LOG_FILE"`
}

func main() {
	// A missing .env is fine; env vars and flags still apply.
	_ = godotenv.Load()

	var cfg capgenConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("Error: %v", err)
	}

	flag.StringVar(&cfg.ModsDir, "mods", cfg.ModsDir, "mods folder to scan for manifests")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output folder for the capabilities config")
	flag.StringVar(&cfg.SlotName, "slot", cfg.SlotName, "slot name for the config")
	flag.StringVar(&cfg.GameName, "game", cfg.GameName, "game name for the config")
	flag.Int64Var(&cfg.IDBase, "id-base", cfg.IDBase, "base identifier for ID assignment (0 = default)")
	flag.StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "Lua rules script to dry-run against the generated tables")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "append telemetry events to this file as JSON lines")
	flag.Parse()

	if err := run(cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(cfg capgenConfig) error {
	emitter, closeLog, err := newEmitter(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	manifests, warnings, err := capability.DiscoverManifests(cfg.ModsDir)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if len(manifests) == 0 {
		return fmt.Errorf("no manifests found under %s", cfg.ModsDir)
	}

	agg := capability.NewAggregator()
	for _, m := range manifests {
		if err := agg.AddManifest(m); err != nil {
			return err
		}
	}

	result := agg.Validate()
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if !result.Valid {
		for _, c := range result.Conflicts {
			fmt.Fprintf(os.Stderr, "Conflict (%s): %s\n", c.Capability, c.Description)
		}
		return apperrors.New(apperrors.CodeManifestConflict,
			fmt.Sprintf("%d capability conflicts detected", len(result.Conflicts)))
	}

	agg.AssignIDs(cfg.IDBase)
	doc, err := agg.GenerateDocument(cfg.SlotName, cfg.GameName)
	if err != nil {
		return err
	}
	data, err := doc.Encode()
	if err != nil {
		return err
	}

	outPath := filepath.Join(cfg.OutDir, fmt.Sprintf("AP_Capabilities_%s.json", cfg.SlotName))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write capabilities config: %w", err)
	}
	fmt.Printf("Wrote %s (%d mods, %d locations, %d items, checksum %s)\n",
		outPath, len(doc.Mods), len(doc.Locations), len(doc.Items), doc.Checksum)

	// Rebuild from the written bytes so the summary reflects exactly what
	// a consumer will see.
	parsed, err := capability.ParseDocument(data)
	if err != nil {
		return err
	}

	locations, err := entity.BuildLocationTable(parsed.Locations)
	if err != nil {
		return err
	}
	sim := world.NewSimulation(locations)

	var provider rules.Provider
	if cfg.RulesFile != "" {
		provider, err = rules.LoadScriptFile(cfg.RulesFile)
		if err != nil {
			return err
		}
	}

	w, err := world.New(world.Config{
		Game:     cfg.GameName,
		Document: parsed,
		Engine:   sim,
		Provider: provider,
		Emitter:  emitter,
	})
	if err != nil {
		return err
	}
	if err := w.SetRules(); err != nil {
		return err
	}
	if err := w.SetCompletionRules(); err != nil {
		return err
	}

	printSummary(w, sim)
	return nil
}

func printSummary(w *world.World, sim *world.Simulation) {
	items := w.ItemTable()
	fmt.Printf("Items: %d\n", items.Len())
	for _, c := range entity.Classifications() {
		if names := items.FilterByClassification(c); len(names) > 0 {
			fmt.Printf("  %-12s %d\n", c, len(names))
		}
	}

	locations := w.LocationTable()
	fmt.Printf("Locations: %d\n", locations.Len())
	for region, names := range locations.GroupByRegion() {
		fmt.Printf("  %-12s %d\n", region, len(names))
	}

	reachable := sim.ReachableNames(rules.ItemSet{})
	fmt.Printf("Reachable from start: %d of %d (%d gated)\n",
		len(reachable), locations.Len(), sim.RuleCount())
	if name := w.CompletionLocation(); name != "" {
		fmt.Printf("Completion location: %s\n", name)
	} else {
		fmt.Println("Completion location: none (engine count policy applies)")
	}
}

// fileStore appends telemetry events to a log file as JSON lines.
type fileStore struct {
	enc *json.Encoder
}

func (s *fileStore) AppendEvent(_ context.Context, evt telemetry.Event) error {
	return s.enc.Encode(evt)
}

func newEmitter(path string) (*telemetry.Emitter, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open telemetry log: %w", err)
	}
	return telemetry.NewEmitter(&fileStore{enc: json.NewEncoder(f)}), func() { _ = f.Close() }, nil
}
