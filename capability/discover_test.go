package capability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apframework/core/apperrors"
)

func writeManifest(t *testing.T, root, dir, content string) {
	t.Helper()
	modDir := filepath.Join(root, dir)
	if err := os.MkdirAll(modDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(modDir, ManifestFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func TestDiscoverManifests(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "dungeon", `{"mod_id": "dungeon_pack", "name": "Dungeon Pack"}`)
	writeManifest(t, root, "forest", `{"mod_id": "forest_pack", "name": "Forest Pack"}`)
	writeManifest(t, root, "broken", `{"mod_id":`)
	// A mod folder without a manifest is not a warning, just not a mod.
	if err := os.MkdirAll(filepath.Join(root, "textures"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Stray files at the top level are ignored.
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	manifests, warnings, err := DiscoverManifests(root)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	if len(manifests) != 2 {
		t.Fatalf("manifests = %d, want 2", len(manifests))
	}
	ids := map[string]bool{}
	for _, m := range manifests {
		ids[m.ModID] = true
	}
	if !ids["dungeon_pack"] || !ids["forest_pack"] {
		t.Errorf("unexpected mod set: %v", ids)
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], "broken") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestDiscoverManifestsDuplicateModID(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "a_dungeon", `{"mod_id": "dungeon_pack", "name": "Dungeon Pack"}`)
	writeManifest(t, root, "b_dungeon_copy", `{"mod_id": "dungeon_pack", "name": "Dungeon Pack Copy"}`)

	manifests, warnings, err := DiscoverManifests(root)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("manifests = %d, want 1", len(manifests))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "dungeon_pack") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestDiscoverManifestsUnreadableRoot(t *testing.T) {
	_, _, err := DiscoverManifests(filepath.Join(t.TempDir(), "missing"))
	if !apperrors.IsCode(err, apperrors.CodeManifestFolderUnreadable) {
		t.Errorf("code = %s, want %s", apperrors.GetCode(err), apperrors.CodeManifestFolderUnreadable)
	}
}
