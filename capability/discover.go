package capability

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apframework/core/apperrors"
)

// DiscoverManifests scans each subdirectory of modsDir for a
// manifest.json and parses it. Invalid manifests do not abort discovery:
// they are skipped and reported as warnings. A manifest whose mod_id was
// already seen is skipped the same way.
func DiscoverManifests(modsDir string) ([]Manifest, []string, error) {
	entries, err := os.ReadDir(modsDir)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.CodeManifestFolderUnreadable,
			fmt.Sprintf("read mods folder %s", modsDir), err)
	}

	var manifests []Manifest
	var warnings []string
	seen := make(map[string]string)

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(modsDir, e.Name(), ManifestFileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		m, err := LoadManifest(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}
		if prev, ok := seen[m.ModID]; ok {
			warnings = append(warnings, fmt.Sprintf("skipping %s: mod_id %q already provided by %s", path, m.ModID, prev))
			continue
		}
		seen[m.ModID] = path
		manifests = append(manifests, m)
	}

	return manifests, warnings, nil
}
