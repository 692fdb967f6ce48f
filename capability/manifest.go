package capability

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apframework/core/apperrors"
)

// ManifestFileName is the file each mod ships to declare its capabilities.
const ManifestFileName = "manifest.json"

// LocationDef declares a checkable location in a mod manifest. Amount > 1
// declares a multi-instance location: the same physical check appearing
// Amount times.
type LocationDef struct {
	Name   string `json:"name"`
	Amount int    `json:"amount,omitempty"`
	Unique bool   `json:"unique,omitempty"`
	Region string `json:"region,omitempty"`
}

// ItemDef declares an unlockable item in a mod manifest. A negative amount
// means the item fills remaining slots.
type ItemDef struct {
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Amount int    `json:"amount,omitempty"`
}

// IncompatibilityRule declares another mod this one cannot run with.
// An empty version list, or a "*" entry, matches every version.
type IncompatibilityRule struct {
	ID       string   `json:"id"`
	Versions []string `json:"versions,omitempty"`
}

// Manifest is one mod's capability declaration.
type Manifest struct {
	ModID        string                `json:"mod_id"`
	Name         string                `json:"name"`
	Version      string                `json:"version,omitempty"`
	Enabled      bool                  `json:"enabled"`
	Description  string                `json:"description,omitempty"`
	Incompatible []IncompatibilityRule `json:"incompatible,omitempty"`
	Locations    []LocationDef         `json:"locations,omitempty"`
	Items        []ItemDef             `json:"items,omitempty"`
}

// ParseManifest decodes and normalizes a mod manifest. ModID and Name are
// required. Absent amounts default to 1; a negative location amount is
// rejected, a negative item amount is the fill-remaining sentinel.
func ParseManifest(data []byte) (Manifest, error) {
	m := Manifest{Enabled: true}
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, apperrors.Wrap(apperrors.CodeManifestInvalidJSON, "decode manifest", err)
	}
	if m.ModID == "" {
		return Manifest{}, apperrors.New(apperrors.CodeManifestMissingModID, "manifest missing mod_id")
	}
	if m.Name == "" {
		return Manifest{}, apperrors.WithMetadata(apperrors.CodeManifestMissingName,
			fmt.Sprintf("manifest %q missing name", m.ModID),
			map[string]string{"ModID": m.ModID})
	}
	for i := range m.Locations {
		loc := &m.Locations[i]
		if loc.Amount == 0 {
			loc.Amount = 1
		}
		if loc.Amount < 0 {
			return Manifest{}, apperrors.WithMetadata(apperrors.CodeManifestInvalidAmount,
				fmt.Sprintf("location %q has negative amount %d", loc.Name, loc.Amount),
				map[string]string{"ModID": m.ModID, "Location": loc.Name})
		}
	}
	for i := range m.Items {
		item := &m.Items[i]
		if item.Amount == 0 {
			item.Amount = 1
		}
	}
	return m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, apperrors.Wrap(apperrors.CodeManifestInvalidJSON,
			fmt.Sprintf("read manifest %s", path), err)
	}
	return ParseManifest(data)
}
