package capability

import (
	"encoding/json"

	"github.com/apframework/core/apperrors"
	"github.com/apframework/core/entity"
)

// ModInfo identifies one mod contributing to a capabilities document.
type ModInfo struct {
	ModID   string `json:"mod_id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Document is a parsed capabilities config: the immutable snapshot the
// entity table builders consume. Absent item or location lists decode to
// nil slices and are not an error.
type Document struct {
	Version     string                      `json:"version,omitempty"`
	Game        string                      `json:"game,omitempty"`
	SlotName    string                      `json:"slot_name,omitempty"`
	Checksum    string                      `json:"checksum,omitempty"`
	IDBase      int64                       `json:"id_base,omitempty"`
	GeneratedAt string                      `json:"generated_at,omitempty"`
	Mods        []ModInfo                   `json:"mods,omitempty"`
	Locations   []entity.LocationDescriptor `json:"locations,omitempty"`
	Items       []entity.ItemDescriptor     `json:"items,omitempty"`
}

// ParseDocument decodes a capabilities config from JSON.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCapabilityInvalidJSON, "decode capabilities config", err)
	}
	return &doc, nil
}

// Encode renders the document as indented JSON, the on-disk config format.
func (d *Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCapabilityInvalidJSON, "encode capabilities config", err)
	}
	return data, nil
}
