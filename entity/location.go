package entity

import (
	"fmt"
	"strconv"

	"github.com/apframework/core/apperrors"
)

// DefaultRegion groups locations whose descriptor declares no region.
const DefaultRegion = "Main"

// LocationData is one synthesized location entity. Name is the table key;
// for multi-instance locations the config producer is expected to have
// baked the instance into the name already.
type LocationData struct {
	Code     int64
	Name     string
	ModID    string
	Instance int
	Region   string
}

// LocationTable is a name-keyed location entity table. Iteration order is
// the descriptor order of the source config; overwriting a name keeps its
// original position. The table is read-only after construction.
type LocationTable struct {
	order  []string
	byName map[string]LocationData
}

// Len returns the number of entities in the table.
func (t *LocationTable) Len() int {
	return len(t.order)
}

// Has reports whether a location with the given name exists.
func (t *LocationTable) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Get returns the location entity for the given name.
func (t *LocationTable) Get(name string) (LocationData, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Names returns the location names in table order.
func (t *LocationTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// BuildLocationTable synthesizes the location entity table from the
// config's location descriptor list, independent of items. A nil list
// yields an empty table.
//
// Required-field and last-write-wins policies match BuildItemTable. Two
// descriptors sharing a name but differing in instance collapse to the
// last one processed; instance is stored as metadata only and this builder
// never suffixes names itself.
func BuildLocationTable(locations []LocationDescriptor) (*LocationTable, error) {
	t := &LocationTable{byName: make(map[string]LocationData, len(locations))}
	codeOwner := make(map[int64]string, len(locations))

	for _, d := range locations {
		if d.Name == "" {
			return nil, apperrors.WithMetadata(apperrors.CodeCapabilityMissingName,
				fmt.Sprintf("location descriptor with id %d missing name", d.ID),
				map[string]string{"ID": strconv.FormatInt(d.ID, 10)})
		}
		if d.ID == 0 {
			return nil, apperrors.WithMetadata(apperrors.CodeCapabilityMissingID,
				fmt.Sprintf("location descriptor %q missing id", d.Name),
				map[string]string{"Location": d.Name})
		}
		if owner, ok := codeOwner[d.ID]; ok && owner != d.Name {
			return nil, apperrors.WithMetadata(apperrors.CodeCapabilityDuplicateCode,
				fmt.Sprintf("location %q reuses code %d already assigned to %q", d.Name, d.ID, owner),
				map[string]string{"Location": d.Name, "Owner": owner, "Code": strconv.FormatInt(d.ID, 10)})
		}

		instance := d.Instance
		if instance < 1 {
			instance = 1
		}
		region := d.Region
		if region == "" {
			region = DefaultRegion
		}
		data := LocationData{
			Code:     d.ID,
			Name:     d.Name,
			ModID:    d.ModID,
			Instance: instance,
			Region:   region,
		}

		if prev, ok := t.byName[d.Name]; ok {
			delete(codeOwner, prev.Code)
		} else {
			t.order = append(t.order, d.Name)
		}
		t.byName[d.Name] = data
		codeOwner[d.ID] = d.Name
	}

	return t, nil
}
