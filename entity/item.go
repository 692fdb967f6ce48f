package entity

import (
	"fmt"
	"strconv"

	"github.com/apframework/core/apperrors"
)

// FillRemaining is the sentinel count meaning "fill remaining slots".
const FillRemaining = -1

// ItemData is one synthesized item entity. Name is the table key and the
// external-facing identity; Code is the identifier the host engine's
// placement logic uses.
type ItemData struct {
	Code           int64
	Name           string
	Classification Classification
	ModID          string
	Count          int
}

// FillsRemaining reports whether this item fills remaining slots instead
// of having a fixed count.
func (d ItemData) FillsRemaining() bool {
	return d.Count < 0
}

// ItemTable is a name-keyed item entity table. Iteration order is the
// descriptor order of the source config; overwriting a name keeps its
// original position. The table is read-only after construction.
type ItemTable struct {
	order  []string
	byName map[string]ItemData
}

// Len returns the number of entities in the table.
func (t *ItemTable) Len() int {
	return len(t.order)
}

// Has reports whether an item with the given name exists.
func (t *ItemTable) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Get returns the item entity for the given name.
func (t *ItemTable) Get(name string) (ItemData, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Names returns the item names in table order.
func (t *ItemTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// BuildItemTable synthesizes the item entity table from the config's item
// descriptor list. A nil list yields an empty table.
//
// A descriptor missing its name or id is a configuration error and
// propagates: a missing identity breaks uniqueness invariants downstream.
// Later descriptors with an already-present name overwrite the earlier
// entry (last-write-wins; config order matters). A descriptor whose id
// collides with a different-named entry is rejected so codes stay unique.
func BuildItemTable(items []ItemDescriptor) (*ItemTable, error) {
	t := &ItemTable{byName: make(map[string]ItemData, len(items))}
	codeOwner := make(map[int64]string, len(items))

	for _, d := range items {
		if d.Name == "" {
			return nil, apperrors.WithMetadata(apperrors.CodeCapabilityMissingName,
				fmt.Sprintf("item descriptor with id %d missing name", d.ID),
				map[string]string{"ID": strconv.FormatInt(d.ID, 10)})
		}
		if d.ID == 0 {
			return nil, apperrors.WithMetadata(apperrors.CodeCapabilityMissingID,
				fmt.Sprintf("item descriptor %q missing id", d.Name),
				map[string]string{"Item": d.Name})
		}
		if owner, ok := codeOwner[d.ID]; ok && owner != d.Name {
			return nil, apperrors.WithMetadata(apperrors.CodeCapabilityDuplicateCode,
				fmt.Sprintf("item %q reuses code %d already assigned to %q", d.Name, d.ID, owner),
				map[string]string{"Item": d.Name, "Owner": owner, "Code": strconv.FormatInt(d.ID, 10)})
		}

		count := d.Count
		if count == 0 {
			count = 1
		}
		data := ItemData{
			Code:           d.ID,
			Name:           d.Name,
			Classification: ParseClassification(d.Type),
			ModID:          d.ModID,
			Count:          count,
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
