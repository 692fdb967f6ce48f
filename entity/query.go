package entity

// Read-only derived views over the entity tables. Each call recomputes
// from the table snapshot and preserves table iteration order.

// FilterByClassification returns the names of items with the given
// classification, in table order. The four classification buckets
// partition the table.
func (t *ItemTable) FilterByClassification(c Classification) []string {
	var out []string
	for _, name := range t.order {
		if t.byName[name].Classification == c {
			out = append(out, name)
		}
	}
	return out
}

// GroupByMod groups item names by their owning mod, in table order.
// Unattributed items group under the empty mod id.
func (t *ItemTable) GroupByMod() map[string][]string {
	groups := make(map[string][]string)
	for _, name := range t.order {
		modID := t.byName[name].ModID
		groups[modID] = append(groups[modID], name)
	}
	return groups
}

// GroupByRegion groups location names by region, in table order. A region
// with zero locations never appears as a key; every location appears in
// exactly one bucket.
func (t *LocationTable) GroupByRegion() map[string][]string {
	groups := make(map[string][]string)
	for _, name := range t.order {
		region := t.byName[name].Region
		groups[region] = append(groups[region], name)
	}
	return groups
}

// GroupByMod groups location names by their owning mod, in table order.
func (t *LocationTable) GroupByMod() map[string][]string {
	groups := make(map[string][]string)
	for _, name := range t.order {
		modID := t.byName[name].ModID
		groups[modID] = append(groups[modID], name)
	}
	return groups
}
