package capability

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/apframework/core/apperrors"
	"github.com/apframework/core/entity"
)

// DefaultIDBase is the first identifier assigned during ID assignment.
const DefaultIDBase int64 = 6942067

// DocumentVersion is the capabilities config format version this
// aggregator emits.
const DocumentVersion = "1.0.0"

// LocationOwnership records which mod owns one instance of a location.
type LocationOwnership struct {
	ModID    string
	Name     string
	ID       int64
	Instance int
	Region   string
}

// ItemOwnership records which mod owns an item declaration.
type ItemOwnership struct {
	ModID    string
	Name     string
	Type     string
	ID       int64
	MaxCount int // -1 fills remaining slots
}

// Conflict describes two mods declaring incompatible capabilities.
type Conflict struct {
	Capability  string
	ModID1      string
	ModID2      string
	Description string
}

// ValidationResult reports the outcome of capability validation.
type ValidationResult struct {
	Valid     bool
	Conflicts []Conflict
	Warnings  []string
}

// Aggregator collects capability declarations from mod manifests, detects
// conflicts between mods, assigns entity identifiers, and generates the
// capabilities config document the table builders consume.
//
// A location def with amount N expands into N ownership rows, instances
// 1..N. IDs are assigned locations first, then items, sequentially from
// the base.
type Aggregator struct {
	mu        sync.Mutex
	manifests map[string]Manifest
	locations []LocationOwnership
	items     []ItemOwnership
	baseID    int64
	now       func() time.Time
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		manifests: make(map[string]Manifest),
		now:       time.Now,
	}
}

// AddManifest records a manifest's capability declarations. Disabled
// manifests are skipped. Adding a mod_id twice is an error.
func (a *Aggregator) AddManifest(m Manifest) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !m.Enabled {
		return nil
	}
	if _, ok := a.manifests[m.ModID]; ok {
		return apperrors.WithMetadata(apperrors.CodeManifestDuplicateModID,
			fmt.Sprintf("mod %q already added", m.ModID),
			map[string]string{"ModID": m.ModID})
	}
	a.manifests[m.ModID] = m

	for _, loc := range m.Locations {
		for i := 1; i <= loc.Amount; i++ {
			a.locations = append(a.locations, LocationOwnership{
				ModID:    m.ModID,
				Name:     loc.Name,
				Instance: i,
				Region:   loc.Region,
			})
		}
	}
	for _, item := range m.Items {
		maxCount := item.Amount
		if maxCount < 0 {
			maxCount = -1
		}
		a.items = append(a.items, ItemOwnership{
			ModID:    m.ModID,
			Name:     item.Name,
			Type:     entity.ParseClassification(item.Type).String(),
			MaxCount: maxCount,
		})
	}
	return nil
}

// Clear drops all recorded manifests and ownership rows.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.manifests = make(map[string]Manifest)
	a.locations = nil
	a.items = nil
	a.baseID = 0
}

// Validate checks all recorded capabilities for conflicts: declared mod
// incompatibilities, duplicate location name+instance pairs across mods,
// and duplicate item names across mods.
func (a *Aggregator) Validate() ValidationResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := ValidationResult{Valid: true}

	for _, modID := range a.sortedModIDs() {
		m := a.manifests[modID]
		for _, rule := range m.Incompatible {
			other, ok := a.manifests[rule.ID]
			if !ok {
				continue
			}
			versionMatch := len(rule.Versions) == 0
			for _, ver := range rule.Versions {
				if ver == other.Version || ver == "*" {
					versionMatch = true
					break
				}
			}
			if versionMatch {
				result.Conflicts = append(result.Conflicts, Conflict{
					Capability:  "mod_incompatibility",
					ModID1:      modID,
					ModID2:      rule.ID,
					Description: fmt.Sprintf("%s is incompatible with %s", modID, rule.ID),
				})
				result.Valid = false
			}
		}
	}

	locationOwners := make(map[string]string)
	for _, loc := range a.locations {
		key := fmt.Sprintf("%s#%d", loc.Name, loc.Instance)
		if owner, ok := locationOwners[key]; ok && owner != loc.ModID {
			result.Conflicts = append(result.Conflicts, Conflict{
				Capability:  "location_conflict",
				ModID1:      owner,
				ModID2:      loc.ModID,
				Description: fmt.Sprintf("duplicate location: %s", loc.Name),
			})
			result.Valid = false
			continue
		}
		locationOwners[key] = loc.ModID
	}

	itemOwners := make(map[string]string)
	for _, item := range a.items {
		if owner, ok := itemOwners[item.Name]; ok && owner != item.ModID {
			result.Conflicts = append(result.Conflicts, Conflict{
				Capability:  "item_conflict",
				ModID1:      owner,
				ModID2:      item.ModID,
				Description: fmt.Sprintf("duplicate item: %s", item.Name),
			})
			result.Valid = false
			continue
		}
		itemOwners[item.Name] = item.ModID
	}

	return result
}

// HasConflicts reports whether validation finds any conflict.
func (a *Aggregator) HasConflicts() bool {
	return !a.Validate().Valid
}

// AssignIDs assigns identifiers to every recorded location and item:
// locations first, then items, sequentially from baseID. A baseID < 1
// selects DefaultIDBase.
func (a *Aggregator) AssignIDs(baseID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if baseID < 1 {
		baseID = DefaultIDBase
	}
	a.baseID = baseID

	current := baseID
	for i := range a.locations {
		a.locations[i].ID = current
		current++
	}
	for i := range a.items {
		a.items[i].ID = current
		current++
	}
}

// LocationID returns the assigned ID for a mod's location instance, or 0
// if unknown.
func (a *Aggregator) LocationID(modID, name string, instance int) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, loc := range a.locations {
		if loc.ModID == modID && loc.Name == name && loc.Instance == instance {
			return loc.ID
		}
	}
	return 0
}

// ItemID returns the assigned ID for a mod's item, or 0 if unknown.
func (a *Aggregator) ItemID(modID, name string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, item := range a.items {
		if item.ModID == modID && item.Name == name {
			return item.ID
		}
	}
	return 0
}

// LocationByID returns ownership info for an assigned location ID.
func (a *Aggregator) LocationByID(id int64) (LocationOwnership, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, loc := range a.locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return LocationOwnership{}, false
}

// ItemByID returns ownership info for an assigned item ID.
func (a *Aggregator) ItemByID(id int64) (ItemOwnership, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, item := range a.items {
		if item.ID == id {
			return item, true
		}
	}
	return ItemOwnership{}, false
}

// GenerateDocument builds the capabilities config document for a slot.
// AssignIDs must have run first so every entity carries an identifier.
func (a *Aggregator) GenerateDocument(slotName, gameName string) (*Document, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.baseID == 0 && (len(a.locations) > 0 || len(a.items) > 0) {
		return nil, apperrors.New(apperrors.CodeManifestIDsNotAssigned,
			"generate capabilities config before ID assignment")
	}

	doc := &Document{
		Version:     DocumentVersion,
		Game:        gameName,
		SlotName:    slotName,
		Checksum:    a.checksum(gameName, slotName),
		IDBase:      a.baseID,
		GeneratedAt: a.now().UTC().Format(time.RFC3339),
	}

	for _, modID := range a.sortedModIDs() {
		m := a.manifests[modID]
		doc.Mods = append(doc.Mods, ModInfo{ModID: modID, Name: m.Name, Version: m.Version})
	}
	for _, loc := range a.locations {
		doc.Locations = append(doc.Locations, entity.LocationDescriptor{
			ID:       loc.ID,
			Name:     loc.Name,
			ModID:    loc.ModID,
			Instance: loc.Instance,
			Region:   loc.Region,
		})
	}
	for _, item := range a.items {
		doc.Items = append(doc.Items, entity.ItemDescriptor{
			ID:    item.ID,
			Name:  item.Name,
			Type:  item.Type,
			ModID: item.ModID,
			Count: item.MaxCount,
		})
	}
	return doc, nil
}

func (a *Aggregator) sortedModIDs() []string {
	ids := make([]string, 0, len(a.manifests))
	for id := range a.manifests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
