package capability

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"

	"github.com/apframework/core/entity"
)

// Checksum computes the deterministic SHA-1 fingerprint of the recorded
// capabilities for a game and slot. Mod IDs are sorted so the result is
// independent of registration order; any change to a mod's declared
// locations or items changes the checksum.
func (a *Aggregator) Checksum(gameName, slotName string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checksum(gameName, slotName)
}

// checksum is Checksum without locking; the caller holds a.mu.
func (a *Aggregator) checksum(gameName, slotName string) string {
	h := sha1.New()
	h.Write([]byte(gameName))
	h.Write([]byte(slotName))

	for _, modID := range a.sortedModIDs() {
		m := a.manifests[modID]
		h.Write([]byte(modID))
		h.Write([]byte(m.Version))

		for _, loc := range m.Locations {
			h.Write([]byte(loc.Name))
			h.Write([]byte(strconv.Itoa(loc.Amount)))
		}
		for _, item := range m.Items {
			h.Write([]byte(item.Name))
			h.Write([]byte(entity.ParseClassification(item.Type).String()))
			h.Write([]byte(strconv.Itoa(item.Amount)))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
