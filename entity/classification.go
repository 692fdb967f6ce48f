package entity

import "strings"

// Classification is the semantic role of an item. It determines placement
// priority and whether the item can block logic.
//
// Filler is the zero value on purpose: an item with no declared type must
// never be mistaken for progression-critical.
type Classification int

const (
	ClassificationFiller Classification = iota
	ClassificationProgression
	ClassificationUseful
	ClassificationTrap
)

// Classifications returns all defined classifications in placement
// priority order.
func Classifications() []Classification {
	return []Classification{
		ClassificationProgression,
		ClassificationUseful,
		ClassificationFiller,
		ClassificationTrap,
	}
}

func (c Classification) String() string {
	switch c {
	case ClassificationProgression:
		return "progression"
	case ClassificationUseful:
		return "useful"
	case ClassificationFiller:
		return "filler"
	case ClassificationTrap:
		return "trap"
	default:
		return "filler"
	}
}

// ParseClassification maps a raw type label to a Classification. Matching
// is case-insensitive. Unknown or empty labels resolve to Filler rather
// than erroring, so forward-compatible mod configs never lose entities.
func ParseClassification(label string) Classification {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "progression":
		return ClassificationProgression
	case "useful":
		return ClassificationUseful
	case "filler":
		return ClassificationFiller
	case "trap":
		return ClassificationTrap
	default:
		return ClassificationFiller
	}
}
