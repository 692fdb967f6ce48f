package entity

// ItemDescriptor is one item entry in a capability config. ID and Name are
// required; the rest default (Type to "filler", ModID to "", Count to 1).
//
// Count is the number of copies to place; the sentinel -1 means "fill
// remaining slots" and is resolved by the host engine, never by this core.
type ItemDescriptor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	ModID string `json:"mod_id,omitempty"`
	Count int    `json:"count,omitempty"`
}

// LocationDescriptor is one location entry in a capability config. ID and
// Name are required. Instance is the 1-based occurrence index for repeated
// locations; it is metadata only and never used to disambiguate names.
type LocationDescriptor struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ModID    string `json:"mod_id,omitempty"`
	Instance int    `json:"instance,omitempty"`
	Region   string `json:"region,omitempty"`
}
