package model

// Snapshot is a full view of the three entity collections. Orders are newest
// first. Both persistence paths read and produce these, so online and offline
// commits can be compared directly.
type Snapshot struct {
	Products  []Product  `json:"products"`
	Customers []Customer `json:"customers"`
	Orders    []Order    `json:"orders"`
}
