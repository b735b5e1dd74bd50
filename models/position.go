package models

// Position represents a single cell in the search grid.
//
// It is a pure value type: two positions are equal when their coordinates
// are equal, so it can be used directly as a map key.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}
