package types

// GuestMix is a requested guest composition: the unit the capacity
// allocator packs into a room's default and extra capacity.
type GuestMix struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Pets     int `json:"pets"`
}

// Total returns the number of people (pets excluded).
func (g GuestMix) Total() int {
	return g.Adults + g.Children
}

// IsZero reports whether no guests were requested.
func (g GuestMix) IsZero() bool {
	return g.Adults == 0 && g.Children == 0 && g.Pets == 0
}
