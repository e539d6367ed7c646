package geometry

// Edges is a bit set of window edges, used to describe which borders an
// interactive resize grabs.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Has returns true if all edges in e are present in the set.
func (e Edges) Has(flag Edges) bool {
	return e&flag == flag
}

// IsEmpty returns true if no edge is set.
func (e Edges) IsEmpty() bool {
	return e == 0
}
