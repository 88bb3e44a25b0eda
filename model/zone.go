package model

// ExclusionZone is the region a floating object reserves on one page.
// Bounds are page-relative pixels; Distances grow the region for
// overlap purposes without moving the object. Zones are registered
// once per pass and never mutated afterward.
type ExclusionZone struct {
	ID        string
	Page      int
	Bounds    BBox
	Distances Distances
	WrapSide  WrapSide
}

// ExpandedBounds returns the zone bounds grown by its wrap distances
func (z ExclusionZone) ExpandedBounds() BBox {
	return z.Bounds.ExpandBy(z.Distances.Top, z.Distances.Right, z.Distances.Bottom, z.Distances.Left)
}
