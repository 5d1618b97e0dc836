package geometry

// Region is a named rectangle registered on a HitMap.
type Region struct {
	ID   string
	Rect Rect
	Data interface{}
}

// HitMap resolves points to the most recently added region covering them.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region. Later regions take priority over earlier ones.
func (h *HitMap) Add(id string, rect Rect, data interface{}) {
	if rect.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: rect, Data: data})
}

// Test returns the topmost region containing p, or nil.
func (h *HitMap) Test(p Point) *Region {
	if h == nil {
		return nil
	}
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(p) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order.
func (h *HitMap) Regions() []Region {
	if h == nil {
		return nil
	}
	return append([]Region(nil), h.regions...)
}

// Clear removes every region.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}
