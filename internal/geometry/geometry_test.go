package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	t.Parallel()

	r := R(10, 10, 20, 10)

	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", Pt(10, 10), true},
		{"last column", Pt(29, 10), true},
		{"last row", Pt(10, 19), true},
		{"bottom-right cell", Pt(29, 19), true},
		{"left of rect", Pt(9, 10), false},
		{"right edge is exclusive", Pt(30, 10), false},
		{"above rect", Pt(10, 9), false},
		{"bottom edge is exclusive", Pt(10, 20), false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, r.Contains(tc.p))
		})
	}
}

func TestRectUnionIsBoundingBox(t *testing.T) {
	t.Parallel()

	main := R(2, 0, 20, 6)
	cancel := R(2, 7, 20, 3)

	u := main.Union(cancel)
	require.Equal(t, R(2, 0, 20, 10), u)
	assert.True(t, u.Contains(Pt(5, 6)), "gap between rects belongs to the union")
}

func TestRectUnionIgnoresEmpty(t *testing.T) {
	t.Parallel()

	r := R(1, 1, 3, 3)
	assert.Equal(t, r, r.Union(Rect{}))
	assert.Equal(t, r, Rect{X: 50, Y: 50}.Union(r))
	assert.Equal(t, r, Bounds(Rect{}, r, R(9, 9, 0, 4)))
	assert.True(t, Bounds().Empty())
}

func TestRectEdges(t *testing.T) {
	t.Parallel()

	r := R(3, 4, 5, 6)
	assert.Equal(t, 8, r.Right())
	assert.Equal(t, 10, r.Bottom())
	assert.Equal(t, Pt(3, 4), r.Origin())
	assert.Equal(t, Size{W: 5, H: 6}, r.Size())
	assert.Equal(t, R(4, 2, 5, 6), r.Translate(Pt(1, -2)))
	assert.Equal(t, "(3,4 5x6)", r.String())
}

func TestPointArithmetic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
}

func TestHitMapPriority(t *testing.T) {
	t.Parallel()

	hm := NewHitMap()
	hm.Add("card", R(0, 0, 40, 10), nil)
	hm.Add("button", R(0, 8, 40, 1), 3)

	r := hm.Test(Pt(5, 8))
	require.NotNil(t, r)
	assert.Equal(t, "button", r.ID)
	assert.Equal(t, 3, r.Data)

	r = hm.Test(Pt(5, 2))
	require.NotNil(t, r)
	assert.Equal(t, "card", r.ID)

	assert.Nil(t, hm.Test(Pt(50, 50)))
}

func TestHitMapSkipsEmptyRegionsAndClears(t *testing.T) {
	t.Parallel()

	hm := NewHitMap()
	hm.Add("empty", R(0, 0, 0, 5), nil)
	require.Empty(t, hm.Regions())

	hm.Add("a", R(0, 0, 1, 1), nil)
	require.Len(t, hm.Regions(), 1)

	hm.Clear()
	assert.Empty(t, hm.Regions())
	assert.Nil(t, hm.Test(Pt(0, 0)))

	var nilMap *HitMap
	assert.Nil(t, nilMap.Test(Pt(0, 0)))
}
