package rect

import (
	"slices"
	"testing"
)

func TestNoObstructions(t *testing.T) {
	region := NewRect(0, 1, 2, 0)
	got := UnobstructedSubrectangles(region, []Rectangle[int]{})
	if len(got) != 1 {
		t.Fatalf("Expected 1 sub-rectangle, got %d", len(got))
	}
	if got[0] != region {
		t.Errorf("Expected %v, got %v", region, got[0])
	}
}

func TestFullyObstructed(t *testing.T) {
	region := NewRect(0, 1, 2, 0)
	got := UnobstructedSubrectangles(region, []Rectangle[int]{region})
	if len(got) != 0 {
		t.Errorf("Expected no sub-rectangles, got %v", got)
	}
}

func TestPartiallyObstructed(t *testing.T) {
	region := NewRect(0, 5, 5, 0)
	obstruction := NewRect(0, 2, 5, 1)
	got := UnobstructedSubrectangles(region, []Rectangle[int]{obstruction})
	if len(got) != 2 {
		t.Fatalf("Expected 2 sub-rectangles, got %v", got)
	}
	// One strip along the bottom edge...
	if !slices.Contains(got, NewRect(0, 5, 0, 0)) {
		t.Errorf("Expected bottom strip in %v", got)
	}
	// ...and one block past the obstruction.
	if !slices.Contains(got, NewRect(3, 5, 5, 0)) {
		t.Errorf("Expected right block in %v", got)
	}
}

func TestCenterObstruction(t *testing.T) {
	region := NewRect(0, 5, 5, 0)
	obstruction := NewRect(2, 3, 3, 2)
	got := UnobstructedSubrectangles(region, []Rectangle[int]{obstruction})
	want := []BasicRect[int]{
		NewRect(0, 1, 5, 0), // left of the obstruction
		NewRect(0, 5, 5, 4), // band above
		NewRect(0, 5, 1, 0), // band below
		NewRect(4, 5, 5, 0), // right of the obstruction
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d sub-rectangles, got %v", len(want), got)
	}
	for _, w := range want {
		if !slices.Contains(got, w) {
			t.Errorf("Expected %v in %v", w, got)
		}
	}
}

func TestObstructionOutsideRegion(t *testing.T) {
	region := NewRect(0, 5, 5, 0)
	obstruction := NewRect(10, 12, 5, 0)
	got := UnobstructedSubrectangles(region, []Rectangle[int]{obstruction})
	if len(got) != 1 || got[0] != region {
		t.Errorf("Expected only the region, got %v", got)
	}
}

func TestObstructionPastLeftEdge(t *testing.T) {
	region := NewRect(0, 5, 5, 0)
	obstruction := NewRect(-2, 1, 5, 0)
	got := UnobstructedSubrectangles(region, []Rectangle[int]{obstruction})
	if len(got) != 1 || got[0] != NewRect(2, 5, 5, 0) {
		t.Errorf("Expected only Rect(left=2, right=5, top=5, bottom=0), got %v", got)
	}
}

func TestInputsNotMutated(t *testing.T) {
	region := NewRect(0, 9, 9, 0)
	obstructions := []Rectangle[int]{
		NewRect(6, 9, 9, 6),
		NewRect(0, 3, 3, 0),
	}
	before := slices.Clone(obstructions)
	UnobstructedSubrectangles(region, obstructions)
	for i := range obstructions {
		if obstructions[i] != before[i] {
			t.Fatalf("Obstruction slice was reordered: %v", obstructions)
		}
	}
}

// span is a second Rectangle implementation, to exercise heterogeneous
// obstruction lists.
type span struct {
	l, r, t, b int
}

func (s span) Left() int   { return s.l }
func (s span) Right() int  { return s.r }
func (s span) Top() int    { return s.t }
func (s span) Bottom() int { return s.b }

func TestHeterogeneousObstructions(t *testing.T) {
	region := NewRect(0, 5, 5, 0)
	got := UnobstructedSubrectangles(region, []Rectangle[int]{
		span{l: 0, r: 2, t: 5, b: 1},
	})
	if len(got) != 2 {
		t.Fatalf("Expected 2 sub-rectangles, got %v", got)
	}
	if !slices.Contains(got, NewRect(0, 5, 0, 0)) || !slices.Contains(got, NewRect(3, 5, 5, 0)) {
		t.Errorf("Expected bottom strip and right block, got %v", got)
	}
}

// Every result must stay inside the region and clear of every obstruction,
// and together the results must cover every unobstructed cell.
func TestCoverage(t *testing.T) {
	cases := []struct {
		name         string
		region       BasicRect[int]
		obstructions []Rectangle[int]
	}{
		{
			name:   "two blocks",
			region: NewRect(0, 8, 8, 0),
			obstructions: []Rectangle[int]{
				NewRect(1, 3, 7, 5),
				NewRect(5, 7, 3, 0),
			},
		},
		{
			name:   "staircase",
			region: NewRect(0, 9, 9, 0),
			obstructions: []Rectangle[int]{
				NewRect(1, 2, 9, 7),
				NewRect(4, 5, 6, 4),
				NewRect(7, 8, 3, 1),
			},
		},
		{
			name:   "same top edge",
			region: NewRect(0, 9, 9, 0),
			obstructions: []Rectangle[int]{
				NewRect(1, 6, 6, 4),
				NewRect(3, 8, 6, 2),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := UnobstructedSubrectangles(c.region, c.obstructions)

			obstructed := func(x, y int) bool {
				for _, o := range c.obstructions {
					if ContainsPoint(o, x, y) {
						return true
					}
				}
				return false
			}

			for _, r := range got {
				if !Contains[int](c.region, r) {
					t.Errorf("%v leaves the region", r)
				}
				for _, o := range c.obstructions {
					if Intersects(r, o) {
						t.Errorf("%v overlaps obstruction %v", r, o)
					}
				}
			}

			for x := c.region.Left(); x <= c.region.Right(); x++ {
				for y := c.region.Bottom(); y <= c.region.Top(); y++ {
					if obstructed(x, y) {
						continue
					}
					covered := false
					for _, r := range got {
						if ContainsPoint[int](r, x, y) {
							covered = true
							break
						}
					}
					if !covered {
						t.Errorf("Free cell (%d, %d) not covered by any of %v", x, y, got)
					}
				}
			}
		})
	}
}
