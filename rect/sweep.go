package rect

import (
	"cmp"
	"slices"
)

// unfinished is a sub-rectangle whose right edge is not known yet.
type unfinished[T Unit] struct {
	left, top, bottom T
}

// gap is a free vertical interval at the current sweep line.
type gap[T Unit] struct {
	top, bottom T
}

// line is an x position where the set of gaps may change.
type line[T Unit] struct {
	x     T
	opens bool
}

// UnobstructedSubrectangles returns every maximal sub-rectangle of region
// that no obstruction overlaps. Obstructions may be of any Rectangle
// implementation and may lie partly or fully outside the region; inputs are
// never mutated. Results are built with region's FromSides. Two results may
// overlap each other; together they cover every unobstructed point of the
// region, and each result extends as far as its vertical span stays free.
//
// The sweep walks left to right over the x positions where the free
// vertical intervals can change: the region's left edge, each obstruction's
// left edge, and the position one unit past each obstruction's right edge.
func UnobstructedSubrectangles[T Unit, R Sided[T, R]](region R, obstructions []Rectangle[T]) []R {
	obs := slices.Clone(obstructions)
	slices.SortStableFunc(obs, func(a, b Rectangle[T]) int {
		// Descending by top, so scanning down a line sees them in order.
		return cmp.Compare(b.Top(), a.Top())
	})

	lines := []line[T]{{x: region.Left(), opens: true}}
	for _, o := range obs {
		lines = append(lines, line[T]{x: o.Left(), opens: false})
		lines = append(lines, line[T]{x: o.Right() + 1, opens: true})
	}
	slices.SortStableFunc(lines, func(a, b line[T]) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		// Opening lines sort first so they survive the dedup.
		if a.opens == b.opens {
			return 0
		}
		if a.opens {
			return -1
		}
		return 1
	})
	lines = slices.CompactFunc(lines, func(a, b line[T]) bool {
		return a.x == b.x
	})

	var finished []R
	var active []unfinished[T]

	for _, ln := range lines {
		if ln.x < region.Left() || ln.x > region.Right() {
			continue
		}

		// Collect the gaps at this line. Each obstruction crossing the line
		// is a shingle on a roof: daylight between the bottom of one and the
		// top of the next is a gap.
		var gaps []gap[T]
		lowest := region.Top()
		for _, o := range obs {
			if o.Left() > ln.x || ln.x > o.Right() {
				continue
			}
			if lowest > o.Top() {
				// The top edge is inclusive, the gap ends one unit above it.
				gaps = append(gaps, gap[T]{top: lowest, bottom: o.Top() + 1})
			}
			// Two shingles starting at the same height would fake a gap;
			// tracking the lowest bottom seen so far avoids that.
			lowest = min(lowest, o.Bottom()-1)
		}
		if lowest >= region.Bottom() {
			gaps = append(gaps, gap[T]{top: lowest, bottom: region.Bottom()})
		}

		slices.SortFunc(active, func(a, b unfinished[T]) int {
			return cmp.Compare(b.left, a.left)
		})

		if ln.opens {
			// Start a rectangle for every gap whose shape is new.
			for _, g := range gaps {
				if !hasShape(active, g.top, g.bottom) {
					active = append(active, unfinished[T]{left: ln.x, top: g.top, bottom: g.bottom})
				}
			}
			continue
		}

		// A closing line. Rectangles that still fit inside a gap stay
		// active; the rest are finished one unit before the line, and the
		// still-free parts of their span continue as new active rectangles
		// keeping the original left edge.
		var kept, spawned []unfinished[T]
		for _, r := range active {
			fits := slices.ContainsFunc(gaps, func(g gap[T]) bool {
				return g.top >= r.top && r.bottom >= g.bottom
			})
			if fits {
				kept = append(kept, r)
				continue
			}

			finished = append(finished, region.FromSides(r.left, ln.x-1, r.top, r.bottom))

			for _, g := range gaps {
				if g.top > r.top && r.bottom > g.bottom {
					continue
				}
				top := min(r.top, g.top)
				bottom := max(r.bottom, g.bottom)
				if top < bottom {
					// The gap does not touch the closed span.
					continue
				}
				if !hasShape(active, top, bottom) && !hasShape(spawned, top, bottom) {
					spawned = append(spawned, unfinished[T]{left: r.left, top: top, bottom: bottom})
				}
			}
		}
		active = append(kept, spawned...)
	}

	// Whatever is still active reaches the region's right edge.
	for _, r := range active {
		finished = append(finished, region.FromSides(r.left, region.Right(), r.top, r.bottom))
	}
	return finished
}

func hasShape[T Unit](rects []unfinished[T], top, bottom T) bool {
	return slices.ContainsFunc(rects, func(r unfinished[T]) bool {
		return r.top == top && r.bottom == bottom
	})
}
