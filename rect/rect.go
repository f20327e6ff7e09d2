package rect

// Unit is the coordinate type rectangles are measured in.
type Unit interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Rectangle is anything with four axis-aligned sides. All four edges are
// inclusive and coordinates are cartesian, so Top() is the larger y value
// on any non-degenerate rectangle. Implementations are not expected to
// validate their sides; an inverted rectangle is simply empty.
type Rectangle[T Unit] interface {
	Left() T
	Right() T
	Top() T
	Bottom() T
}

// Sided is a Rectangle that can mint more values of its own kind from four
// sides. The decomposer uses it to build results of the region's type.
type Sided[T Unit, R any] interface {
	Rectangle[T]
	FromSides(left, right, top, bottom T) R
}

func Width[T Unit](r Rectangle[T]) T {
	return r.Right() - r.Left()
}

func Height[T Unit](r Rectangle[T]) T {
	return r.Top() - r.Bottom()
}

func Perimeter[T Unit](r Rectangle[T]) T {
	return (Width(r) + Height(r)) * 2
}

func Area[T Unit](r Rectangle[T]) T {
	return Width(r) * Height(r)
}

func IsEmpty[T Unit](r Rectangle[T]) bool {
	return r.Left() > r.Right() || r.Bottom() > r.Top()
}

func ContainsPoint[T Unit](r Rectangle[T], x, y T) bool {
	return x >= r.Left() && x <= r.Right() &&
		y >= r.Bottom() && y <= r.Top()
}

// Contains reports whether other lies entirely inside r.
func Contains[T Unit](r, other Rectangle[T]) bool {
	return r.Left() <= other.Left() && r.Right() >= other.Right() &&
		r.Top() >= other.Top() && r.Bottom() <= other.Bottom()
}

// Intersects reports whether the two closed rectangles share at least one
// point. Rectangles that merely touch along an edge intersect.
func Intersects[T Unit](a, b Rectangle[T]) bool {
	return a.Left() <= b.Right() && a.Right() >= b.Left() &&
		a.Top() >= b.Bottom() && a.Bottom() <= b.Top()
}

// Intersection returns the overlapping part of a and b. The second result
// is false when the rectangles do not intersect.
func Intersection[T Unit, R Sided[T, R]](a R, b Rectangle[T]) (R, bool) {
	left := max(a.Left(), b.Left())
	right := min(a.Right(), b.Right())
	top := min(a.Top(), b.Top())
	bottom := max(a.Bottom(), b.Bottom())
	if left > right || bottom > top {
		var none R
		return none, false
	}
	return a.FromSides(left, right, top, bottom), true
}

// Union returns the smallest rectangle covering both a and b.
func Union[T Unit, R Sided[T, R]](a R, b Rectangle[T]) R {
	return a.FromSides(
		min(a.Left(), b.Left()),
		max(a.Right(), b.Right()),
		max(a.Top(), b.Top()),
		min(a.Bottom(), b.Bottom()),
	)
}

// Translate returns r shifted by dx along x and dy along y.
func Translate[T Unit, R Sided[T, R]](r R, dx, dy T) R {
	return r.FromSides(r.Left()+dx, r.Right()+dx, r.Top()+dy, r.Bottom()+dy)
}
