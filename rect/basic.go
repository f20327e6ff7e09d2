package rect

import "fmt"

// BasicRect is the reference Rectangle implementation: an immutable value
// holding its four sides directly.
type BasicRect[T Unit] struct {
	left, right, top, bottom T
}

func NewRect[T Unit](left, right, top, bottom T) BasicRect[T] {
	return BasicRect[T]{
		left:   left,
		right:  right,
		top:    top,
		bottom: bottom,
	}
}

func (r BasicRect[T]) Left() T {
	return r.left
}

func (r BasicRect[T]) Right() T {
	return r.right
}

func (r BasicRect[T]) Top() T {
	return r.top
}

func (r BasicRect[T]) Bottom() T {
	return r.bottom
}

func (BasicRect[T]) FromSides(left, right, top, bottom T) BasicRect[T] {
	return NewRect(left, right, top, bottom)
}

func (r BasicRect[T]) String() string {
	return fmt.Sprintf("Rect(left=%v, right=%v, top=%v, bottom=%v)", r.left, r.right, r.top, r.bottom)
}
