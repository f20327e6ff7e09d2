package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"rectlib/rect"

	"github.com/fogleman/gg"
)

// Scene collects draw commands and rasters them onto a surface sized to
// their combined bounds.
type Scene struct {
	commands []Command
	surface  *gg.Context
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(cmd Command) {
	s.commands = append(s.commands, cmd)
}

func (s *Scene) Raster() {
	left, top, right, bottom := s.bounds()
	w := int(math.Ceil(right - left))
	h := int(math.Ceil(bottom - top))
	if w <= 0 || h <= 0 {
		return
	}

	if s.surface == nil {
		s.surface = gg.NewContext(w, h)
	}
	canvas := s.surface
	canvas.SetColor(color.Transparent)
	canvas.Clear()
	canvas.Push()
	canvas.Translate(-left, -top)
	for _, cmd := range s.commands {
		cmd.Execute(canvas)
	}
	canvas.Pop()
}

// Image returns the rastered surface, nil before the first Raster.
func (s *Scene) Image() image.Image {
	if s.surface == nil {
		return nil
	}
	return s.surface.Image()
}

func (s *Scene) bounds() (left, top, right, bottom float64) {
	for i, cmd := range s.commands {
		l, t, r, b := cmd.Bounds()
		if i == 0 {
			left, top, right, bottom = l, t, r, b
			continue
		}
		left = min(left, l)
		top = min(top, t)
		right = max(right, r)
		bottom = max(bottom, b)
	}
	return
}

type Options struct {
	Scale     float64 // canvas pixels per coordinate unit, 10 when zero
	Labels    bool    // number each sub-rectangle, requires a system font
	LabelSize float64 // label font size, 12 when zero
}

var palette = []string{"tomato", "steelblue", "mediumseagreen", "goldenrod", "orchid", "slateblue"}

// Decomposition paints a region, its obstructions, and the sub-rectangles
// returned by rect.UnobstructedSubrectangles, one palette color per piece.
// The result is an image laid out screen-style, with the region's top edge
// along the top of the image.
func Decomposition[T rect.Unit](region rect.Rectangle[T], obstructions, subrects []rect.Rectangle[T], opts Options) (image.Image, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = 10
	}

	// Geometry to canvas space: y flipped, and the inclusive right and
	// bottom edges widened by one unit so a single point fills one cell.
	device := func(r rect.Rectangle[T]) (left, top, right, bottom float64) {
		left = float64(r.Left()-region.Left()) * scale
		right = float64(r.Right()-region.Left()+1) * scale
		top = float64(region.Top()-r.Top()) * scale
		bottom = float64(region.Top()-r.Bottom()+1) * scale
		return
	}

	scene := NewScene()
	l, t, r, b := device(region)
	scene.Add(NewDrawRect(l, t, r, b, "white"))

	for _, o := range obstructions {
		l, t, r, b := device(o)
		scene.Add(NewDrawRect(l, t, r, b, "dimgray"))
	}

	size := opts.LabelSize
	if size == 0 {
		size = 12
	}
	for i, sub := range subrects {
		l, t, r, b := device(sub)
		scene.Add(NewDrawRect(l, t, r, b, palette[i%len(palette)]))
		scene.Add(NewDrawOutline(l, t, r, b, "black", 1))
		if opts.Labels {
			face, err := labelFont(size)
			if err != nil {
				return nil, err
			}
			label := strconv.Itoa(i)
			if textWidth(face, label) < r-l {
				scene.Add(NewDrawText((l+r)/2, (t+b)/2, label, face, "black"))
			}
		}
	}

	scene.Raster()
	return scene.Image(), nil
}
