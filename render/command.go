package render

import (
	col "image/color"

	"github.com/fogleman/gg"
	"github.com/mazznoer/csscolorparser"
	fnt "golang.org/x/image/font"
)

// ParseColor turns a CSS color string into a color, black when invalid.
func ParseColor(color string) col.Color {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return col.Black
	}
	r, g, b, a := c.RGBA255()
	return col.RGBA{r, g, b, a}
}

// Command is one drawing operation in canvas space. Canvas space is y-down;
// the geometry-to-canvas flip happens before commands are built.
type Command interface {
	Execute(*gg.Context)
	Bounds() (left, top, right, bottom float64)
}

type DrawRect struct {
	left, top, right, bottom float64
	color                    string
}

func NewDrawRect(left, top, right, bottom float64, color string) *DrawRect {
	return &DrawRect{left: left, top: top, right: right, bottom: bottom, color: color}
}

func (d *DrawRect) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.DrawRectangle(d.left, d.top, d.right-d.left, d.bottom-d.top)
	canvas.Fill()
}

func (d *DrawRect) Bounds() (float64, float64, float64, float64) {
	return d.left, d.top, d.right, d.bottom
}

type DrawOutline struct {
	left, top, right, bottom float64
	color                    string
	thickness                float64
}

func NewDrawOutline(left, top, right, bottom float64, color string, thickness float64) *DrawOutline {
	return &DrawOutline{left: left, top: top, right: right, bottom: bottom, color: color, thickness: thickness}
}

func (d *DrawOutline) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.DrawRectangle(d.left, d.top, d.right-d.left, d.bottom-d.top)
	canvas.SetLineWidth(d.thickness)
	canvas.Stroke()
}

func (d *DrawOutline) Bounds() (float64, float64, float64, float64) {
	return d.left, d.top, d.right, d.bottom
}

type DrawText struct {
	x, y  float64
	text  string
	font  fnt.Face
	color string
}

func NewDrawText(x, y float64, text string, font fnt.Face, color string) *DrawText {
	return &DrawText{x: x, y: y, text: text, font: font, color: color}
}

func (d *DrawText) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.SetFontFace(d.font)
	canvas.DrawStringAnchored(d.text, d.x, d.y, 0.5, 0.5)
}

func (d *DrawText) Bounds() (float64, float64, float64, float64) {
	return d.x, d.y, d.x, d.y
}
