package render

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"
)

var (
	fontCache = map[float64]fnt.Face{}
	fontLock  sync.Mutex
)

// labelFont finds a system font and loads it at the given size. Faces are
// cached per size for the life of the process.
func labelFont(size float64) (fnt.Face, error) {
	fontLock.Lock()
	defer fontLock.Unlock()
	if face, exists := fontCache[size]; exists {
		return face, nil
	}

	font := sysfont.NewFinder(nil).Match("regular")
	if font == nil {
		return nil, errors.New("no system font found")
	}
	face, err := gg.LoadFontFace(font.Filename, size)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", font.Name, err)
	}
	fontCache[size] = face
	return face, nil
}

func textWidth(font fnt.Face, text string) float64 {
	return math.Ceil(float64(fnt.MeasureString(font, text)) / 64.0)
}
