package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Overlay      FontName = "overlay"
	OverlayTitle FontName = "overlay-title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in bitmap face under every name.
func LoadDefaults() {
	fonts[Overlay] = basicfont.Face7x13
	fonts[OverlayTitle] = basicfont.Face7x13
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadFile replaces the defaults with a TTF read from path.
func LoadFile(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := LoadFontWithSize(Overlay, ttf, 12); err != nil {
		return err
	}
	return LoadFontWithSize(OverlayTitle, ttf, 20)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
