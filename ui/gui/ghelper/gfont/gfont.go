package gfont

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	bold bool
	size int
}

// Fonts hands out faces by pixel size; faces are built once per size.
type Fonts struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Fonts{regular: regular, bold: bold, faces: make(map[faceKey]font.Face)}, nil
}

func (f *Fonts) Regular(size float64) (font.Face, error) {
	return f.face(faceKey{size: roundSize(size)})
}

func (f *Fonts) Bold(size float64) (font.Face, error) {
	return f.face(faceKey{bold: true, size: roundSize(size)})
}

func (f *Fonts) face(k faceKey) (font.Face, error) {
	if face, ok := f.faces[k]; ok {
		return face, nil
	}
	src := f.regular
	if k.bold {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(k.size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	f.faces[k] = face
	return face, nil
}

func roundSize(size float64) int {
	s := int(math.Round(size))
	if s < 1 {
		return 1
	}
	return s
}
