package charatlas

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Faces bundles the face variants the rasterizer selects between. Bold
// may be nil, in which case bold glyphs are drawn with the regular face.
type Faces struct {
	Regular font.Face
	Bold    font.Face
}

// forGlyph returns the face to draw the glyph with.
func (f Faces) forGlyph(g Glyph) font.Face {
	if g.Bold && f.Bold != nil {
		return f.Bold
	}
	return f.Regular
}

// NewFaces parses TTF/OTF data into a regular/bold face pair at the given
// point size. devicePixelRatio scales the effective DPI so that cell
// metrics derived from the faces land on device pixels; values <= 0 are
// treated as 1. boldTTF may be empty to fall back to the regular face.
func NewFaces(regularTTF, boldTTF []byte, sizePt, devicePixelRatio float64) (Faces, error) {
	if len(regularTTF) == 0 {
		return Faces{}, ErrEmptyFontData
	}
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}

	opts := &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72 * devicePixelRatio,
		Hinting: font.HintingFull,
	}

	regular, err := parseFace(regularTTF, opts)
	if err != nil {
		return Faces{}, fmt.Errorf("charatlas: parsing regular face: %w", err)
	}

	faces := Faces{Regular: regular}
	if len(boldTTF) > 0 {
		bold, err := parseFace(boldTTF, opts)
		if err != nil {
			return Faces{}, fmt.Errorf("charatlas: parsing bold face: %w", err)
		}
		faces.Bold = bold
	}
	return faces, nil
}

func parseFace(data []byte, opts *opentype.FaceOptions) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, opts)
}
