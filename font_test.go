package charatlas

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFacesEmptyData(t *testing.T) {
	if _, err := NewFaces(nil, nil, 12, 1); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFaces(nil) error = %v, want %v", err, ErrEmptyFontData)
	}
}

func TestNewFacesBadData(t *testing.T) {
	if _, err := NewFaces([]byte("not a font"), nil, 12, 1); err == nil {
		t.Error("NewFaces accepted malformed font data")
	}
}

func TestNewFacesBoldOptional(t *testing.T) {
	faces, err := NewFaces(goregular.TTF, nil, 12, 1)
	if err != nil {
		t.Fatalf("NewFaces: %v", err)
	}
	if faces.Regular == nil {
		t.Fatal("regular face missing")
	}
	if faces.Bold != nil {
		t.Error("bold face should be nil when no bold data is given")
	}
	if got := faces.forGlyph(Glyph{Char: "A", Bold: true}); got != faces.Regular {
		t.Error("bold glyph without a bold face should use the regular face")
	}
}

func TestFacesForGlyph(t *testing.T) {
	faces := testFaces(t)
	if got := faces.forGlyph(Glyph{Char: "A"}); got != faces.Regular {
		t.Error("plain glyph should use the regular face")
	}
	if got := faces.forGlyph(Glyph{Char: "A", Bold: true}); got != faces.Bold {
		t.Error("bold glyph should use the bold face")
	}
}

func TestNewFacesDevicePixelRatioScalesMetrics(t *testing.T) {
	one, err := NewFaces(goregular.TTF, nil, 12, 1)
	if err != nil {
		t.Fatalf("NewFaces: %v", err)
	}
	two, err := NewFaces(goregular.TTF, nil, 12, 2)
	if err != nil {
		t.Fatalf("NewFaces: %v", err)
	}
	if one.Regular.Metrics().Ascent >= two.Regular.Metrics().Ascent {
		t.Error("doubling the device pixel ratio did not scale the face metrics")
	}
}
