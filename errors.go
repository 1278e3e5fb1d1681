package charatlas

import "errors"

// Sentinel errors for atlas construction.
var (
	// ErrInvalidCellSize is returned when a cell dimension is not positive.
	ErrInvalidCellSize = errors.New("charatlas: cell dimensions must be positive")

	// ErrTextureTooSmall is returned when the texture cannot hold a single cell.
	ErrTextureTooSmall = errors.New("charatlas: texture smaller than one cell")

	// ErrNoFaces is returned when the configuration carries no regular font face.
	ErrNoFaces = errors.New("charatlas: regular font face is required")

	// ErrEmptyFontData is returned when font data passed to NewFaces is empty.
	ErrEmptyFontData = errors.New("charatlas: empty font data")
)
