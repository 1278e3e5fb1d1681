package charatlas

import (
	"fmt"
	"image"
	"log/slog"
)

// Default configuration values.
const (
	// DefaultTextureSize is the default atlas texture edge length.
	DefaultTextureSize = 1024

	// DefaultDimAlpha is the default opacity multiplier for dim glyphs.
	DefaultDimAlpha = 0.5
)

// Config holds construction-time configuration for an Atlas. All fields
// are immutable for the atlas's lifetime: a renderer configuration change
// (font size, zoom, theme) discards the atlas and constructs a new one.
type Config struct {
	// CellWidth and CellHeight are the cell pixel dimensions, already
	// scaled by the device pixel ratio. Required, must be positive.
	CellWidth  int
	CellHeight int

	// Faces are the font faces glyphs are drawn with. Regular is
	// required; Bold is optional.
	Faces Faces

	// Theme supplies the default colors and the indexed palette.
	// Nil selects DefaultTheme.
	Theme *Theme

	// TextureWidth and TextureHeight are the atlas texture dimensions.
	// Zero selects DefaultTextureSize. Small values (down to a single
	// cell) are valid and make eviction deterministic for tests.
	TextureWidth  int
	TextureHeight int

	// DrawCellWidth and DrawCellHeight are the destination cell
	// dimensions Draw blits into. Zero selects the storage cell size;
	// set them when the destination's device-pixel-ratio scaling
	// differs from the atlas storage scaling.
	DrawCellWidth  int
	DrawCellHeight int

	// DimAlpha is the opacity multiplier applied to dim glyphs.
	// Zero selects DefaultDimAlpha.
	DimAlpha float64

	// Policy decides which glyphs may be cached. Nil selects
	// DefaultCachePolicy.
	Policy CachePolicy
}

// Stats holds cache counters accumulated over an atlas's lifetime.
type Stats struct {
	Hits           uint64
	Misses         uint64
	Evictions      uint64
	Rasterizations uint64
}

// Atlas caches rasterized glyph cells in a fixed-size texture and serves
// draw requests as blits out of it, evicting the least recently used
// glyph when the texture is full.
//
// An Atlas is single-threaded: Draw runs synchronously to completion and
// must not be called concurrently without external serialization. The
// texture and scratch surfaces are exclusively owned by the atlas.
type Atlas struct {
	grid      grid
	index     *lruIndex
	texture   *SoftwareSurface
	raster    rasterizer
	policy    CachePolicy
	drawCellW int
	drawCellH int
	stats     Stats
}

// New creates an atlas from cfg. Construction either yields a fully
// usable atlas or fails: there is no degraded mode.
func New(cfg Config) (*Atlas, error) {
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidCellSize, cfg.CellWidth, cfg.CellHeight)
	}
	if cfg.Faces.Regular == nil {
		return nil, ErrNoFaces
	}
	if cfg.TextureWidth == 0 {
		cfg.TextureWidth = DefaultTextureSize
	}
	if cfg.TextureHeight == 0 {
		cfg.TextureHeight = DefaultTextureSize
	}

	g := newGrid(cfg.TextureWidth, cfg.TextureHeight, cfg.CellWidth, cfg.CellHeight)
	if g.cols <= 0 || g.rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d texture, %dx%d cell",
			ErrTextureTooSmall, cfg.TextureWidth, cfg.TextureHeight, cfg.CellWidth, cfg.CellHeight)
	}

	theme := cfg.Theme
	if theme == nil {
		t := DefaultTheme()
		theme = &t
	}
	dimAlpha := cfg.DimAlpha
	if dimAlpha <= 0 {
		dimAlpha = DefaultDimAlpha
	}
	policy := cfg.Policy
	if policy == nil {
		policy = DefaultCachePolicy
	}
	drawCellW := cfg.DrawCellWidth
	if drawCellW == 0 {
		drawCellW = cfg.CellWidth
	}
	drawCellH := cfg.DrawCellHeight
	if drawCellH == 0 {
		drawCellH = cfg.CellHeight
	}
	if drawCellW < 0 || drawCellH < 0 {
		return nil, fmt.Errorf("%w: draw cell %dx%d", ErrInvalidCellSize, drawCellW, drawCellH)
	}

	cell := image.Rect(0, 0, cfg.CellWidth, cfg.CellHeight)
	a := &Atlas{
		grid:    g,
		index:   newLRUIndex(g.capacity()),
		texture: NewSoftwareSurface(cfg.TextureWidth, cfg.TextureHeight),
		raster: rasterizer{
			scratch:  NewSoftwareSurface(cfg.CellWidth, cfg.CellHeight),
			cell:     cell,
			faces:    cfg.Faces,
			theme:    *theme,
			dimAlpha: dimAlpha,
		},
		policy:    policy,
		drawCellW: drawCellW,
		drawCellH: drawCellH,
	}

	Logger().Info("charatlas: atlas created",
		slog.Int("cols", g.cols),
		slog.Int("rows", g.rows),
		slog.Int("capacity", g.capacity()))
	return a, nil
}

// Draw renders glyph g into dst with its top-left corner at (x, y) and
// reports whether the atlas served the request. A false return means the
// glyph is not cacheable under the configured policy and the caller must
// render it through its own uncached path.
//
// Draw is the only mutating entry point. On a miss it performs, in order:
// slot admission (evicting the LRU entry if needed), rasterization into
// the scratch surface, an overwriting copy into the atlas cell, and the
// blit to dst. The evicted cell's stale pixels are therefore always
// overwritten before anything can read them.
func (a *Atlas) Draw(g Glyph, dst Surface, x, y int) bool {
	key := makeKey(g)

	if slot, ok := a.index.lookup(key); ok {
		a.stats.Hits++
		a.blit(dst, slot, x, y)
		return true
	}
	a.stats.Misses++

	if !a.policy(g) {
		return false
	}

	slot, evicted, didEvict := a.index.admit(key)
	if didEvict {
		a.stats.Evictions++
		Logger().Debug("charatlas: evicted glyph",
			slog.String("key", evicted.String()),
			slog.Int("slot", slot))
	}

	buf := a.raster.rasterize(g)
	a.stats.Rasterizations++
	a.texture.WritePixels(a.grid.slotRect(slot), buf)
	a.blit(dst, slot, x, y)
	return true
}

// blit copies one atlas cell onto dst at (x, y), scaling to the
// destination cell size when it differs from storage.
func (a *Atlas) blit(dst Surface, slot, x, y int) {
	src := a.grid.slotRect(slot)
	dstRect := image.Rect(x, y, x+a.drawCellW, y+a.drawCellH)
	dst.Blit(a.texture, src, dstRect)
}

// Len returns the number of glyphs currently resident in the atlas.
func (a *Atlas) Len() int {
	return a.index.len()
}

// Capacity returns the number of cells the atlas texture holds.
func (a *Atlas) Capacity() int {
	return a.grid.capacity()
}

// Stats returns the accumulated cache counters.
func (a *Atlas) Stats() Stats {
	return a.stats
}

// HitRate returns the hit percentage over all lookups, or 0 before the
// first Draw.
func (a *Atlas) HitRate() float64 {
	total := a.stats.Hits + a.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(a.stats.Hits) / float64(total) * 100
}
