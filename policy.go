package charatlas

import "github.com/mattn/go-runewidth"

// CachePolicy decides whether a glyph may live in the atlas. Glyphs the
// policy rejects are never rasterized here; Draw reports a miss and the
// caller renders them through its uncached path.
type CachePolicy func(Glyph) bool

// DefaultCachePolicy admits glyphs whose leading code point is below 256
// (ASCII and Latin-1). Everything else is rejected so that wide CJK
// characters and combining sequences cannot overflow the fixed cell size.
// This is deliberately conservative; see WidthCachePolicy for a policy
// that admits by measured width instead.
func DefaultCachePolicy(g Glyph) bool {
	return firstRune(g) < 256
}

// WidthCachePolicy admits exactly the glyphs that occupy a single terminal
// cell, measured with Unicode East Asian Width rules. Unlike
// DefaultCachePolicy it caches narrow non-Latin scripts while still
// rejecting wide and zero-width characters.
func WidthCachePolicy(g Glyph) bool {
	return g.Char != "" && runewidth.StringWidth(g.Char) == 1
}
