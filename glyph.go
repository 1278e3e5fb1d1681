package charatlas

// Glyph is the visual identity of one terminal cell: the character and
// every attribute that changes its pixels. Two Glyphs with equal fields
// render identically and share one atlas cell.
type Glyph struct {
	// Char is the cell's character: one code point, or a short grapheme
	// for callers whose policy admits clusters.
	Char string

	// FG and BG are the foreground and background color references.
	FG ColorRef
	BG ColorRef

	// Bold selects the bold face variant.
	Bold bool

	// Dim draws the foreground at reduced opacity.
	Dim bool
}

// Key uniquely identifies a glyph rendering in the cache. It is a plain
// comparable value: two Glyphs map to the same Key iff every visual field
// matches, so distinctness of any field yields a distinct key with no
// collisions possible across (bg, fg, bold, dim, char) tuples.
type Key struct {
	char      string
	fg, bg    ColorRef
	bold, dim bool
}

// makeKey derives the cache key for a glyph. Pure and total: every glyph
// has exactly one key.
func makeKey(g Glyph) Key {
	return Key{char: g.Char, fg: g.FG, bg: g.BG, bold: g.Bold, dim: g.Dim}
}

// String renders the key in its canonical encoding: background, foreground,
// a 2-bit bold/dim code, and the raw character, separated by underscores.
// The separator cannot appear in a ColorRef's textual form, so the fields
// occupy disjoint positions. Used for logging and debugging only; cache
// lookups compare Key values directly.
func (k Key) String() string {
	flags := 0
	if k.bold {
		flags |= 1
	}
	if k.dim {
		flags |= 2
	}
	return k.bg.String() + "_" + k.fg.String() + "_" + string(rune('0'+flags)) + "_" + k.char
}

// firstRune returns the glyph's leading code point, or U+FFFD for an
// empty character.
func firstRune(g Glyph) rune {
	for _, r := range g.Char {
		return r
	}
	return '�'
}
