package charatlas

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"
)

// rasterizer renders one glyph into a scratch surface sized exactly to a
// cell and recovers per-cell transparency afterwards. The scratch surface
// is owned by the Atlas and reused across calls; the opaque background
// fill makes an explicit clear unnecessary.
type rasterizer struct {
	scratch  Surface
	cell     image.Rectangle
	faces    Faces
	theme    Theme
	dimAlpha float64
}

// rasterize renders g and returns the cell's pixel buffer with the fill
// background stripped back to transparency.
func (r *rasterizer) rasterize(g Glyph) *image.NRGBA {
	bg := r.theme.ResolveBackground(g.BG)
	r.scratch.FillRect(r.cell, bg)

	fg := r.theme.ResolveForeground(g.FG)
	if g.Dim {
		fg.A = uint8(float64(fg.A) * r.dimAlpha)
	}

	// Baseline sits at the face ascent so the em box starts at the
	// cell's top edge.
	face := r.faces.forGlyph(g)
	dot := fixed.Point26_6{X: 0, Y: face.Metrics().Ascent}
	r.scratch.DrawText(g.Char, face, fg, dot)

	buf := r.scratch.ReadPixels(r.cell)
	stripBackground(buf, bg)
	return buf
}

// stripBackground converts every pixel exactly matching the fill color to
// fully transparent, leaving ink and anti-aliased edge pixels intact. A
// glyph drawn in its own background color disappears entirely, which is
// normal terminal behavior.
func stripBackground(buf *image.NRGBA, bg color.NRGBA) {
	pix := buf.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] == bg.R && pix[i+1] == bg.G && pix[i+2] == bg.B && pix[i+3] == bg.A {
			pix[i] = 0
			pix[i+1] = 0
			pix[i+2] = 0
			pix[i+3] = 0
		}
	}
}
