package charatlas

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is the minimal drawing capability the atlas depends on. Any
// rendering backend (software raster, GPU texture wrapper, test double)
// can implement it; the cache core never touches a concrete backend type.
//
// Pixel-reading operations use non-premultiplied RGBA so that the
// rasterizer's transparency post-process sees exact channel values.
type Surface interface {
	// Bounds returns the surface extent.
	Bounds() image.Rectangle

	// FillRect fills r with c, replacing previous content (no blending).
	FillRect(r image.Rectangle, c color.NRGBA)

	// DrawText draws s with the given face and color, compositing
	// source-over. dot is the baseline origin in 26.6 fixed point.
	DrawText(s string, face font.Face, c color.NRGBA, dot fixed.Point26_6)

	// ReadPixels copies region r into a freshly allocated buffer whose
	// bounds start at the origin.
	ReadPixels(r image.Rectangle) *image.NRGBA

	// WritePixels copies pix verbatim into region r, alpha included
	// (no blending).
	WritePixels(r image.Rectangle, pix *image.NRGBA)

	// Blit composites srcRect of src onto dstRect of this surface,
	// scaling when the rectangles differ in size. Fully transparent
	// source pixels leave the destination untouched.
	Blit(src image.Image, srcRect, dstRect image.Rectangle)
}

// SoftwareSurface is an in-memory Surface backed by a non-premultiplied
// RGBA buffer. It also implements image.Image, so one SoftwareSurface can
// be the blit source for another.
type SoftwareSurface struct {
	img *image.NRGBA
}

// NewSoftwareSurface creates a transparent surface of the given size.
func NewSoftwareSurface(width, height int) *SoftwareSurface {
	return &SoftwareSurface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Bounds implements Surface and image.Image.
func (s *SoftwareSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// At implements image.Image.
func (s *SoftwareSurface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

// ColorModel implements image.Image.
func (s *SoftwareSurface) ColorModel() color.Model {
	return color.NRGBAModel
}

// RGBA64At implements image.RGBA64Image. The x/image scaler dispatches on
// this interface; without it a SoftwareSurface used as a scale source
// would fall through the scaler's source switch and copy nothing.
func (s *SoftwareSurface) RGBA64At(x, y int) color.RGBA64 {
	return s.img.RGBA64At(x, y)
}

// NRGBAAt returns the non-premultiplied color of a single pixel.
func (s *SoftwareSurface) NRGBAAt(x, y int) color.NRGBA {
	return s.img.NRGBAAt(x, y)
}

// FillRect implements Surface.
func (s *SoftwareSurface) FillRect(r image.Rectangle, c color.NRGBA) {
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawText implements Surface using an x/image font.Drawer.
func (s *SoftwareSurface) DrawText(text string, face font.Face, c color.NRGBA, dot fixed.Point26_6) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
}

// ReadPixels implements Surface.
func (s *SoftwareSurface) ReadPixels(r image.Rectangle) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), s.img, r.Min, draw.Src)
	return out
}

// WritePixels implements Surface.
func (s *SoftwareSurface) WritePixels(r image.Rectangle, pix *image.NRGBA) {
	draw.Draw(s.img, r, pix, pix.Bounds().Min, draw.Src)
}

// Blit implements Surface. Same-size copies go through a plain draw;
// mismatched rectangles are scaled with bilinear interpolation. Both
// paths composite source-over so stripped-transparent source pixels
// keep the destination's existing content visible.
func (s *SoftwareSurface) Blit(src image.Image, srcRect, dstRect image.Rectangle) {
	// Hand the scaler the backing buffer directly so it takes its native
	// NRGBA path instead of per-pixel interface dispatch.
	if ss, ok := src.(*SoftwareSurface); ok {
		src = ss.img
	}
	if srcRect.Dx() == dstRect.Dx() && srcRect.Dy() == dstRect.Dy() {
		draw.Draw(s.img, dstRect, src, srcRect.Min, draw.Over)
		return
	}
	draw.ApproxBiLinear.Scale(s.img, dstRect, src, srcRect, draw.Over, nil)
}

// SavePNG writes the surface content to a PNG file.
func (s *SoftwareSurface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.img)
}
