// Package charatlas implements a fixed-capacity glyph atlas cache for
// terminal-style renderers.
//
// # Overview
//
// A terminal renderer draws the same few hundred glyph/attribute
// combinations over and over, every frame. charatlas rasterizes each
// combination once into a cell of a shared atlas surface and serves every
// subsequent draw as a cheap blit out of that atlas. The atlas holds a
// fixed number of cells; when it fills up, the least recently used glyph
// is evicted and its cell is reused.
//
// # Quick Start
//
//	faces, _ := charatlas.NewFaces(goregular.TTF, gobold.TTF, 14, 1.0)
//
//	atlas, err := charatlas.New(charatlas.Config{
//		CellWidth:  9,
//		CellHeight: 17,
//		Faces:      faces,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dst := charatlas.NewSoftwareSurface(800, 600)
//	glyph := charatlas.Glyph{Char: "A", FG: charatlas.Indexed(2)}
//	if !atlas.Draw(glyph, dst, 0, 0) {
//		// uncacheable glyph: render it without the atlas
//	}
//
// Draw returns false only for glyphs the cacheability policy rejects
// (by default, anything outside Latin-1); the caller is responsible for
// rendering those through its own uncached path.
//
// # Architecture
//
// The package is organized into:
//   - Public API: Atlas, Config, Glyph, Theme, Surface
//   - Rasterization: per-cell glyph rendering with background stripping
//   - Cache: map + intrusive doubly linked list LRU over atlas slots
//   - Backend: SoftwareSurface, an NRGBA implementation of Surface
//
// An Atlas is single-threaded by design: Draw runs synchronously to
// completion, and instances must not be shared across goroutines without
// external serialization.
package charatlas
