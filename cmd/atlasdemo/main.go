// Command atlasdemo renders a sample terminal screen through the glyph
// atlas and writes the result to a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/akashbolthack/charatlas"
)

func main() {
	var (
		cols    = flag.Int("cols", 80, "screen columns")
		rows    = flag.Int("rows", 24, "screen rows")
		size    = flag.Float64("size", 14, "font size in points")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		charatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	faces, err := charatlas.NewFaces(goregular.TTF, gobold.TTF, *size, 1.0)
	if err != nil {
		log.Fatalf("Failed to load faces: %v", err)
	}

	cellW, cellH := int(*size*0.6)+1, int(*size*1.25)+1
	atlas, err := charatlas.New(charatlas.Config{
		CellWidth:  cellW,
		CellHeight: cellH,
		Faces:      faces,
	})
	if err != nil {
		log.Fatalf("Failed to create atlas: %v", err)
	}

	screen := charatlas.NewSoftwareSurface(*cols*cellW, *rows*cellH)

	for row := 0; row < *rows; row++ {
		for col := 0; col < *cols; col++ {
			g := sampleGlyph(row, col)
			if !atlas.Draw(g, screen, col*cellW, row*cellH) {
				// Uncacheable glyphs are simply skipped in the demo;
				// a real renderer would draw them directly.
				continue
			}
		}
	}

	if err := screen.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	stats := atlas.Stats()
	log.Printf("Demo saved to %s: %d resident glyphs, %.1f%% hit rate (%d rasterizations, %d evictions)",
		*output, atlas.Len(), atlas.HitRate(), stats.Rasterizations, stats.Evictions)
}

// sampleGlyph produces a repeating pattern that exercises colors, bold,
// dim, and reverse video.
func sampleGlyph(row, col int) charatlas.Glyph {
	chars := "the quick brown fox jumps over the lazy dog 0123456789 "
	g := charatlas.Glyph{
		Char: string(chars[(row*3+col)%len(chars)]),
		FG:   charatlas.Indexed(uint8((row + col) % 16)),
	}
	switch {
	case row%7 == 3:
		g.Bold = true
	case row%7 == 5:
		g.Dim = true
	case row%11 == 9 && col%13 == 0:
		g.FG = charatlas.InvertedDefault()
		g.BG = charatlas.InvertedDefault()
	}
	return g
}
