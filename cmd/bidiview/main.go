// Command bidiview rasterizes a line of text's resolved embedding
// levels to a PNG, one cell per input rune, both in logical order and
// in the reordered visual order. The logical row is colored by level so
// nesting is visible at a glance; the visual row is drawn without tint.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	bd "github.com/boxesandglue/bidi/bidi"
	"github.com/boxesandglue/bidi/bidi/bidiclass"
)

const (
	cellWidth  = 16
	cellHeight = 24
	rowGap     = 8
)

func main() {
	text := flag.String("text", "", "text to render (UTF-8); reads stdin if empty")
	out := flag.String("out", "bidi.png", "output PNG path")
	flag.Parse()

	input := []rune(*text)
	if len(input) == 0 {
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			log.Fatal(err)
		}
		input = []rune(string(data))
	}

	glyphs := make([]bd.Glyph, len(input))
	for i, r := range input {
		glyphs[i] = bd.Glyph(r)
	}

	levels := make([]bd.Level, len(glyphs))
	bd.ComputeEmbeddingLevels(glyphs, len(glyphs), bd.AutoLevel, bidiclass.Classify, levels, false)

	visual := make([]bd.Glyph, len(glyphs))
	copy(visual, glyphs)
	bd.ReorderGlyphs(visual, len(visual), bd.AutoLevel, bidiclass.Classify, bidiclass.Mirror, nil)

	if err := render(*out, input, levels, visual); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", *out)
}

// render draws two rows: the logical-order input colored by its
// resolved level, and the visual-order reordering below it.
func render(path string, logical []rune, levels []bd.Level, visual []bd.Glyph) error {
	n := len(logical)
	width := n*cellWidth + cellWidth
	height := 2*cellHeight + rowGap + cellHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13

	for i, r := range logical {
		drawCell(img, face, i, 0, r, levels[i])
	}
	for i, g := range visual {
		drawCell(img, face, i, cellHeight+rowGap, rune(g), -1)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// drawCell paints one glyph cell at column col, row-origin y, tinted by
// level (a negative level draws no tint, used for the visual row where
// levels are not tracked per position).
func drawCell(img *image.RGBA, face font.Face, col, y int, r rune, level bd.Level) {
	x := col * cellWidth
	if level >= 0 {
		draw.Draw(img, image.Rect(x, y, x+cellWidth, y+cellHeight), levelColor(level), image.Point{}, draw.Src)
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x+2, y+cellHeight-8),
	}
	d.DrawString(string(r))
}

// levelColor picks a background tint that darkens with nesting depth,
// so RTL runs inside an LTR paragraph (and vice versa) stand out.
func levelColor(level bd.Level) *image.Uniform {
	shade := uint8(235 - (level%8)*20)
	if level&1 == 1 {
		return image.NewUniform(color.RGBA{R: 255, G: shade, B: shade, A: 255})
	}
	return image.NewUniform(color.RGBA{R: shade, G: shade, B: 255, A: 255})
}
