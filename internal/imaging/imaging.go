// Package imaging implements the preprocessing applied to business card
// photos before OCR. Filters work on 8-bit grayscale images and return a new
// image with the same bounds; the input is never modified.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // gif decoder
	_ "image/jpeg" // jpeg decoder
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // webp decoder
)

// MaxPixels caps the size of an upscaled image
const MaxPixels = 8_000_000

// Decode decodes a jpeg, png, gif or webp image
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// EncodePNG encodes img as PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Upscale resizes img by factor with Catmull-Rom interpolation onto a white
// background, so transparent areas come out white.
// The factor is reduced when the result would exceed MaxPixels.
func Upscale(img image.Image, factor float64) *image.RGBA {
	b := img.Bounds()
	factor = EffectiveScale(b.Dx(), b.Dy(), factor)

	w := max(1, int(math.Round(float64(b.Dx())*factor)))
	h := max(1, int(math.Round(float64(b.Dy())*factor)))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	return dst
}

// EffectiveScale returns factor, lowered so that a w×h image scaled by it
// stays within MaxPixels
func EffectiveScale(w, h int, factor float64) float64 {
	if factor <= 0 {
		factor = 1
	}
	if w <= 0 || h <= 0 {
		return factor
	}

	pixels := float64(w) * float64(h) * factor * factor
	if pixels > MaxPixels {
		factor = math.Sqrt(MaxPixels / (float64(w) * float64(h)))
	}
	return factor
}

// Grayscale converts img to luma with 0.299R + 0.587G + 0.114B,
// compositing translucent pixels over white
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			// RGBA() возвращает premultiplied значения: докладываем белый фон
			bg := 0xffff - a
			lum := 0.299*float64(r+bg) + 0.587*float64(g+bg) + 0.114*float64(bl+bg)
			row[x-b.Min.X] = clamp(lum / 257)
		}
	}

	return dst
}

func clone(g *image.Gray) *image.Gray {
	dst := image.NewGray(g.Bounds())
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	for y := range h {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], g.Pix[y*g.Stride:y*g.Stride+w])
	}
	return dst
}

func clamp(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// histogram counts pixel values of g
func histogram(g *image.Gray) (hist [256]int, total int) {
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	for y := range h {
		for _, v := range g.Pix[y*g.Stride : y*g.Stride+w] {
			hist[v]++
		}
	}
	return hist, w * h
}
